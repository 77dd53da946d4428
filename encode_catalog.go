package papertrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultCatalogPath selects the whole document as the list of instruments.
const DefaultCatalogPath = "$"

// jinstrument is the object read from a catalog file.
type jinstrument struct {
	Symbol string              `json:"symbol"`
	Name   string              `json:"name"`
	Price  decimal.NullDecimal `json:"price"`
	Change decimal.Decimal     `json:"change"`
}

// DecodeCatalog reads a JSON document from r and builds a catalog priced in
// currency from the instruments selected by the JSONPath expression path.
//
// The selection must be an array of objects like
//
//	{"symbol": "RELIANCE", "name": "Reliance Industries", "price": 2540.50, "change": 1.2}
//
// or a single such object.
func DecodeCatalog(r io.Reader, path, currency string) (*Catalog, error) {
	if path == "" {
		path = DefaultCatalogPath
	}
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep prices exact
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select instruments with %q: %w", path, err)
	}
	if obj, ok := selected.(map[string]any); ok {
		selected = []any{obj}
	}

	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("cannot read instruments selected by %q: %w", path, err)
	}
	var jins []jinstrument
	if err := json.Unmarshal(raw, &jins); err != nil {
		return nil, fmt.Errorf("instruments selected by %q are not a list of instruments: %w", path, err)
	}
	if len(jins) == 0 {
		return nil, fmt.Errorf("no instruments selected by %q", path)
	}

	instruments := make([]Instrument, 0, len(jins))
	var errs error
	for i, j := range jins {
		if !j.Price.Valid {
			errs = errors.Join(errs, fmt.Errorf("instrument #%d %q has no price", i, j.Symbol))
			continue
		}
		instruments = append(instruments, NewInstrument(j.Symbol, j.Name, M(j.Price.Decimal, currency), P(j.Change)))
	}
	if errs != nil {
		return nil, errs
	}
	return NewCatalog(currency, instruments...)
}

// DecodeCatalogFile is like DecodeCatalog reading from the named file.
func DecodeCatalogFile(filename, path, currency string) (*Catalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := DecodeCatalog(f, path, currency)
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	return c, nil
}

// EncodeCatalog writes the catalog as a JSON array that DecodeCatalog reads back
// with the default path.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	b, err := json.MarshalIndent(c.instruments, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
