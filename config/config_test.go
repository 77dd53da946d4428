package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/papertrade"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "100000", cfg.StartingCash.String())
	assert.Equal(t, "INR", cfg.Currency)
	assert.Equal(t, "", cfg.CatalogFile)
	assert.Equal(t, "$", cfg.CatalogPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.NotificationTimeout)
	assert.True(t, cfg.Cash().Equal(papertrade.M(100000, "INR")))
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"PAPERTRADE_STARTING_CASH":        "2500.75",
		"PAPERTRADE_CURRENCY":             "USD",
		"PAPERTRADE_LOG_LEVEL":            "debug",
		"PAPERTRADE_NOTIFICATION_TIMEOUT": "500ms",
		"STARTING_CASH":                   "1",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Cash().Equal(papertrade.M(2500.75, "USD")))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.NotificationTimeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"negative cash", map[string]string{"PAPERTRADE_STARTING_CASH": "-1"}},
		{"malformed cash", map[string]string{"PAPERTRADE_STARTING_CASH": "lots"}},
		{"unknown currency", map[string]string{"PAPERTRADE_CURRENCY": "XYZW"}},
		{"malformed timeout", map[string]string{"PAPERTRADE_NOTIFICATION_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"PAPERTRADE_NOTIFICATION_TIMEOUT": "0s"}},
		{"unknown level", map[string]string{"PAPERTRADE_LOG_LEVEL": "chatty"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.environ)
			assert.Error(t, err)
		})
	}
}

func TestCatalog(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)
	c, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
	assert.True(t, c.Has("RELIANCE"))

	file := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{"exchange":"NSE","instruments":[{"symbol":"SBIN","name":"State Bank of India","price":"812.30","change":"0.4"}]}`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0644))

	cfg, err = Parse(map[string]string{
		"PAPERTRADE_CATALOG_FILE": file,
		"PAPERTRADE_CATALOG_PATH": "$.instruments",
	})
	require.NoError(t, err)
	c, err = cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"SBIN"}, c.Symbols())
	price, ok := c.Price("SBIN")
	require.True(t, ok)
	assert.True(t, price.Equal(papertrade.M(812.30, "INR")))
}

func TestLogger(t *testing.T) {
	cfg, err := Parse(map[string]string{"PAPERTRADE_LOG_LEVEL": "warn"})
	require.NoError(t, err)

	var buf bytes.Buffer
	log, closer, err := cfg.Logger(&buf)
	require.NoError(t, err)
	defer closer.Close()
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	file := filepath.Join(t.TempDir(), "papertrade.log")
	cfg.LogFile = file
	log, closer, err = cfg.Logger(&buf)
	require.NoError(t, err)
	log.Error().Str("symbol", "TCS").Msg("to file")
	require.NoError(t, closer.Close())
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"symbol":"TCS"`)
	assert.NotContains(t, buf.String(), "to file")
}
