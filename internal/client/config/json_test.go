package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"base_url": "http://backend:9000",
		"request_timeout": "15s"
	}`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", file}

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseJson(&c))

	assert.Equal(t, "http://backend:9000", c.BaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "cvdesk.db", c.StatePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseJson(&c))
	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL)
}

func TestParseJson_BadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{broken`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-config", file}

	var c Config
	c.LoadDefaults()
	require.Error(t, parseJson(&c))
}
