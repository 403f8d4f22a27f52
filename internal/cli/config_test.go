package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(queriesFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"all-plus-ten", "evens-plus-ten", "squares-of-odds"}, cfg.Names())

	text, err := cfg.Query("evens-plus-ten")
	require.NoError(t, err)
	assert.Equal(t, "from i in 1..10; where even; select add:10;", text)

	_, err = cfg.Query("missing")
	assert.ErrorIs(t, err, ErrQueryNotFound)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queries: [unclosed"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigEmptyNames(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.Names())
}
