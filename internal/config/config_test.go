package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/setgame/internal/domain"
)

func TestLoadConfigWithBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setgame.yaml")
	data := `addr: ":9090"
log_level: debug
grouper: exhaustive
board:
  - [3TPS, 2OGD]
  - [1TRS, 2TGS]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "exhaustive", cfg.Grouper)

	b, err := cfg.ParseBoard()
	require.NoError(t, err)
	assert.Equal(t, []string{"3TPS", "2OGD", "1TRS", "2TGS"}, b.Codes())
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "frontier", cfg.Grouper)

	b, err := cfg.ParseBoard()
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board:\n  - [WXYZ]\n"), 0o644))
	cfg, err := Load(bad)
	require.NoError(t, err)
	_, err = cfg.ParseBoard()
	assert.ErrorIs(t, err, domain.ErrInvalidLiteral)
}
