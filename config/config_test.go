package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	// The default file must be durably written
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.Len(t, cfg.Shortcuts, 3)
	require.Contains(t, cfg.Shortcuts, "f1")
	require.Contains(t, cfg.Shortcuts, "f2")
	require.Contains(t, cfg.Shortcuts, "f3")
	require.Equal(t, "mistral", cfg.Completion.Provider)
	require.Equal(t, 500, cfg.Timing.DebounceMs)
}

func TestLoadRoundTripsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	created, err := loadFrom(path)
	require.NoError(t, err)

	reloaded, err := loadFrom(path)
	require.NoError(t, err)
	require.Equal(t, created.Shortcuts, reloaded.Shortcuts)
	require.Equal(t, created.Completion, reloaded.Completion)
	require.Equal(t, created.Timing, reloaded.Timing)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[shortcuts]
f5 = "Summarize:\n{selection}"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	require.Equal(t, map[string]string{"f5": "Summarize:\n{selection}"}, cfg.Shortcuts)
	require.Equal(t, "mistral", cfg.Completion.Provider)
	require.Equal(t, 150, cfg.Timing.SettleMs)
}

func TestLoadUnparseableFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml ==="), 0644))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	// No shortcuts active, but settings keep default values
	require.Empty(t, cfg.Shortcuts)
	require.Equal(t, "mistral", cfg.Completion.Provider)
	require.Equal(t, 500, cfg.Timing.DebounceMs)
}

func TestReadKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mistral_key")
	require.NoError(t, os.WriteFile(path, []byte("  sk-test-123\n"), 0600))

	key, err := readKey(path)
	require.NoError(t, err)
	require.Equal(t, "sk-test-123", key)
}

func TestReadKeyMissingFile(t *testing.T) {
	_, err := readKey(filepath.Join(t.TempDir(), ".mistral_key"))
	require.Error(t, err)
}
