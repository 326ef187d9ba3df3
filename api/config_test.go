package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome redirects config reads and writes into a throwaway
// directory and clears the network override
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HARBOR_NETWORK", "")
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, NetworkMainnet, cfg.Network)
	assert.Equal(t, MainnetBaseRPC, cfg.Endpoints.BaseRPC)
	assert.Equal(t, TestnetBaseRPC, cfg.Endpoints.BaseTestnetRPC)
	assert.Equal(t, DefaultPriceAPI, cfg.Endpoints.PriceAPI)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeoutSeconds)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	home := isolateHome(t)

	cfg := DefaultConfig()
	cfg.Network = NetworkTestnet
	cfg.RequestTimeoutSeconds = 30
	require.NoError(t, SaveConfig(cfg))

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".harbor", "config.yaml"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, NetworkTestnet, loaded.Network)
	assert.Equal(t, 30, loaded.RequestTimeoutSeconds)
	assert.Equal(t, MainnetBaseRPC, loaded.Endpoints.BaseRPC)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	isolateHome(t)

	cfg := DefaultConfig()
	cfg.Network = NetworkMainnet
	require.NoError(t, SaveConfig(cfg))

	t.Setenv("HARBOR_NETWORK", NetworkTestnet)
	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, NetworkTestnet, loaded.Network)
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".harbor")
	require.NoError(t, os.MkdirAll(dir, 0700))
	raw := "network: dogecoin\nrequest_timeout_seconds: -5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, NetworkMainnet, cfg.Network)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeoutSeconds)
	assert.Equal(t, MainnetBaseRPC, cfg.Endpoints.BaseRPC)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".harbor")
	require.NoError(t, os.MkdirAll(dir, 0700))
	raw := "network: base-goerli\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, NetworkTestnet, cfg.Network)
	assert.Equal(t, DefaultPriceAPI, cfg.Endpoints.PriceAPI)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeoutSeconds)
}

func TestLoadConfigRejectsInvalidYAML(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".harbor")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{::: not yaml"), 0600))

	_, err := LoadConfig()
	assert.Error(t, err)
}
