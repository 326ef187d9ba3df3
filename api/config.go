package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// network name constants
const (
	NetworkMainnet = "base"
	NetworkTestnet = "base-goerli"
)

// Default endpoints
const (
	// base rpc's
	MainnetBaseRPC = "https://mainnet.base.org"
	TestnetBaseRPC = "https://goerli.base.org"

	// price api
	DefaultPriceAPI = "https://api.coingecko.com/api/v3"
)

// DefaultRequestTimeout is the per-request HTTP timeout in seconds
const DefaultRequestTimeout = 10

// EndpointConfig holds the service URLs the client talks to
type EndpointConfig struct {
	BaseRPC        string `yaml:"base_rpc"`
	BaseTestnetRPC string `yaml:"base_testnet_rpc"`
	PriceAPI       string `yaml:"price_api"`
}

// Config is the persistent client configuration stored at
// ~/.harbor/config.yaml
type Config struct {
	Network               string         `yaml:"network"`
	Endpoints             EndpointConfig `yaml:"endpoints"`
	RequestTimeoutSeconds int            `yaml:"request_timeout_seconds"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Network: NetworkMainnet,
		Endpoints: EndpointConfig{
			BaseRPC:        MainnetBaseRPC,
			BaseTestnetRPC: TestnetBaseRPC,
			PriceAPI:       DefaultPriceAPI,
		},
		RequestTimeoutSeconds: DefaultRequestTimeout,
	}
}

// LoadConfig reads the config file, falling back to defaults when it
// is missing. The HARBOR_NETWORK environment variable overrides the
// configured network.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(path)
		if readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if network := os.Getenv("HARBOR_NETWORK"); network != "" {
		cfg.Network = network
	}

	cfg.normalize()
	return cfg, nil
}

// SaveConfig writes the configuration to ~/.harbor/config.yaml
func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ConfigPath returns the location of the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".harbor", "config.yaml"), nil
}

// normalize fills in anything missing or invalid so callers always see
// a usable config
func (c *Config) normalize() {
	if c.Network != NetworkMainnet && c.Network != NetworkTestnet {
		c.Network = NetworkMainnet
	}
	if c.Endpoints.BaseRPC == "" {
		c.Endpoints.BaseRPC = MainnetBaseRPC
	}
	if c.Endpoints.BaseTestnetRPC == "" {
		c.Endpoints.BaseTestnetRPC = TestnetBaseRPC
	}
	if c.Endpoints.PriceAPI == "" {
		c.Endpoints.PriceAPI = DefaultPriceAPI
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = DefaultRequestTimeout
	}
}
