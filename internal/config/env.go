package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Storage backend selectors
const (
	BackendLocal = "local"
	BackendBlob  = "blob"
)

// Config contains all configuration parameters for the application.
// The storage backend and ledger network are resolved once here at startup
// and injected into the components that need them.
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	Network   string `envconfig:"XRPL_NETWORK" default:"testnet"`
	SourceTag uint32 `envconfig:"XRPL_SOURCE_TAG" default:"845921"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"local"`
	StorageDir     string `envconfig:"STORAGE_DIR" default:"./data"`

	BlobEndpoint  string `envconfig:"BLOB_ENDPOINT"`
	BlobAccessKey string `envconfig:"BLOB_ACCESS_KEY"`
	BlobSecretKey string `envconfig:"BLOB_SECRET_KEY"`
	BlobBucket    string `envconfig:"BLOB_BUCKET" default:"xrpl-documents"`
	BlobPrefix    string `envconfig:"BLOB_PREFIX" default:"documents"`
	BlobUseSSL    bool   `envconfig:"BLOB_USE_SSL" default:"true"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.StorageBackend != BackendLocal && c.StorageBackend != BackendBlob {
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendLocal, BackendBlob, c.StorageBackend)
	}
	if c.StorageBackend == BackendBlob && c.BlobEndpoint == "" {
		return fmt.Errorf("BLOB_ENDPOINT is required when STORAGE_BACKEND=blob")
	}
	if c.Network != "testnet" && c.Network != "mainnet" {
		return fmt.Errorf("XRPL_NETWORK must be testnet or mainnet, got %q", c.Network)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetNetwork returns the selected XRPL network identifier
func GetNetwork() string {
	return Get().Network
}

// GetSourceTag returns the source tag stamped into the wallet document
func GetSourceTag() uint32 {
	return Get().SourceTag
}
