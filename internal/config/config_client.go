package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// KDF names the master-key derivation algorithm.
	KDF string
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
}

// ClientAdapter holds outbound transport settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	AutoLockTimeout  time.Duration
	ClipboardTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration, keeps the client fields
// and validates them.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			KDF:     cfg.App.KDF,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			AutoLockTimeout:  cfg.Workers.AutoLockTimeout,
			ClipboardTimeout: cfg.Workers.ClipboardTimeout,
		},
	}
}
