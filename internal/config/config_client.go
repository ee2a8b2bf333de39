package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// VaultPassword is the password the credential vault key is derived from.
	VaultPassword string
	// VaultKDF names the key derivation function.
	VaultKDF string
	// Version is the application version shown in the UI.
	Version string
	// LogLevel is the minimum log level.
	LogLevel string
	// LogFile is the client log file path; empty selects the default.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the directory API base URL.
	APIURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RateLimit paces requests per second; 0 disables pacing.
	RateLimit float64
}

// ClientDirectory holds the member fetch tuning knobs.
type ClientDirectory struct {
	// PageTimeout bounds the fetch of one page.
	PageTimeout time.Duration
	// MaxConcurrency caps the pages fetched at once; 0 means no cap.
	MaxConcurrency int
	// PageSize is the number of members per page.
	PageSize int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the member list is re-fetched;
	// 0 disables the job.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the directory URL, timeout and pacing.
	Adapter ClientAdapter
	// Directory contains the fetch settings.
	Directory ClientDirectory
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg the client uses.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			VaultPassword: cfg.App.VaultPassword,
			VaultKDF:      cfg.App.VaultKDF,
			Version:       cfg.App.Version,
			LogLevel:      cfg.App.LogLevel,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Directory.APIURL,
			RequestTimeout: cfg.Directory.RequestTimeout,
			RateLimit:      cfg.Directory.RateLimit,
		},
		Directory: ClientDirectory{
			PageTimeout:    cfg.Directory.PageTimeout,
			MaxConcurrency: cfg.Directory.MaxConcurrency,
			PageSize:       cfg.Directory.PageSize,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}

// StubConfig is the configuration of cmd/scim-stub.
type StubConfig struct {
	Address    string
	Enterprise string
	Token      string
	Users      int
	OwnerEvery int
}

// GetStubConfig builds and validates the fake directory configuration.
func GetStubConfig() (*StubConfig, error) {
	return getStubConfig(os.Args[1:])
}

func getStubConfig(args []string) (*StubConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withArgs(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		Address:    cfg.Stub.Address,
		Enterprise: cfg.Stub.Enterprise,
		Token:      cfg.Stub.Token,
		Users:      cfg.Stub.Users,
		OwnerEvery: cfg.Stub.OwnerEvery,
	}
	return stubCfg, stubCfg.validate()
}
