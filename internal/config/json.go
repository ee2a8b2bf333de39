package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations may be strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		VaultPassword string `json:"vault_password"`
		VaultKDF      string `json:"vault_kdf"`
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
		LogFile       string `json:"log_file"`
	} `json:"app,omitempty"`

	Directory struct {
		APIURL         string   `json:"api_url"`
		RequestTimeout Duration `json:"request_timeout"`
		PageTimeout    Duration `json:"page_timeout"`
		MaxConcurrency int      `json:"max_concurrency"`
		RateLimit      float64  `json:"rate_limit"`
		PageSize       int      `json:"page_size"`
	} `json:"directory,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Stub struct {
		Address    string `json:"address"`
		Enterprise string `json:"enterprise"`
		Token      string `json:"token"`
		Users      int    `json:"users"`
		OwnerEvery int    `json:"owner_every"`
	} `json:"stub,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			VaultPassword: jsonCfg.App.VaultPassword,
			VaultKDF:      jsonCfg.App.VaultKDF,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			LogFile:       jsonCfg.App.LogFile,
		},
		Directory: Directory{
			APIURL:         jsonCfg.Directory.APIURL,
			RequestTimeout: time.Duration(jsonCfg.Directory.RequestTimeout),
			PageTimeout:    time.Duration(jsonCfg.Directory.PageTimeout),
			MaxConcurrency: jsonCfg.Directory.MaxConcurrency,
			RateLimit:      jsonCfg.Directory.RateLimit,
			PageSize:       jsonCfg.Directory.PageSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		Stub: Stub{
			Address:    jsonCfg.Stub.Address,
			Enterprise: jsonCfg.Stub.Enterprise,
			Token:      jsonCfg.Stub.Token,
			Users:      jsonCfg.Stub.Users,
			OwnerEvery: jsonCfg.Stub.OwnerEvery,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
