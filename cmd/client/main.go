package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-scim-owner/internal/adapter"
	"github.com/MKhiriev/go-scim-owner/internal/client"
	"github.com/MKhiriev/go-scim-owner/internal/config"
	"github.com/MKhiriev/go-scim-owner/internal/crypto"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/internal/store"
	"github.com/MKhiriev/go-scim-owner/internal/tui"
	"github.com/MKhiriev/go-scim-owner/internal/vault"
	"github.com/MKhiriev/go-scim-owner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scim-owner: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closeLog := logger.NewClientLogger("scim-owner-client", cfg.App.LogFile)
	defer closeLog()
	log = log.WithLevel(cfg.App.LogLevel)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.Version()).
		Str("commit", buildInfo.Commit()).
		Str("api_url", cfg.Adapter.APIURL).
		Str("kdf", cfg.App.VaultKDF).
		Msg("starting client")
	if cfg.App.VaultPassword == config.DefaultVaultPassword {
		log.Warn().Msg("credential vault uses the built-in password, set APP_VAULT_PASSWORD to protect the token")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	deriver, err := crypto.NewKeyDeriver(cfg.App.VaultKDF)
	if err != nil {
		return fmt.Errorf("create key deriver: %w", err)
	}
	credentialVault := vault.New(storages.KV, deriver, cfg.App.VaultPassword, log)

	directoryAdapter, err := adapter.NewSCIMAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create directory adapter: %w", err)
	}

	services := service.NewClientServices(credentialVault, directoryAdapter, cfg.Directory, log)
	ui := tui.New(services, buildInfo, cfg.Workers.RefreshInterval, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
}
