// Command scim-stub serves a fake GitHub Enterprise SCIM directory for demos
// and manual testing of the client:
//
//	scim-stub -a localhost:8080 -stub-users 250
//	scim-owner -api-url http://localhost:8080
package main

import (
	"fmt"

	"github.com/MKhiriev/go-scim-owner/internal/config"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/scimtest"
	"github.com/MKhiriev/go-scim-owner/internal/server"
	"github.com/MKhiriev/go-scim-owner/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("scim-stub")
	cfg, err := config.GetStubConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	directory := scimtest.NewDirectory(
		cfg.Enterprise,
		cfg.Token,
		scimtest.GenerateUsers(cfg.Users, cfg.OwnerEvery)...,
	).WithLogger(log)

	srv, err := server.NewServer(directory.Handler(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("enterprise", cfg.Enterprise).
		Str("token", utils.MaskToken(cfg.Token)).
		Int("users", cfg.Users).
		Int("owner_every", cfg.OwnerEvery).
		Msg("serving fake directory")

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
