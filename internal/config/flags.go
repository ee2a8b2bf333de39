package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-api-url directory API base URL
//	-request-timeout single request timeout (e.g., "30s", "1m")
//	-page-timeout timeout of one member page (e.g., "30s")
//	-max-concurrency pages fetched at once
//	-rate-limit requests per second, 0 disables pacing
//	-page-size members per page (1..100)
//	-d database DSN
//	-vault-password vault password
//	-vault-kdf vault key derivation function (pbkdf2, argon2id)
//	-log-level minimum log level (debug, info, warn, error)
//	-log-file client log file path
//	-refresh-interval background refresh interval, 0 disables
//	-c/-config json file path with configs
//	-a stub listen address in format [host]:[port]
//	-stub-enterprise enterprise slug served by the stub
//	-stub-token token accepted by the stub
//	-stub-users number of generated stub members
//	-stub-owner-every every n-th stub member is an owner
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var stubAddress NetAddress

	fs := flag.NewFlagSet("scim-owner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Directory.APIURL, "api-url", "", "Directory API base URL")
	fs.DurationVar(&cfg.Directory.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Directory.PageTimeout, "page-timeout", 0, "Timeout of one member page (e.g., 30s)")
	fs.IntVar(&cfg.Directory.MaxConcurrency, "max-concurrency", 0, "Pages fetched at once")
	fs.Float64Var(&cfg.Directory.RateLimit, "rate-limit", 0, "Requests per second, 0 disables pacing")
	fs.IntVar(&cfg.Directory.PageSize, "page-size", 0, "Members per page (1..100)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.App.VaultPassword, "vault-password", "", "Vault password")
	fs.StringVar(&cfg.App.VaultKDF, "vault-kdf", "", "Vault key derivation function (pbkdf2, argon2id)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file path")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Background refresh interval, 0 disables")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.Var(&stubAddress, "a", "Stub net address host:port")
	fs.StringVar(&cfg.Stub.Enterprise, "stub-enterprise", "", "Enterprise slug served by the stub")
	fs.StringVar(&cfg.Stub.Token, "stub-token", "", "Token accepted by the stub")
	fs.IntVar(&cfg.Stub.Users, "stub-users", 0, "Number of generated stub members")
	fs.IntVar(&cfg.Stub.OwnerEvery, "stub-owner-every", 0, "Every n-th stub member is an owner")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Stub.Address = stubAddress.String()
	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
