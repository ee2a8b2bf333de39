package service

import (
	"github.com/MKhiriev/go-scim-owner/internal/adapter"
	"github.com/MKhiriev/go-scim-owner/internal/config"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/vault"
)

type ClientServices struct {
	Directory  DirectoryClient
	Session    SessionController
	RefreshJob BackgroundJob
}

func NewClientServices(v vault.CredentialVault, directoryAdapter adapter.DirectoryAdapter, cfg config.ClientDirectory, logger *logger.Logger) *ClientServices {
	directory := NewDirectoryClient(v, directoryAdapter, cfg, logger)

	return &ClientServices{
		Directory:  directory,
		Session:    NewSessionController(v, directory, logger),
		RefreshJob: NewRefreshJob(directory),
	}
}
