// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-scim-owner/internal/service"
)

const msgNetworkUnavailable = "Network is unavailable or the directory cannot be reached"

// humanizeError turns service errors into banner text. Errors are already
// sanitised by the service layer.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNetwork):
		return msgNetworkUnavailable
	default:
		return err.Error()
	}
}
