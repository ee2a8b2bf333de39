// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-scim-owner/internal/adapter"
	"github.com/MKhiriev/go-scim-owner/internal/utils"
	"github.com/MKhiriev/go-scim-owner/models"
)

// mapProbeError classifies a failed membership probe. Anything that is not a
// transport failure means the directory answered and refused us.
func mapProbeError(err error, secret string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		err = fmt.Errorf("%w: %w", ErrNetwork, err)
	case errors.Is(err, adapter.ErrNotConfigured):
		err = fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	default:
		err = fmt.Errorf("%w: %w", ErrAuth, err)
	}

	return utils.SanitizeError(err, secret)
}

// isCredentialRejection reports whether err means the stored token is no
// longer usable.
func isCredentialRejection(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden)
}

// mapRoleUpdateError turns an adapter failure into a *RoleUpdateError with
// the provider status and a sanitised message.
func mapRoleUpdateError(err error, change models.RoleChange, secret string) error {
	if err == nil {
		return nil
	}

	out := &RoleUpdateError{
		MemberID: change.MemberID,
		RoleID:   change.RoleID,
	}

	var statusErr *adapter.StatusError
	switch {
	case errors.As(err, &statusErr):
		out.Status = statusErr.Code
		out.StatusText = statusErr.Status
		if out.StatusText == "" {
			out.StatusText = fmt.Sprintf("%d %s", statusErr.Code, http.StatusText(statusErr.Code))
		}
		out.Body = utils.SanitizeMessage(statusErr.Body, secret)
		out.err = utils.SanitizeError(err, secret)
	case errors.Is(err, adapter.ErrTransport):
		out.StatusText = ErrNetwork.Error()
		out.Body = utils.SanitizeMessage(err.Error(), secret)
		out.err = utils.SanitizeError(fmt.Errorf("%w: %w", ErrNetwork, err), secret)
	default:
		out.Body = utils.SanitizeMessage(err.Error(), secret)
		out.err = utils.SanitizeError(err, secret)
	}

	return out
}
