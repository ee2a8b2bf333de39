// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-scim-owner/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldDirectoryID targets the enterprise slug of a credential.
	FieldDirectoryID = "directory_id"

	// FieldSecret targets the access token of a credential.
	FieldSecret = "secret"

	// FieldStartIndex targets the 1-based offset of a page request.
	FieldStartIndex = "start_index"

	// FieldCount targets the page size of a page request.
	FieldCount = "count"

	// FieldMemberID targets the member a role change applies to.
	FieldMemberID = "member_id"

	// FieldRoleID targets the role a member is moved to.
	FieldRoleID = "role_id"
)

// MaxPageSize is the largest page the directory serves.
const MaxPageSize = 100

// Identifiers end up in URL paths, so anything that could change the path
// (slashes, '?', '#', '%', whitespace) is rejected.
var (
	slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	idPattern   = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)
)

// DirectoryValidator validates credentials, page requests and role changes
// before they reach the directory.
type DirectoryValidator struct{}

// NewDirectoryValidator returns a [Validator] for directory inputs.
func NewDirectoryValidator() Validator {
	return &DirectoryValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms are
// both accepted.
func (v *DirectoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.PageRequest:
		return v.validatePageRequest(ctx, value, fields...)
	case *models.PageRequest:
		return v.validatePageRequest(ctx, *value, fields...)

	case models.RoleChange:
		return v.validateRoleChange(ctx, value, fields...)
	case *models.RoleChange:
		return v.validateRoleChange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DirectoryValidator) validateCredential(_ context.Context, cred models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirectoryID, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldDirectoryID:
			if cred.DirectoryID == "" {
				return ErrEmptyDirectoryID
			}
			if !slugPattern.MatchString(cred.DirectoryID) {
				return ErrInvalidDirectoryID
			}
		case FieldSecret:
			if cred.Secret == "" {
				return ErrEmptySecret
			}
			if strings.ContainsAny(cred.Secret, " \t\r\n") {
				return ErrInvalidSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DirectoryValidator) validatePageRequest(_ context.Context, page models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStartIndex, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldStartIndex:
			if page.StartIndex < 1 {
				return ErrInvalidStartIndex
			}
		case FieldCount:
			if page.Count < 1 || page.Count > MaxPageSize {
				return ErrInvalidPageCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DirectoryValidator) validateRoleChange(_ context.Context, change models.RoleChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMemberID, FieldRoleID}
	}

	for _, f := range fields {
		switch f {
		case FieldMemberID:
			if change.MemberID == "" {
				return ErrEmptyMemberID
			}
			if !idPattern.MatchString(change.MemberID) {
				return ErrInvalidMemberID
			}
		case FieldRoleID:
			if change.RoleID == "" {
				return ErrEmptyRoleID
			}
			if !idPattern.MatchString(change.RoleID) {
				return ErrInvalidRoleID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
