// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks directory inputs before they are turned into
// request paths or query parameters: enterprise slugs and tokens, page
// requests, and role changes.
//
// Validation can be narrowed to individual fields, e.g. the service checks
// only [FieldMemberID] when a role change is for a fixed role.
package validators

import "context"

// Validator validates obj, or only the named fields of it when fields is
// non-empty. An unsupported type yields [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
