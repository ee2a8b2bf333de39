// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Member is the canonical, provider-independent view of a directory user.
//
// A Member is built from a [ScimUser] on every fetch and never patched in
// place: a role change replaces the whole value. IsElevated is always derived
// from RoleIdentifiers by the role mapper and is never set on its own.
type Member struct {
	// ID is the stable identifier assigned by the provider.
	ID string `json:"id"`

	// DisplayName is the best human-readable name available.
	DisplayName string `json:"display_name"`

	// PrimaryEmail is the primary address, falling back to the first address
	// and finally to the login handle.
	PrimaryEmail string `json:"primary_email"`

	// LoginHandle is the provider user name, if any.
	LoginHandle *string `json:"login_handle,omitempty"`

	// Department comes from the enterprise schema extension, if any.
	Department *string `json:"department,omitempty"`

	// LastActivity is the last-modified (or created) timestamp as reported.
	LastActivity *string `json:"last_activity,omitempty"`

	// RoleIdentifiers are the raw role values in provider order.
	RoleIdentifiers []string `json:"role_identifiers"`

	// CanonicalRole is the display role chosen from RoleIdentifiers.
	CanonicalRole string `json:"canonical_role"`

	// IsElevated reports whether any role identifier grants owner privileges.
	IsElevated bool `json:"is_elevated"`
}

// PageRequest describes one page of the paginated member listing. StartIndex
// is 1-based as required by SCIM.
type PageRequest struct {
	StartIndex int `json:"start_index"`
	Count      int `json:"count"`
}

// RoleOption is an assignable role with its display label.
type RoleOption struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// RoleChange is a request to replace a member's roles with a single role.
type RoleChange struct {
	MemberID string `json:"member_id"`
	RoleID   string `json:"role_id"`
}
