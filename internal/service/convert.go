// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/internal/validators"
	"github.com/MKhiriev/go-scim-owner/models"
)

// ToMember converts a SCIM user into the canonical member view.
//
//   - DisplayName: displayName, else "given family" when both are present,
//     else userName.
//   - PrimaryEmail: the primary address, else the first, else userName.
//   - LastActivity: meta.lastModified, else meta.created.
func ToMember(u models.ScimUser) models.Member {
	ids := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		if r.Value != "" {
			ids = append(ids, r.Value)
		}
	}

	return models.Member{
		ID:              u.ID,
		DisplayName:     displayName(u),
		PrimaryEmail:    primaryEmail(u),
		LoginHandle:     optional(u.UserName),
		Department:      department(u),
		LastActivity:    lastActivity(u),
		RoleIdentifiers: ids,
		CanonicalRole:   roles.CanonicalRole(u.Roles),
		IsElevated:      roles.IsElevated(ids),
	}
}

func displayName(u models.ScimUser) string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	if u.Name != nil && u.Name.GivenName != "" && u.Name.FamilyName != "" {
		return u.Name.GivenName + " " + u.Name.FamilyName
	}
	return u.UserName
}

func primaryEmail(u models.ScimUser) string {
	for _, e := range u.Emails {
		if e.Primary && e.Value != "" {
			return e.Value
		}
	}
	for _, e := range u.Emails {
		if e.Value != "" {
			return e.Value
		}
	}
	return u.UserName
}

func department(u models.ScimUser) *string {
	if u.Enterprise == nil {
		return nil
	}
	return optional(u.Enterprise.Department)
}

func lastActivity(u models.ScimUser) *string {
	if u.Meta == nil {
		return nil
	}
	if u.Meta.LastModified != "" {
		return optional(u.Meta.LastModified)
	}
	return optional(u.Meta.Created)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// PlanPages splits total members into SCIM page requests. Start indexes are
// 1-based and the last page only asks for what is left. pageSize outside
// 1..100 is treated as 100.
func PlanPages(total, pageSize int) []models.PageRequest {
	if total <= 0 {
		return nil
	}
	if pageSize <= 0 || pageSize > validators.MaxPageSize {
		pageSize = validators.MaxPageSize
	}

	n := (total + pageSize - 1) / pageSize
	pages := make([]models.PageRequest, 0, n)
	for i := 0; i < n; i++ {
		start := i*pageSize + 1
		count := pageSize
		if rest := total - start + 1; rest < count {
			count = rest
		}
		pages = append(pages, models.PageRequest{StartIndex: start, Count: count})
	}

	return pages
}
