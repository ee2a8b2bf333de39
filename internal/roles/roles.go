// Package roles maps raw provider role identifiers onto the canonical role
// names shown to operators and decides whether a set of identifiers grants
// enterprise-owner privileges.
//
// The provider reports a role either by its slug ("enterprise_owner") or by
// an opaque UUID; both spellings map to the same canonical name.
package roles

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-scim-owner/models"
)

// Canonical role names.
const (
	User              = "User"
	GuestCollaborator = "Guest Collaborator"
	EnterpriseOwner   = "Enterprise Owner"
	BillingManager    = "Billing Manager"
)

const (
	// ElevatedRoleID is sent when granting enterprise-owner rights.
	ElevatedRoleID = "enterprise_owner"

	// BaselineRoleID is sent when revoking them.
	BaselineRoleID = "user"
)

var canonicalNames = map[string]string{
	"user":                                 User,
	"27d9891d-2c17-4f45-a262-781a0e55c80a": User,
	"guest_collaborator":                   GuestCollaborator,
	"1ebc4a02-e56c-43a6-92a5-02ee09b90824": GuestCollaborator,
	"enterprise_owner":                     EnterpriseOwner,
	"981df190-8801-4618-a08a-d91f6206c954": EnterpriseOwner,
	"ba4987ab-a1c3-412a-b58c-360fc407cb10": EnterpriseOwner,
	"billing_manager":                      BillingManager,
	"0e338b8c-cc7f-498a-928d-ea3470d7e7e3": BillingManager,
	"e6be2762-e4ad-4108-b72d-1bbe884a0f91": BillingManager,
}

// rank orders canonical roles when more than one candidate is eligible.
// Lower wins. Unknown identifiers rank last and are ordered by value.
var rank = map[string]int{
	EnterpriseOwner:   0,
	BillingManager:    1,
	GuestCollaborator: 2,
	User:              3,
}

const unknownRank = 4

var catalogue = []models.RoleOption{
	{Value: "user", Display: User},
	{Value: "guest_collaborator", Display: GuestCollaborator},
	{Value: "enterprise_owner", Display: EnterpriseOwner},
	{Value: "billing_manager", Display: BillingManager},
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// DisplayName returns the canonical name for id, or id itself when it is not
// a known identifier.
func DisplayName(id string) string {
	if name, ok := canonicalNames[normalize(id)]; ok {
		return name
	}
	return id
}

func isElevatedID(id string) bool {
	return canonicalNames[normalize(id)] == EnterpriseOwner
}

// IsElevated reports whether any identifier is an enterprise-owner alias.
// It is the only place elevation is decided.
func IsElevated(ids []string) bool {
	for _, id := range ids {
		if isElevatedID(id) {
			return true
		}
	}
	return false
}

// CanonicalRole picks the display role for a provider role list:
// a primary-flagged role first, then any elevated role, then the
// highest-ranked remaining role, and "User" for an empty list.
// The result does not depend on the order of roles.
func CanonicalRole(roles []models.ScimRole) string {
	var primary []string
	all := make([]string, 0, len(roles))
	for _, r := range roles {
		if strings.TrimSpace(r.Value) == "" {
			continue
		}
		all = append(all, r.Value)
		if r.Primary {
			primary = append(primary, r.Value)
		}
	}

	if len(primary) > 0 {
		return DisplayName(best(primary))
	}
	return CanonicalRoleOf(all)
}

// CanonicalRoleOf is [CanonicalRole] for bare identifiers with no primary flag.
func CanonicalRoleOf(ids []string) string {
	var candidates []string
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			candidates = append(candidates, id)
		}
	}

	if len(candidates) == 0 {
		return User
	}
	if IsElevated(candidates) {
		return EnterpriseOwner
	}
	return DisplayName(best(candidates))
}

// best returns the highest-ranked identifier of a non-empty list.
func best(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := rankOf(sorted[i]), rankOf(sorted[j])
		if ri != rj {
			return ri < rj
		}
		return sorted[i] < sorted[j]
	})
	return sorted[0]
}

func rankOf(id string) int {
	if name, ok := canonicalNames[normalize(id)]; ok {
		return rank[name]
	}
	return unknownRank
}

// AvailableRoles returns the roles an operator can assign, in display order.
func AvailableRoles() []models.RoleOption {
	return append([]models.RoleOption(nil), catalogue...)
}

// IsAssignable reports whether id is one of [AvailableRoles].
func IsAssignable(id string) bool {
	for _, r := range catalogue {
		if r.Value == id {
			return true
		}
	}
	return false
}
