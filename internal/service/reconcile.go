package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/models"
)

// Reconcile implements DirectoryClient. It prefers re-reading the single
// member, then the whole list, and only then patches the local copy.
func (d *directoryClient) Reconcile(ctx context.Context, current []models.Member, memberID, requestedRoleID string) ReconcileResult {
	log := d.logger.With().Str("member_id", memberID).Str("role_id", requestedRoleID).Logger()

	if member, ok := d.FetchOne(ctx, memberID); ok {
		log.Debug().Msg("reconciled from single member")
		return ReconcileResult{Members: ReplaceMember(current, member), Source: ReconcileAuthoritative}
	}

	members, err := d.FetchAll(ctx)
	if err == nil {
		log.Debug().Int("members", len(members)).Msg("reconciled from full refresh")
		return ReconcileResult{Members: members, Source: ReconcileRefreshed}
	}
	log.Warn().Err(err).Msg("refresh after role change failed, showing optimistic state")

	return ReconcileResult{Members: PatchRole(current, memberID, requestedRoleID), Source: ReconcileOptimistic}
}

// ReplaceMember returns a copy of members with the entry sharing m's ID
// replaced by m. If there is no such entry m is appended.
func ReplaceMember(members []models.Member, m models.Member) []models.Member {
	out := slices.Clone(members)
	for i := range out {
		if out[i].ID == m.ID {
			out[i] = m
			return out
		}
	}
	return append(out, m)
}

// PatchRole returns a copy of members where the given member holds only
// roleID. IsElevated follows the new role; CanonicalRole is kept until the
// directory confirms the change.
func PatchRole(members []models.Member, memberID, roleID string) []models.Member {
	out := slices.Clone(members)
	for i := range out {
		if out[i].ID != memberID {
			continue
		}
		ids := []string{roleID}
		out[i].RoleIdentifiers = ids
		out[i].IsElevated = roles.IsElevated(ids)
	}
	return out
}
