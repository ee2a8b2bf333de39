package roles

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-scim-owner/models"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"user", User},
		{"27d9891d-2c17-4f45-a262-781a0e55c80a", User},
		{"guest_collaborator", GuestCollaborator},
		{"1ebc4a02-e56c-43a6-92a5-02ee09b90824", GuestCollaborator},
		{"enterprise_owner", EnterpriseOwner},
		{"981df190-8801-4618-a08a-d91f6206c954", EnterpriseOwner},
		{"ba4987ab-a1c3-412a-b58c-360fc407cb10", EnterpriseOwner},
		{"billing_manager", BillingManager},
		{"0e338b8c-cc7f-498a-928d-ea3470d7e7e3", BillingManager},
		{"e6be2762-e4ad-4108-b72d-1bbe884a0f91", BillingManager},
		{"Enterprise_Owner", EnterpriseOwner},
		{"custom_auditor", "custom_auditor"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.id))
		})
	}
}

func TestIsElevated(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want bool
	}{
		{name: "nil", ids: nil, want: false},
		{name: "baseline only", ids: []string{"user"}, want: false},
		{name: "slug", ids: []string{"user", "enterprise_owner"}, want: true},
		{name: "first uuid", ids: []string{"981df190-8801-4618-a08a-d91f6206c954"}, want: true},
		{name: "second uuid", ids: []string{"ba4987ab-a1c3-412a-b58c-360fc407cb10"}, want: true},
		{name: "billing is not elevated", ids: []string{"billing_manager"}, want: false},
		{name: "substring is not enough", ids: []string{"enterprise_owner_readonly"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsElevated(tt.ids))
		})
	}
}

func TestCanonicalRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []models.ScimRole
		want  string
	}{
		{name: "empty", roles: nil, want: User},
		{name: "blank values", roles: []models.ScimRole{{Value: " "}}, want: User},
		{name: "owner uuid", roles: []models.ScimRole{{Value: "981df190-8801-4618-a08a-d91f6206c954"}}, want: EnterpriseOwner},
		{
			name:  "primary wins over elevated",
			roles: []models.ScimRole{{Value: "enterprise_owner"}, {Value: "billing_manager", Primary: true}},
			want:  BillingManager,
		},
		{
			name:  "elevated wins without primary",
			roles: []models.ScimRole{{Value: "user"}, {Value: "ba4987ab-a1c3-412a-b58c-360fc407cb10"}},
			want:  EnterpriseOwner,
		},
		{
			name:  "ranked when nothing stands out",
			roles: []models.ScimRole{{Value: "user"}, {Value: "guest_collaborator"}},
			want:  GuestCollaborator,
		},
		{
			name:  "unknown passes through",
			roles: []models.ScimRole{{Value: "custom_auditor"}},
			want:  "custom_auditor",
		},
		{
			name:  "known beats unknown",
			roles: []models.ScimRole{{Value: "custom_auditor"}, {Value: "user"}},
			want:  User,
		},
		{
			name:  "several primaries resolved by rank",
			roles: []models.ScimRole{{Value: "user", Primary: true}, {Value: "billing_manager", Primary: true}},
			want:  BillingManager,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalRole(tt.roles))
		})
	}
}

func TestCanonicalRole_PermutationInvariant(t *testing.T) {
	sets := [][]models.ScimRole{
		{{Value: "user"}, {Value: "guest_collaborator"}, {Value: "billing_manager"}},
		{{Value: "zeta"}, {Value: "alpha"}, {Value: "mid"}},
		{{Value: "user", Primary: true}, {Value: "guest_collaborator", Primary: true}, {Value: "enterprise_owner"}},
		{{Value: "27d9891d-2c17-4f45-a262-781a0e55c80a"}, {Value: "custom"}, {Value: "e6be2762-e4ad-4108-b72d-1bbe884a0f91"}},
	}

	rng := rand.New(rand.NewSource(42))
	for _, set := range sets {
		want := CanonicalRole(set)
		for i := 0; i < 20; i++ {
			shuffled := append([]models.ScimRole(nil), set...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			assert.Equal(t, want, CanonicalRole(shuffled), "permutation %v", shuffled)

			ids := make([]string, len(shuffled))
			for j, r := range shuffled {
				ids[j] = r.Value
			}
			assert.Equal(t, IsElevated(ids), IsElevated(reverse(ids)))
		}
	}
}

func TestCanonicalRoleOf(t *testing.T) {
	assert.Equal(t, User, CanonicalRoleOf(nil))
	assert.Equal(t, EnterpriseOwner, CanonicalRoleOf([]string{"user", "enterprise_owner"}))
	assert.Equal(t, "alpha", CanonicalRoleOf([]string{"zeta", "alpha"}))
	assert.Equal(t, CanonicalRoleOf([]string{"zeta", "alpha"}), CanonicalRoleOf([]string{"alpha", "zeta"}))
}

func TestAvailableRoles(t *testing.T) {
	got := AvailableRoles()
	assert.Equal(t, []models.RoleOption{
		{Value: "user", Display: User},
		{Value: "guest_collaborator", Display: GuestCollaborator},
		{Value: "enterprise_owner", Display: EnterpriseOwner},
		{Value: "billing_manager", Display: BillingManager},
	}, got)

	got[0].Display = "mutated"
	assert.Equal(t, User, AvailableRoles()[0].Display)

	for _, r := range got {
		assert.True(t, IsAssignable(r.Value))
	}
	assert.False(t, IsAssignable("981df190-8801-4618-a08a-d91f6206c954"))
	assert.Equal(t, ElevatedRoleID, got[2].Value)
	assert.Equal(t, BaselineRoleID, got[0].Value)
}

func reverse(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
