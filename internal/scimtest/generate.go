package scimtest

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-scim-owner/models"
)

// OwnerRoleUUID is the opaque id the provider uses for enterprise owners.
const OwnerRoleUUID = "981df190-8801-4618-a08a-d91f6206c954"

var departments = []string{"Engineering", "Sales", "Finance", "Support", ""}

// GenerateUsers returns n deterministic users. Every ownerEvery-th user
// (1-based) holds the owner role under its opaque id; pass 0 for none.
func GenerateUsers(n, ownerEvery int) []models.ScimUser {
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	users := make([]models.ScimUser, 0, n)
	for i := 1; i <= n; i++ {
		login := fmt.Sprintf("user%04d", i)
		role := models.ScimRole{Value: "user", Primary: true}
		if ownerEvery > 0 && i%ownerEvery == 0 {
			role = models.ScimRole{Value: OwnerRoleUUID, Display: "Enterprise Owner", Primary: true}
		}

		u := models.ScimUser{
			Schemas:     []string{models.SchemaUser},
			ID:          UserID(i),
			UserName:    login,
			DisplayName: fmt.Sprintf("User %04d", i),
			Name:        &models.ScimName{GivenName: "User", FamilyName: fmt.Sprintf("%04d", i)},
			Emails: []models.ScimEmail{
				{Value: login + "@example.com", Primary: true, Type: "work"},
			},
			Active: true,
			Roles:  []models.ScimRole{role},
			Meta: &models.ScimMeta{
				ResourceType: "User",
				Created:      base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			},
		}
		if dep := departments[i%len(departments)]; dep != "" {
			u.Enterprise = &models.ScimEnterpriseExtension{Department: dep}
		}

		users = append(users, u)
	}
	return users
}

// UserID returns the id GenerateUsers assigns to the i-th (1-based) user.
func UserID(i int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("scimtest:user:%d", i))).String()
}
