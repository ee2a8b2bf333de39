// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SCIM message schema URNs.
const (
	SchemaPatchOp = "urn:ietf:params:scim:api:messages:2.0:PatchOp"
	SchemaList    = "urn:ietf:params:scim:api:messages:2.0:ListResponse"
	SchemaUser    = "urn:ietf:params:scim:schemas:core:2.0:User"
	SchemaError   = "urn:ietf:params:scim:api:messages:2.0:Error"

	// SchemaEnterpriseUser is also the JSON key of the enterprise extension
	// inside a user resource.
	SchemaEnterpriseUser = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"
)

// ScimUser is a user resource as returned by the enterprise SCIM endpoint.
// Only the attributes this client reads are modelled.
type ScimUser struct {
	Schemas     []string                 `json:"schemas,omitempty"`
	ID          string                   `json:"id"`
	ExternalID  string                   `json:"externalId,omitempty"`
	UserName    string                   `json:"userName"`
	DisplayName string                   `json:"displayName,omitempty"`
	Name        *ScimName                `json:"name,omitempty"`
	Emails      []ScimEmail              `json:"emails,omitempty"`
	Active      bool                     `json:"active"`
	Roles       []ScimRole               `json:"roles,omitempty"`
	Enterprise  *ScimEnterpriseExtension `json:"urn:ietf:params:scim:schemas:extension:enterprise:2.0:User,omitempty"`
	Meta        *ScimMeta                `json:"meta,omitempty"`
}

// ScimName holds the structured name parts of a user.
type ScimName struct {
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
}

// ScimEmail is one e-mail address of a user.
type ScimEmail struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary,omitempty"`
	Type    string `json:"type,omitempty"`
}

// ScimRole is one role assignment. Value is either a readable slug
// ("enterprise_owner") or a provider-internal opaque id.
type ScimRole struct {
	Value   string `json:"value"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// ScimEnterpriseExtension carries the enterprise schema attributes.
type ScimEnterpriseExtension struct {
	Department string `json:"department,omitempty"`
}

// ScimMeta holds resource timestamps.
type ScimMeta struct {
	ResourceType string `json:"resourceType,omitempty"`
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// ListResponse is a page of the /Users listing.
type ListResponse struct {
	Schemas      []string   `json:"schemas,omitempty"`
	TotalResults int        `json:"totalResults"`
	StartIndex   int        `json:"startIndex,omitempty"`
	ItemsPerPage int        `json:"itemsPerPage,omitempty"`
	Resources    []ScimUser `json:"Resources"`
}

// PatchRequest is the body of PATCH /Users/{id}.
type PatchRequest struct {
	Schemas    []string         `json:"schemas"`
	Operations []PatchOperation `json:"Operations"`
}

// PatchOperation is a single SCIM patch operation.
type PatchOperation struct {
	Op    string     `json:"op"`
	Path  string     `json:"path"`
	Value []ScimRole `json:"value"`
}

// NewReplaceRolesPatch builds the patch that sets a user's role list to
// exactly one primary role.
func NewReplaceRolesPatch(roleID string) PatchRequest {
	return PatchRequest{
		Schemas: []string{SchemaPatchOp},
		Operations: []PatchOperation{
			{
				Op:    "replace",
				Path:  "roles",
				Value: []ScimRole{{Value: roleID, Primary: true}},
			},
		},
	}
}

// ScimError is the error body a SCIM endpoint returns with non-2xx statuses.
type ScimError struct {
	Schemas  []string `json:"schemas,omitempty"`
	Status   string   `json:"status,omitempty"`
	ScimType string   `json:"scimType,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}
