// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the service
// layer and the terminal UI.
//
// Keeping them in one place ensures consistent wording across screens and
// log entries.
package app

const (
	// MsgInvalidCredentials is shown when the directory rejects the
	// enterprise name or token during login.
	MsgInvalidCredentials = "Invalid credentials or insufficient permissions"

	// MsgNotAuthenticated is shown when an operation needs credentials and
	// none are stored.
	MsgNotAuthenticated = "No authentication credentials found"

	// MsgFetchFailed prefixes a failed member listing.
	MsgFetchFailed = "Failed to load members"

	// MsgRoleUpdateFailed prefixes a rejected role change.
	MsgRoleUpdateFailed = "Failed to update role"

	// MsgRoleUpdated is the success banner format: member name, then role.
	MsgRoleUpdated = "Updated %s to %s"

	// MsgOptimisticState is appended when the list could not be re-read
	// after a change.
	MsgOptimisticState = "list may be out of date"

	// MsgCopied is the banner format after copying an e-mail address.
	MsgCopied = "Copied %s"

	// MsgCopyFailed is shown when the clipboard is unavailable.
	MsgCopyFailed = "Clipboard is not available"

	// MsgLoggedOut is shown after logout.
	MsgLoggedOut = "Logged out"
)
