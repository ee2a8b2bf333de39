// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-scim-owner/models"
)

const buildInfoLabelWidth = 9

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Client", "scim-owner"},
		{"Version", info.Version()},
		{"Built", info.Date()},
		{"Commit", info.Commit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, padRight(row[0]+":", buildInfoLabelWidth)+valueOrNA(row[1]))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
