package tui

import (
	"strings"

	"github.com/MKhiriev/go-scim-owner/models"
)

// membersPerPage is the number of rows shown on one page of the member list.
const membersPerPage = 16

type ownerFilter int

const (
	filterAll ownerFilter = iota
	filterOwners
	filterNonOwners
)

func (f ownerFilter) String() string {
	switch f {
	case filterOwners:
		return "Owners"
	case filterNonOwners:
		return "Non-owners"
	default:
		return "All"
	}
}

func (f ownerFilter) next() ownerFilter {
	return (f + 1) % 3
}

func (f ownerFilter) keep(m models.Member) bool {
	switch f {
	case filterOwners:
		return m.IsElevated
	case filterNonOwners:
		return !m.IsElevated
	default:
		return true
	}
}

// matchesQuery reports whether query occurs, ignoring case, in the member's
// name, e-mail, login or department. An empty query matches everything.
func matchesQuery(m models.Member, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	fields := []string{m.DisplayName, m.PrimaryEmail}
	if m.LoginHandle != nil {
		fields = append(fields, *m.LoginHandle)
	}
	if m.Department != nil {
		fields = append(fields, *m.Department)
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func filterMembers(members []models.Member, query string, f ownerFilter) []models.Member {
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if f.keep(m) && matchesQuery(m, query) {
			out = append(out, m)
		}
	}
	return out
}

func countOwners(members []models.Member) (owners, others int) {
	for _, m := range members {
		if m.IsElevated {
			owners++
		} else {
			others++
		}
	}
	return owners, others
}

// pageCount is never less than one so an empty list still shows "1/1".
func pageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + membersPerPage - 1) / membersPerPage
}

// pageBounds returns the half-open index range of page within n items.
func pageBounds(n, page int) (start, end int) {
	start = min(max(page, 0)*membersPerPage, n)
	end = min(start+membersPerPage, n)
	return start, end
}
