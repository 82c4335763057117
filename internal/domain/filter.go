package domain

import "strings"

// FilterAll is the wildcard status filter.
const FilterAll = "All"

// MatchesQuery reports whether v matches a free-text query:
// case-insensitive substring match on name OR location.
// An empty query matches everything.
func MatchesQuery(v Villa, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Location), query)
}

// MatchesStatus reports whether v matches a status filter. "All" (or an
// empty filter) matches everything; anything else is exact equality.
func MatchesStatus(v Villa, status string) bool {
	if status == "" || status == FilterAll {
		return true
	}
	return string(v.Status) == status
}

// Filter returns the villas matching both the search query and the
// status filter. Purely derived: never touches remote storage.
func Filter(villas []Villa, query, status string) []Villa {
	out := make([]Villa, 0, len(villas))
	for _, v := range villas {
		if MatchesQuery(v, query) && MatchesStatus(v, status) {
			out = append(out, v)
		}
	}
	return out
}
