package entity

import (
	"strings"
)

// Profile is the user's profile document. Preferences travel as a genre-name
// set; the store serializes them as one comma-joined field.
type Profile struct {
	Username       string   `json:"username"`
	ProfilePicture string   `json:"profile_picture"`
	Preferences    []string `json:"preferences"`
}

// JoinPreferences serializes a preference set for the profile document,
// collapsing duplicates and dropping empty names. Order is preserved.
func JoinPreferences(names []string) string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return strings.Join(out, ",")
}

// SplitPreferences parses the stored comma-joined preference field.
func SplitPreferences(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
