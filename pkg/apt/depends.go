package apt

import "strings"

// ParseDepends parses a raw Depends/Pre-Depends field value into an ordered
// list of bare package names.
//
// The field is a comma-separated list of AND groups; each group may contain
// |-separated OR alternatives. Only the first alternative of each group is
// taken: trying fallbacks when the first is unavailable is a deliberate
// simplification, not full dependency resolution. Version constraints and
// trailing qualifiers are stripped by truncating the name at the first '('
// or whitespace character.
//
// Duplicates are dropped, keeping the first occurrence; the result preserves
// left-to-right order of first appearance. An empty field yields nil.
func ParseDepends(field string) []string {
	if field == "" {
		return nil
	}

	seen := make(map[string]bool)
	var deps []string

	for _, group := range strings.Split(field, ",") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}

		first, _, _ := strings.Cut(group, "|")
		first = strings.TrimSpace(first)

		if i := strings.IndexAny(first, "( \t"); i >= 0 {
			first = first[:i]
		}
		first = strings.TrimSpace(first)

		if first != "" && !seen[first] {
			seen[first] = true
			deps = append(deps, first)
		}
	}

	return deps
}
