package apt

import "strings"

// Package holds one binary package record parsed from a repository index.
// Records are immutable once parsed; the index hands out the same record to
// every caller.
type Package struct {
	Name         string   // Binary package name (stanza "Package" key)
	Version      string   // Version string (may be empty)
	Description  string   // Short plus extended description (may be multi-line)
	Architecture string   // Target architecture (may be empty)
	Depends      []string // Bare names from "Depends", first-seen order, deduplicated
	PreDepends   []string // Bare names from "Pre-Depends", same shape
}

// ParseControl parses the full text of a "Packages" index into package
// records. It returns the records keyed by name together with the names in
// parse order (first occurrence wins for ordering; the record itself is the
// last stanza parsed for that name).
//
// Stanzas are separated by blank lines. A stanza without a "Package" key is
// silently discarded; the parser never fails on malformed input. Within a
// stanza, repeated "Description" values are joined with a newline while any
// other repeated key overwrites the previous value. Lines without a ": "
// separator are ignored.
func ParseControl(text string) (map[string]*Package, []string) {
	packages := make(map[string]*Package)
	var names []string

	fields := make(map[string]string)
	flush := func() {
		if name, ok := fields["Package"]; ok {
			if _, seen := packages[name]; !seen {
				names = append(names, name)
			}
			packages[name] = &Package{
				Name:         name,
				Version:      fields["Version"],
				Description:  fields["Description"],
				Architecture: fields["Architecture"],
				Depends:      ParseDepends(fields["Depends"]),
				PreDepends:   ParseDepends(fields["Pre-Depends"]),
			}
		}
		fields = make(map[string]string)
	}

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		if key == "Description" {
			if prev, repeated := fields[key]; repeated {
				value = prev + "\n" + value
			}
		}
		fields[key] = value
	}
	flush() // index may not end with a blank line

	return packages, names
}
