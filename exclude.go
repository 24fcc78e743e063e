package main

import (
	"sort"
	"strings"
)

// exclusions is the set of groups left out of both scanning and loading.
// It is computed once per run and never modified afterwards.
type exclusions struct {
	groups map[string]struct{}
	flat   bool
}

// newExclusions builds the exclusion set from repeated -G values. Each value
// may hold several comma-separated names. A "*" entry, like an empty option,
// excludes nothing.
func newExclusions(values []string, flat bool) exclusions {
	ex := exclusions{groups: make(map[string]struct{}), flat: flat}
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			if name == "" || name == "*" {
				continue
			}
			ex.groups[name] = struct{}{}
		}
	}
	return ex
}

// excluded reports whether g is left out of the run.
func (ex exclusions) excluded(g groupID) bool {
	if g.flat {
		return ex.flat
	}
	_, ok := ex.groups[g.name]
	return ok
}

// names returns the excluded group names, sorted.
func (ex exclusions) names() []string {
	names := make([]string, 0, len(ex.groups))
	for name := range ex.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
