package main

// findingKind classifies one line of the reconciliation report.
type findingKind string

const (
	missingGroup findingKind = "missing group"
	missingItem  findingKind = "missing item"
	unusedGroup  findingKind = "unused group"
	unusedItem   findingKind = "unused item"
)

// finding is one line of the reconciliation report. Key is the group name
// for group findings and the qualified key for item findings.
type finding struct {
	Kind  findingKind `json:"kind"`
	Group string      `json:"group"`
	Key   string      `json:"key"`
	Flat  bool        `json:"flat,omitempty"`
}

func groupFinding(kind findingKind, g groupID) finding {
	return finding{Kind: kind, Group: g.String(), Key: g.String(), Flat: g.flat}
}

func itemFinding(kind findingKind, g groupID, item string) finding {
	return finding{Kind: kind, Group: g.String(), Key: g.qualify(item), Flat: g.flat}
}

// reconcile compares the defined keys with the used ones. It returns the
// report, used groups first and defined groups second, and the useful
// catalog: every used key, holding its defined value when there is one and
// a placeholder naming the key otherwise. Defined but unused items are left
// out of the useful catalog.
func reconcile(defined, used *catalog) ([]finding, *catalog) {
	var findings []finding
	useful := newCatalog()

	for _, g := range used.groupIDs() {
		if !defined.hasGroup(g) {
			findings = append(findings, groupFinding(missingGroup, g))
		}
		for _, item := range used.group(g).keys {
			if !defined.hasItem(g, item) {
				findings = append(findings, itemFinding(missingItem, g, item))
				useful.set(g, item, g.qualify(item))
			}
		}
	}

	for _, g := range defined.groupIDs() {
		if !used.hasGroup(g) {
			findings = append(findings, groupFinding(unusedGroup, g))
		}
		it := defined.group(g)
		for _, item := range it.keys {
			if !used.hasItem(g, item) {
				findings = append(findings, itemFinding(unusedItem, g, item))
				continue
			}
			useful.set(g, item, it.get(item))
		}
	}

	return findings, useful
}

// findingKeys returns the keys of the findings of one kind, in report order.
func findingKeys(findings []finding, kind findingKind) []string {
	var keys []string
	for _, f := range findings {
		if f.Kind == kind {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
