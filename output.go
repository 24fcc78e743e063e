package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format, label string) error {
	if format == "json" {
		if items == nil {
			items = []string{}
		}
		return outputJSON(w, items)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
	return nil
}

var findingLabels = map[findingKind]string{
	missingGroup: "Missing group",
	missingItem:  "Missing item",
	unusedGroup:  "Unused group",
	unusedItem:   "Unused item",
}

// outputFindings prints the reconciliation report, one finding per line.
func outputFindings(w io.Writer, findings []finding, format string) error {
	if format == "json" {
		if findings == nil {
			findings = []finding{}
		}
		return outputJSON(w, findings)
	}

	if len(findings) == 0 {
		fmt.Fprintln(w, "No missing or unused translations found.")
		return nil
	}
	for _, f := range findings {
		fmt.Fprintf(w, "%s: %s\n", findingLabels[f.Kind], f.Key)
	}
	return nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
