package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

func runReferences(cfg config, args []string) error {
	fs := flag.NewFlagSet("references", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportReferences(s, os.Stdout, *format)
}

type referenceEntry struct {
	Key        string         `json:"key"`
	Flat       bool           `json:"flat,omitempty"`
	References []keyReference `json:"references"`
}

// reportReferences prints where each used key appears (file:line).
func reportReferences(s *session, w io.Writer, format string) error {
	u, err := extractKeys(s.root, s.patterns, s.cfg.ExcludeDirs, s.ex)
	if err != nil {
		return err
	}

	var entries []referenceEntry
	for _, g := range u.used.groupIDs() {
		for _, item := range u.used.group(g).keys {
			entries = append(entries, referenceEntry{
				Key:        g.qualify(item),
				Flat:       g.flat,
				References: u.refs[keyRef{group: g, item: item}],
			})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	if format == "json" {
		if entries == nil {
			entries = []referenceEntry{}
		}
		return outputJSON(w, entries)
	}

	for _, e := range entries {
		if e.Flat {
			fmt.Fprintf(w, "%q (flat):\n", e.Key)
		} else {
			fmt.Fprintf(w, "%s:\n", e.Key)
		}
		for _, loc := range e.References {
			fmt.Fprintf(w, "  %s:%d\n", loc.File, loc.Line)
		}
	}
	return nil
}
