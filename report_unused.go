package main

import (
	"flag"
	"io"
	"os"
	"sort"
)

func runUnused(cfg config, args []string) error {
	fs := flag.NewFlagSet("unused", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportUnused(s, os.Stdout, *format)
}

// reportUnused lists the defined keys that no source file references.
func reportUnused(s *session, w io.Writer, format string) error {
	a, err := s.analyze()
	if err != nil {
		return err
	}
	unused := findingKeys(a.findings, unusedItem)
	sort.Strings(unused)
	return outputStrings(w, unused, format, "unused keys in "+s.cfg.Locale)
}
