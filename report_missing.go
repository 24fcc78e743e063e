package main

import (
	"flag"
	"io"
	"os"
	"sort"
)

func runMissing(cfg config, args []string) error {
	fs := flag.NewFlagSet("missing", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportMissing(s, os.Stdout, *format)
}

// reportMissing lists the used keys absent from the locale's definitions.
func reportMissing(s *session, w io.Writer, format string) error {
	a, err := s.analyze()
	if err != nil {
		return err
	}
	missing := findingKeys(a.findings, missingItem)
	sort.Strings(missing)
	return outputStrings(w, missing, format, "missing keys in "+s.cfg.Locale)
}
