package main

import (
	"flag"
	"io"
	"os"
)

func runStale(cfg config, args []string) error {
	fs := flag.NewFlagSet("stale", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	fs.StringVar(&common.cfg.ReferenceLocale, "reference", cfg.ReferenceLocale, "Locale the other locales are translated from")
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportStale(s, os.Stdout, *format)
}

// referenceDefinitions loads the definitions of the reference locale.
func (s *session) referenceDefinitions() (*definitions, error) {
	return loadDefinitions(
		definitionsDir(s.root, s.cfg.LangRoot, s.cfg.ReferenceLocale),
		flatDefinitionsPath(s.root, s.cfg.LangRoot, s.cfg.ReferenceLocale),
		s.ex,
	)
}

// reportStale lists keys defined in the locale that the reference locale
// no longer defines. Source files are not consulted.
func reportStale(s *session, w io.Writer, format string) error {
	ref, err := s.referenceDefinitions()
	if err != nil {
		return err
	}
	defs, err := loadDefinitions(s.definitionsDir(), s.flatPath(), s.ex)
	if err != nil {
		return err
	}

	var stale []string
	for _, g := range defs.defined.groupIDs() {
		for _, item := range defs.defined.group(g).ordered(true) {
			if !ref.defined.hasItem(g, item) {
				stale = append(stale, g.qualify(item))
			}
		}
	}
	return outputStrings(w, stale, format, "stale keys in "+s.cfg.Locale)
}
