package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

type collectOptions struct {
	format     string
	regenerate bool
	sort       bool
	yes        bool
}

func runCollect(cfg config, args []string) error {
	fs := flag.NewFlagSet("collect", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	var opts collectOptions
	fs.StringVar(&opts.format, "format", "text", "Output format: text, json")
	fs.BoolVar(&opts.regenerate, "regenerate", false, "Rewrite the translation files with only the used keys. Missing keys get their full key as value (group.item, or the sentence itself for flat keys). WARNING: ALL COMMENTS AND FORMATTING IN YOUR TRANSLATION FILES WILL BE LOST")
	fs.BoolVar(&opts.regenerate, "r", false, "Shorthand for --regenerate")
	fs.BoolVar(&opts.sort, "sort", false, "Sort the items of each regenerated file")
	fs.BoolVar(&opts.yes, "yes", false, "Answer all confirmation questions with yes")
	fs.BoolVar(&opts.yes, "y", false, "Shorthand for --yes")
	fs.StringVar(&common.cfg.FileFormat, "file-format", cfg.FileFormat, "Format of newly created group files: yaml, json")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return collect(s, os.Stdout, opts, stdinConfirmer())
}

// collect prints the reconciliation report and, when requested, regenerates
// the translation files. Declining the confirmation is not an error.
func collect(s *session, w io.Writer, opts collectOptions, c confirmer) error {
	a, err := s.analyze()
	if err != nil {
		return err
	}
	if err := outputFindings(w, a.findings, opts.format); err != nil {
		return err
	}
	if !opts.regenerate {
		return nil
	}

	written, err := regenerate(regenerateOptions{
		dir:      s.definitionsDir(),
		flatPath: s.flatPath(),
		format:   s.cfg.FileFormat,
		sort:     opts.sort,
		yes:      opts.yes,
	}, a.useful, a.defs, c)
	if errors.Is(err, errDeclined) {
		log.Info().Msg("Regeneration declined, no files written")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("path", s.definitionsDir()).Int("files", len(written)).Msg("Regenerated translation files")
	return nil
}
