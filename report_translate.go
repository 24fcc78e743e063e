package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

func runTranslate(cfg config, args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	fs.StringVar(&common.cfg.ReferenceLocale, "reference", cfg.ReferenceLocale, "Locale to take source texts from")
	format := fs.String("format", "text", "Output format: text, json")
	batch := fs.Int("batch", 0, "Batch number (1-indexed); requires --batches")
	batches := fs.Int("batches", 0, "Total number of batches")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportTranslate(s, os.Stdout, *format, *batch, *batches)
}

type translatePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// reportTranslate outputs key=value pairs for keys that source code uses
// but the locale does not define. The value is the reference locale's text,
// or empty when the reference does not define the key either. This is the
// work list for translators.
func reportTranslate(s *session, w io.Writer, format string, batch, batches int) error {
	if batches < 0 || (batches > 0 && (batch < 1 || batch > batches)) {
		return fmt.Errorf("--batch must be between 1 and %d", batches)
	}

	a, err := s.analyze()
	if err != nil {
		return err
	}
	ref, err := s.referenceDefinitions()
	if err != nil {
		return err
	}

	var pairs []translatePair
	for _, g := range a.usage.used.groupIDs() {
		for _, item := range a.usage.used.group(g).keys {
			if a.defs.defined.hasItem(g, item) {
				continue
			}
			var value string
			if it := ref.defined.group(g); it != nil {
				value = it.get(item)
			}
			pairs = append(pairs, translatePair{Key: g.qualify(item), Value: value})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })

	if batches > 0 {
		total := len(pairs)
		size := (total + batches - 1) / batches
		start := min((batch-1)*size, total)
		end := min(start+size, total)
		pairs = pairs[start:end]
	}

	if format == "json" {
		if pairs == nil {
			pairs = []translatePair{}
		}
		return outputJSON(w, pairs)
	}

	if len(pairs) == 0 {
		fmt.Fprintf(w, "No used keys missing from %s.\n", s.cfg.Locale)
		return nil
	}

	label := fmt.Sprintf("Found %d used keys missing from %s", len(pairs), s.cfg.Locale)
	if batches > 0 {
		label += fmt.Sprintf(" (batch %d of %d)", batch, batches)
	}
	fmt.Fprintf(w, "%s:\n\n", label)
	for _, p := range pairs {
		fmt.Fprintf(w, "%s=%s\n", p.Key, p.Value)
	}
	return nil
}
