package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func runPrune(cfg config, args []string) error {
	fs := flag.NewFlagSet("prune", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	yes := fs.Bool("yes", false, "Answer all confirmation questions with yes")
	fs.BoolVar(yes, "y", false, "Shorthand for --yes")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	_, err = prune(s, *yes, stdinConfirmer())
	return err
}

// prune removes unused items from the locale's YAML definition files,
// editing the node tree so comments and layout survive. JSON files are
// left alone. Returns the number of items removed.
func prune(s *session, yes bool, c confirmer) (int, error) {
	a, err := s.analyze()
	if err != nil {
		return 0, err
	}

	unused := make(map[groupID][]string)
	total := 0
	for _, g := range a.defs.defined.groupIDs() {
		for _, item := range a.defs.defined.group(g).keys {
			if !a.usage.used.hasItem(g, item) {
				unused[g] = append(unused[g], item)
				total++
			}
		}
	}
	if total == 0 {
		log.Info().Msg("No unused keys to remove")
		return 0, nil
	}

	if !yes {
		ok, err := c.confirm(fmt.Sprintf("Remove %d unused keys from files under %s?", total, s.definitionsDir()))
		if err != nil {
			return 0, err
		}
		if !ok {
			log.Info().Err(errDeclined).Msg("No files changed")
			return 0, nil
		}
	}

	removed := 0
	for _, g := range a.defs.defined.groupIDs() {
		items := unused[g]
		if len(items) == 0 {
			continue
		}
		path := a.defs.paths[g]
		relPath, _ := filepath.Rel(s.root, path)
		if definitionFormats[strings.ToLower(filepath.Ext(path))] != formatYAML {
			log.Warn().Str("path", relPath).Msg("Only YAML files can be pruned; use collect --regenerate instead")
			continue
		}
		n, err := removeItemsFromFile(path, items)
		if err != nil {
			return removed, err
		}
		removed += n
		log.Info().Str("path", relPath).Int("count", n).Msg("Removed unused keys")
	}
	return removed, nil
}

// removeItemsFromFile removes the given items from a YAML file, pruning
// empty parent nodes. The file is only rewritten when something was
// removed. Returns the number of items removed.
func removeItemsFromFile(path string, items []string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: parsing %s: %w", ErrLoad, path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return 0, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return 0, nil
	}

	removed := 0
	for _, item := range items {
		if removeItemFromNode(root, item) {
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return 0, fmt.Errorf("%w: encoding %s: %w", ErrWrite, path, err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("%w: encoding %s: %w", ErrWrite, path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return removed, nil
}

