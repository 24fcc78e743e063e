package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type regenerateOptions struct {
	dir      string // group file directory of the locale
	flatPath string // flat key file of the locale
	format   string // format of group files that do not exist yet
	sort     bool
	yes      bool
}

// regenerate rewrites one definition file per group of useful. Existing
// files are overwritten whole: comments and formatting are lost. Groups
// read from a file are written back to that file; new groups get
// <group><ext> in opts.dir. Unless opts.yes is set the user is asked
// first, and errDeclined is returned when they refuse.
//
// A write failure stops the run; files written before it stay written.
func regenerate(opts regenerateOptions, useful *catalog, defs *definitions, c confirmer) ([]string, error) {
	if !opts.yes {
		ok, err := c.confirm(fmt.Sprintf("Overwrite translation files under %s?", opts.dir))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errDeclined
		}
	}

	if err := os.MkdirAll(opts.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	var written []string
	for _, g := range useful.groupIDs() {
		path := targetPath(g, opts, defs)
		it := useful.group(g)
		data, err := encodeItemsFile(path, it, it.ordered(opts.sort))
		if err != nil {
			return written, fmt.Errorf("%w: encoding %s: %w", ErrWrite, path, err)
		}
		log.Info().Str("path", path).Int("count", it.len()).Msg("Regenerating file")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// targetPath returns the file a group is written to.
func targetPath(g groupID, opts regenerateOptions, defs *definitions) string {
	if path, ok := defs.paths[g]; ok {
		return path
	}
	if g.flat {
		return opts.flatPath
	}
	return filepath.Join(opts.dir, g.name+formatExt(opts.format))
}
