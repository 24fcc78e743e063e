package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Definition file formats by extension.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

var definitionFormats = map[string]string{
	".yaml": formatYAML,
	".yml":  formatYAML,
	".json": formatJSON,
}

// formatExt returns the extension new files of the given format get.
func formatExt(format string) string {
	if format == formatJSON {
		return ".json"
	}
	return ".yaml"
}

// definitions is the defined key catalog of one locale together with the
// file each group was read from.
type definitions struct {
	defined *catalog
	paths   map[groupID]string
}

// loadDefinitions reads every group file directly inside dir, plus the flat
// key file at flatPath. A missing directory or flat file yields no groups.
// Subdirectories and hidden files are ignored. Any other file that cannot be
// read or parsed, including one in an unsupported format such as .php,
// fails the whole load, so a corrupt file is never mistaken for an empty one.
func loadDefinitions(dir, flatPath string, ex exclusions) (*definitions, error) {
	defs := &definitions{defined: newCatalog(), paths: make(map[groupID]string)}

	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", dir).Msg("No definition directory")
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(dir, name)
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if _, ok := definitionFormats[strings.ToLower(ext)]; !ok {
			return nil, fmt.Errorf("%w: %s: unsupported definition format", ErrLoad, path)
		}
		g := grouped(strings.TrimSuffix(name, ext))
		if strings.Contains(g.name, ".") {
			log.Warn().Str("path", path).Str("group", g.name).Msg("Group name contains a dot; no source key can refer to it")
		}
		if ex.excluded(g) {
			continue
		}
		if prev, ok := defs.paths[g]; ok {
			return nil, fmt.Errorf("%w: group %q is defined by both %s and %s", ErrLoad, g.name, prev, path)
		}
		if err := defs.load(g, path); err != nil {
			return nil, err
		}
	}

	if ex.excluded(flatGroup) {
		return defs, nil
	}
	if _, err := os.Stat(flatPath); err == nil {
		if err := defs.load(flatGroup, flatPath); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return defs, nil
}

func (d *definitions) load(g groupID, path string) error {
	it, err := loadItemsFile(path)
	if err != nil {
		return err
	}
	group := d.defined.ensure(g)
	for _, k := range it.keys {
		group.set(k, it.get(k))
	}
	d.paths[g] = path
	log.Debug().Str("group", g.String()).Str("path", path).Int("count", it.len()).Msg("Loaded definitions")
	return nil
}

// loadItemsFile reads one definition file, choosing the parser by extension.
func loadItemsFile(path string) (*items, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	var it *items
	if definitionFormats[strings.ToLower(filepath.Ext(path))] == formatJSON {
		it, err = loadJSONItems(data)
	} else {
		it, err = loadYAMLItems(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrLoad, path, err)
	}
	return it, nil
}

// encodeItemsFile serializes items for the file at path, choosing the
// format by extension.
func encodeItemsFile(path string, it *items, keys []string) ([]byte, error) {
	if definitionFormats[strings.ToLower(filepath.Ext(path))] == formatJSON {
		return encodeJSON(it, keys)
	}
	return encodeYAML(it, keys)
}
