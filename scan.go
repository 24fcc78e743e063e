package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// keyReference records where a translation key is used.
type keyReference struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// keyRef names one item of one group.
type keyRef struct {
	group groupID
	item  string
}

// lookupFunctions are the calls whose first argument is a translation key.
// Blade directives and facade calls are listed with their prefix.
var lookupFunctions = []string{
	"trans",
	"trans_choice",
	"Lang::get",
	"Lang::choice",
	"Lang::trans",
	"Lang::transChoice",
	"@lang",
	"@choice",
	"__",
	"$trans.get",
}

// Patterns for finding translation keys in source text. Matching is purely
// lexical: keys built by concatenation or interpolation are not seen.
var (
	// trans('group.item'), @lang("group.nested.item", ...). The lookup call
	// must not follow an identifier character, "|" or ">" so chained method
	// calls like $obj->trans('a.b') are ignored.
	groupKeyPattern = regexp.MustCompile(`(?is)(?:^|[^\w|>])(?:` + lookupAlternation() + `)\(['"]` +
		`([a-zA-Z0-9_-]+\.[^ )\x01][^)\x01]*?)['"][),]`)
	// Any quoted first argument, single or double quoted, with backslash
	// escapes.
	stringKeyPattern = regexp.MustCompile(`(?is)(?:^|[^\w])(?:` + lookupAlternation() + `)\(` +
		`(?:'((?:\\.|[^'\\])*)'|"((?:\\.|[^"\\])*)")[),]`)
	// String literals of group.item form; these already count as group keys.
	dottedKeyLiteral = regexp.MustCompile(`(?s)^[a-zA-Z0-9_-]+(?:\.[^\x01) ]+)+$`)
)

func lookupAlternation() string {
	quoted := make([]string, len(lookupFunctions))
	for i, fn := range lookupFunctions {
		quoted[i] = regexp.QuoteMeta(fn)
	}
	return strings.Join(quoted, "|")
}

// literal is a key found in source text and the byte offset of its first
// character.
type literal struct {
	key    string
	offset int
}

// findGroupKeys returns the dotted group keys referenced in content.
func findGroupKeys(content string) []literal {
	var found []literal
	for _, m := range groupKeyPattern.FindAllStringSubmatchIndex(content, -1) {
		found = append(found, literal{key: content[m[2]:m[3]], offset: m[2]})
	}
	return found
}

// findFlatKeys returns the quoted keys in content that are not group keys.
// Strings in group.item form are left to findGroupKeys, and namespaced
// keys (package::group.item) are skipped unless they contain a space, which
// marks them as sentences rather than identifiers.
func findFlatKeys(content string) []literal {
	var found []literal
	for _, m := range stringKeyPattern.FindAllStringSubmatchIndex(content, -1) {
		var key string
		var offset int
		if m[2] >= 0 {
			key, offset = unescapeQuoted(content[m[2]:m[3]], '\''), m[2]
		} else {
			key, offset = unescapeQuoted(content[m[4]:m[5]], '"'), m[4]
		}
		if dottedKeyLiteral.MatchString(key) {
			continue
		}
		if strings.Contains(key, "::") && strings.Contains(key, ".") && !strings.Contains(key, " ") {
			continue
		}
		found = append(found, literal{key: key, offset: offset})
	}
	return found
}

// unescapeQuoted resolves \<quote> and \\ inside a quoted literal. Other
// escape sequences are kept as written.
func unescapeQuoted(s string, quote byte) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == quote || s[i+1] == '\\') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// lineAt returns the 1-based line of offset in content.
func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}

// compilePatterns compiles file name globs such as "*.php".
func compilePatterns(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: source pattern %q: %w", ErrConfig, p, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// scanSourceFiles walks the source tree and returns file paths whose base
// name matches one of the patterns, skipping the named directories.
func scanSourceFiles(root string, patterns []glob.Glob, excludeDirs []string) ([]string, error) {
	var files []string
	skip := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		skip[d] = true
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && skip[name] {
				return filepath.SkipDir
			}
			return nil
		}
		for _, p := range patterns {
			if p.Match(name) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	return files, err
}

// usage is the result of scanning: the used key catalog and where each
// key was seen.
type usage struct {
	used *catalog
	refs map[keyRef][]keyReference
}

// extractKeys scans the source files under root and builds the used key
// catalog. Group keys are listed before flat keys, each in first-seen
// order. Any unreadable file aborts the scan.
func extractKeys(root string, patterns []glob.Glob, excludeDirs []string, ex exclusions) (*usage, error) {
	files, err := scanSourceFiles(root, patterns, excludeDirs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}

	var groupKeys, flatKeys []string
	groupRefs := make(map[string][]keyReference)
	flatRefs := make(map[string][]keyReference)

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScan, err)
		}
		content := string(data)
		relPath, _ := filepath.Rel(root, file)

		for _, lit := range findGroupKeys(content) {
			if _, seen := groupRefs[lit.key]; !seen {
				groupKeys = append(groupKeys, lit.key)
			}
			groupRefs[lit.key] = append(groupRefs[lit.key], keyReference{File: relPath, Line: lineAt(content, lit.offset)})
		}
		for _, lit := range findFlatKeys(content) {
			if _, seen := flatRefs[lit.key]; !seen {
				flatKeys = append(flatKeys, lit.key)
			}
			flatRefs[lit.key] = append(flatRefs[lit.key], keyReference{File: relPath, Line: lineAt(content, lit.offset)})
		}
	}

	u := &usage{used: newCatalog(), refs: make(map[keyRef][]keyReference)}
	for _, key := range groupKeys {
		name, item, _ := strings.Cut(key, ".")
		g := grouped(name)
		if ex.excluded(g) {
			continue
		}
		u.used.set(g, item, "")
		ref := keyRef{group: g, item: item}
		u.refs[ref] = append(u.refs[ref], groupRefs[key]...)
	}
	if !ex.excluded(flatGroup) {
		for _, key := range flatKeys {
			u.used.set(flatGroup, key, "")
			u.refs[keyRef{group: flatGroup, item: key}] = flatRefs[key]
		}
	}
	return u, nil
}
