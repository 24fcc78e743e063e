package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Patterns for lookup calls the key extractor cannot resolve.
var (
	// Start of a lookup call, up to and including the opening parenthesis.
	lookupCallPattern = regexp.MustCompile(`(?i)(?:^|[^\w|>])(?:` + lookupAlternation() + `)\(`)
	// A first argument the extractor reads: a quote right after the
	// parenthesis, no interpolation, closed by "," or ")".
	staticArgPattern = regexp.MustCompile(`^(?:'(?:\\.|[^'\\])*'|"(?:\\.|[^"\\$])*")[),]`)
	// The literal text an expression starts with, e.g. 'menu.' in
	// 'menu.' . $item or "menu." in "menu.$item".
	leadingLiteralPattern = regexp.MustCompile(`^\s*(?:'((?:\\.|[^'\\])*)'|"((?:\\.|[^"\\$])*))`)
)

const maxExpressionLen = 80

// dynamicCall is a lookup call whose key is computed at runtime.
type dynamicCall struct {
	Expression string       `json:"expression"`
	Prefix     string       `json:"prefix,omitempty"`
	Ref        keyReference `json:"ref"`
}

func runDynamic(cfg config, args []string) error {
	fs := flag.NewFlagSet("dynamic", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportDynamic(s, os.Stdout, *format)
}

type dynamicReportEntry struct {
	Expression string   `json:"expression"`
	Source     string   `json:"source"`
	Prefix     string   `json:"prefix,omitempty"`
	Matches    []string `json:"matches"`
}

// reportDynamic lists lookup calls with computed keys and, for those
// starting with a literal, the defined keys that share that prefix.
func reportDynamic(s *session, w io.Writer, format string) error {
	calls, err := findDynamicCalls(s.root, s.patterns, s.cfg.ExcludeDirs)
	if err != nil {
		return err
	}
	defs, err := loadDefinitions(s.definitionsDir(), s.flatPath(), s.ex)
	if err != nil {
		return err
	}
	keys := defs.defined.keys()

	entries := make([]dynamicReportEntry, 0, len(calls))
	for _, c := range calls {
		var matches []string
		if c.Prefix != "" {
			for _, k := range keys {
				if strings.HasPrefix(k, c.Prefix) {
					matches = append(matches, k)
				}
			}
		}
		entries = append(entries, dynamicReportEntry{
			Expression: c.Expression,
			Source:     fmt.Sprintf("%s:%d", c.Ref.File, c.Ref.Line),
			Prefix:     c.Prefix,
			Matches:    matches,
		})
	}

	if format == "json" {
		return outputJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No dynamic translation keys found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d dynamic translation keys:\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\n", e.Expression)
		fmt.Fprintf(w, "    source:  %s\n", e.Source)
		if e.Prefix != "" {
			fmt.Fprintf(w, "    matches: %d keys with prefix %q\n", len(e.Matches), e.Prefix)
			for _, k := range e.Matches {
				fmt.Fprintf(w, "      %s\n", k)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// findDynamicCalls scans source files for lookup calls whose first
// argument is not a plain string literal.
func findDynamicCalls(root string, patterns []glob.Glob, excludeDirs []string) ([]dynamicCall, error) {
	files, err := scanSourceFiles(root, patterns, excludeDirs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}

	var calls []dynamicCall
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScan, err)
		}
		relPath, _ := filepath.Rel(root, file)
		for i, line := range strings.Split(string(data), "\n") {
			ref := keyReference{File: relPath, Line: i + 1}
			calls = append(calls, extractDynamicCalls(line, ref)...)
		}
	}
	sort.SliceStable(calls, func(i, j int) bool {
		if calls[i].Ref.File != calls[j].Ref.File {
			return calls[i].Ref.File < calls[j].Ref.File
		}
		return calls[i].Ref.Line < calls[j].Ref.Line
	})
	return calls, nil
}

// extractDynamicCalls returns the lookup calls on one line whose key the
// extractor cannot read.
func extractDynamicCalls(line string, ref keyReference) []dynamicCall {
	var calls []dynamicCall
	for _, m := range lookupCallPattern.FindAllStringIndex(line, -1) {
		arg := line[m[1]:]
		if strings.HasPrefix(arg, ")") || staticArgPattern.MatchString(arg) {
			continue
		}
		call := dynamicCall{Expression: argumentExpression(arg), Ref: ref}
		if call.Expression == "" {
			call.Expression = "(argument on a following line)"
		}
		if lm := leadingLiteralPattern.FindStringSubmatch(arg); lm != nil {
			if lm[1] != "" {
				call.Prefix = unescapeQuoted(lm[1], '\'')
			} else {
				call.Prefix = unescapeQuoted(lm[2], '"')
			}
		}
		calls = append(calls, call)
	}
	return calls
}

// argumentExpression returns the text of the first argument: everything
// up to the first "," or ")" outside quotes and nested parentheses.
func argumentExpression(arg string) string {
	depth := 0
	var quote byte
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[':
			depth++
		case (c == ')' || c == ']') && depth > 0:
			depth--
		case (c == ')' || c == ',') && depth == 0:
			return truncate(strings.TrimSpace(arg[:i]))
		}
	}
	return truncate(strings.TrimSpace(arg))
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxExpressionLen {
		return s
	}
	return string(r[:maxExpressionLen]) + "..."
}
