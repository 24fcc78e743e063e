package main

import (
	"flag"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog/log"
)

// commonFlags are the flags every subcommand accepts. Their defaults come
// from the environment configuration.
type commonFlags struct {
	cfg           config
	excludeGroups stringList
	excludeFlat   bool
}

func registerCommonFlags(fs *flag.FlagSet, cfg config) *commonFlags {
	c := &commonFlags{cfg: cfg}
	fs.StringVar(&c.cfg.Root, "root", cfg.Root, "Project root (default: nearest directory with composer.json or artisan)")
	fs.StringVar(&c.cfg.LangRoot, "lang-root", cfg.LangRoot, "Language directory, relative to the project root")
	fs.StringVar(&c.cfg.Locale, "locale", cfg.Locale, "Locale to process")
	fs.StringVar(&c.cfg.Locale, "l", cfg.Locale, "Shorthand for --locale")
	fs.StringVar(&c.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.Var(&c.excludeGroups, "exclude-group", "Translation group to exclude (repeatable; '*' excludes nothing)")
	fs.Var(&c.excludeGroups, "G", "Shorthand for --exclude-group")
	fs.BoolVar(&c.excludeFlat, "exclude-flat", false, "Exclude flat JSON-style keys")
	return c
}

// session is the validated state of one run.
type session struct {
	cfg      config
	root     string
	ex       exclusions
	patterns []glob.Glob
}

// session validates the parsed flags and resolves the project root.
func (c *commonFlags) session() (*session, error) {
	if err := c.cfg.validate(); err != nil {
		return nil, err
	}
	setupLogging(c.cfg.LogLevel)

	root := c.cfg.Root
	if root == "" {
		var err error
		if root, err = repoRoot(); err != nil {
			return nil, err
		}
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	patterns, err := compilePatterns(c.cfg.SourcePatterns)
	if err != nil {
		return nil, err
	}
	ex := newExclusions(c.excludeGroups, c.excludeFlat)
	log.Debug().Str("root", root).Strs("excluded_groups", ex.names()).Bool("exclude_flat", ex.flat).Msg("Starting run")
	return &session{
		cfg:      c.cfg,
		root:     root,
		ex:       ex,
		patterns: patterns,
	}, nil
}

func (s *session) definitionsDir() string {
	return definitionsDir(s.root, s.cfg.LangRoot, s.cfg.Locale)
}

func (s *session) flatPath() string {
	return flatDefinitionsPath(s.root, s.cfg.LangRoot, s.cfg.Locale)
}

// analysis is the outcome of loading, scanning and reconciling.
type analysis struct {
	defs     *definitions
	usage    *usage
	findings []finding
	useful   *catalog
}

// analyze loads the definitions, scans the sources and reconciles them.
func (s *session) analyze() (*analysis, error) {
	defs, err := loadDefinitions(s.definitionsDir(), s.flatPath(), s.ex)
	if err != nil {
		return nil, err
	}
	u, err := extractKeys(s.root, s.patterns, s.cfg.ExcludeDirs, s.ex)
	if err != nil {
		return nil, err
	}
	findings, useful := reconcile(defs.defined, u.used)
	return &analysis{defs: defs, usage: u, findings: findings, useful: useful}, nil
}
