package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// envPrefix prefixes every environment variable read by the tool.
const envPrefix = "TRANSCOLLECT_"

// config holds the settings shared by all subcommands. Values come from
// the environment (optionally via a .env file) and are overridden by
// command-line flags.
type config struct {
	Root            string   `env:"ROOT"`
	LangRoot        string   `env:"LANG_ROOT" envDefault:"resources/lang"`
	Locale          string   `env:"LOCALE" envDefault:"zh_cn"`
	ReferenceLocale string   `env:"REFERENCE_LOCALE" envDefault:"en"`
	FileFormat      string   `env:"FILE_FORMAT" envDefault:"yaml"`
	SourcePatterns  []string `env:"SOURCE_PATTERNS" envDefault:"*.php,*.twig,*.vue" envSeparator:","`
	ExcludeDirs     []string `env:"EXCLUDE_DIRS" envDefault:"storage,vendor,node_modules,.git" envSeparator:","`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
}

// loadDotEnv loads variables from path into the process environment if the
// file exists. Variables already set are not overridden.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: loading %s: %w", ErrConfig, path, err)
	}
	return nil
}

// loadConfig parses the configuration from environ, or from the process
// environment when environ is nil.
func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	opts := env.Options{Prefix: envPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// validate checks values that would otherwise fail late or write outside
// the language directory.
func (cfg config) validate() error {
	for _, locale := range []string{cfg.Locale, cfg.ReferenceLocale} {
		if locale == "" || strings.ContainsAny(locale, `/\`) || locale == "." || locale == ".." {
			return fmt.Errorf("%w: locale %q is not a directory name", ErrConfig, locale)
		}
	}
	if cfg.FileFormat != formatYAML && cfg.FileFormat != formatJSON {
		return fmt.Errorf("%w: file format %q (want yaml or json)", ErrConfig, cfg.FileFormat)
	}
	if len(cfg.SourcePatterns) == 0 {
		return fmt.Errorf("%w: no source patterns", ErrConfig)
	}
	if !logLevels[cfg.LogLevel] {
		return fmt.Errorf("%w: log level %q", ErrConfig, cfg.LogLevel)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		log.Warn().Str("locale", cfg.Locale).Msg("Locale is not a BCP 47 language tag")
	}
	return nil
}
