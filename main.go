// trans-collect reconciles the translation keys used in a project's source
// files with the translation files of one locale.
//
// Usage:
//
//	trans-collect [subcommand] [flags]
//
// Without a subcommand it runs "collect". Run "trans-collect help" for a
// list of subcommands.
package main

import (
	"fmt"
	"os"
	"strings"
)

var subcommands = map[string]func(config, []string) error{
	"collect":    runCollect,
	"unused":     runUnused,
	"missing":    runMissing,
	"references": runReferences,
	"dynamic":    runDynamic,
	"check":      runCheck,
	"prune":      runPrune,
	"stale":      runStale,
	"translate":  runTranslate,
}

func main() {
	name, args := "collect", os.Args[1:]
	if len(args) > 0 {
		switch {
		case args[0] == "-h" || args[0] == "--help" || args[0] == "help":
			printUsage()
			return
		case !strings.HasPrefix(args[0], "-"):
			name, args = args[0], args[1:]
		}
	}

	run, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := loadConfig(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	if err := run(cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: trans-collect [subcommand] [flags]

Subcommands:
  collect     Report missing and unused translations; with -r, regenerate
              the translation files (default)
  unused      Keys defined in the locale but not referenced in source code
  missing     Keys referenced in source code but not defined in the locale
  references  Where each used key appears (file:line)
  dynamic     Translation calls whose key is computed at runtime
  check       Lint check: missing + unused keys
  prune       Remove unused keys from YAML translation files in place
  stale       Keys defined in the locale but not in the reference locale
  translate   Used keys missing from the locale, with reference texts

Common flags:
  -G, --exclude-group NAME   Exclude a translation group (repeatable)
  -l, --locale LOCALE        Locale to process (default zh_cn)
  --root DIR                 Project root
  --lang-root DIR            Language directory (default resources/lang)
  --exclude-flat             Exclude flat JSON-style keys

Environment variables prefixed with TRANSCOLLECT_ (also read from .env)
set the defaults, e.g. TRANSCOLLECT_LOCALE, TRANSCOLLECT_SOURCE_PATTERNS.

Run "trans-collect <subcommand> -h" for subcommand-specific flags.`)
}
