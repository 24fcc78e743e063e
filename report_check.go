package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func runCheck(cfg config, args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	common := registerCommonFlags(fs, cfg)
	fs.Parse(args)

	s, err := common.session()
	if err != nil {
		return err
	}
	return reportCheck(s, os.Stdout)
}

// reportCheck is a lint check: it fails when keys are missing from or
// unused in the locale. Dynamic keys are counted but never fail the check.
func reportCheck(s *session, w io.Writer) error {
	a, err := s.analyze()
	if err != nil {
		return err
	}
	calls, err := findDynamicCalls(s.root, s.patterns, s.cfg.ExcludeDirs)
	if err != nil {
		return err
	}

	passed := true
	printResult := func(label string, count int, fatal bool) {
		status := "OK"
		if count > 0 {
			status = "WARN"
			if fatal {
				status = "FAIL"
				passed = false
			}
		}
		fmt.Fprintf(w, "  %-30s %3d  %s\n", label+":", count, status)
	}

	printResult("keys missing from "+s.cfg.Locale, len(findingKeys(a.findings, missingItem)), true)
	printResult("unused keys in "+s.cfg.Locale, len(findingKeys(a.findings, unusedItem)), true)
	printResult("dynamic keys", len(calls), false)

	if passed {
		fmt.Fprintln(w, "All checks passed.")
		return nil
	}
	return fmt.Errorf("checks failed")
}
