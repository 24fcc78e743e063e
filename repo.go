package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// rootMarkers are files that mark the root of a Laravel-style project.
var rootMarkers = []string{"composer.json", "artisan"}

// repoRoot returns the project root by walking up from the current
// directory looking for one of rootMarkers.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (no composer.json or artisan found); use --root")
		}
		dir = parent
	}
}

// langPath returns the directory holding all locales.
func langPath(root, langRoot string) string {
	if filepath.IsAbs(langRoot) {
		return langRoot
	}
	return filepath.Join(root, langRoot)
}

// definitionsDir returns the directory of one locale's group files.
func definitionsDir(root, langRoot, locale string) string {
	return filepath.Join(langPath(root, langRoot), locale)
}

// flatDefinitionsPath returns the file holding a locale's flat keys.
func flatDefinitionsPath(root, langRoot, locale string) string {
	return filepath.Join(langPath(root, langRoot), locale+".json")
}
