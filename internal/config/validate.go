package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dfpello/smellscan/internal/report"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	errs = append(errs, checkDirs(cfg.TestDir, cfg.MainDir, cfg.TargetDir)...)

	if cfg.Format != "" {
		if _, err := report.Get(cfg.Format); err != nil {
			errs = append(errs, fmt.Sprintf("format: %v", err))
		}
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("timeout: invalid duration %q", cfg.Timeout))
		case d < 0:
			errs = append(errs, fmt.Sprintf("timeout: must be non-negative, got %s", cfg.Timeout))
		}
	}

	errs = append(errs, checkProject(cfg.Project)...)
	errs = append(errs, checkExclude(cfg.Exclude)...)

	return joinErrors(errs)
}

// ValidateSettings checks merged settings, which include CLI flags that no
// config file has vetted.
func ValidateSettings(s Settings) error {
	var errs []string

	errs = append(errs, checkDirs(s.TestDir, s.MainDir, s.TargetDir)...)

	if s.Format != "" {
		if _, err := report.Get(s.Format); err != nil {
			errs = append(errs, fmt.Sprintf("format: %v", err))
		}
	}
	if s.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("timeout: must be non-negative, got %s", s.Timeout))
	}

	errs = append(errs, checkProject(s.Project)...)
	errs = append(errs, checkExclude(s.Exclude)...)

	return joinErrors(errs)
}

// checkDirs rejects blank directories and relative ones that climb out of
// the project root. Absolute directories are taken as given.
func checkDirs(test, main, target string) []string {
	var errs []string
	for _, d := range []struct{ key, value string }{
		{"test_dir", test},
		{"main_dir", main},
		{"target_dir", target},
	} {
		if d.value == "" {
			continue
		}
		if strings.TrimSpace(d.value) == "" {
			errs = append(errs, fmt.Sprintf("%s: must not be blank", d.key))
			continue
		}
		if filepath.IsAbs(d.value) {
			continue
		}
		clean := filepath.ToSlash(filepath.Clean(d.value))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			errs = append(errs, fmt.Sprintf("%s: relative path %q leaves the project root (use an absolute path)", d.key, d.value))
		}
	}
	return errs
}

// checkProject rejects labels that would add a field to every manifest row.
func checkProject(project string) []string {
	if strings.Contains(project, ",") {
		return []string{fmt.Sprintf("project: must not contain a comma, got %q", project)}
	}
	return nil
}

func checkExclude(patterns []string) []string {
	var errs []string
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Sprintf("exclude: invalid glob pattern %q", p))
		}
	}
	return errs
}

func joinErrors(errs []string) error {
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
