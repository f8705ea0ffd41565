package config

import (
	"os"
	"time"
)

// Settings is the fully resolved configuration for one run.
type Settings struct {
	TestDir   string
	MainDir   string
	TargetDir string
	Jar       string
	Java      string
	Timeout   time.Duration
	Format    string
	Project   string
	Exclude   []string
}

// Merge layers configuration sources. CLI values take precedence; zero-value
// CLI fields fall through to the project file, then the global file, then
// the environment, then built-in defaults. Unparsable timeouts are ignored
// here; Validate reports them.
func Merge(cli Settings, project, global *Config) Settings {
	result := cli

	for _, fc := range []*Config{project, global} {
		if fc == nil {
			continue
		}
		if result.TestDir == "" {
			result.TestDir = fc.TestDir
		}
		if result.MainDir == "" {
			result.MainDir = fc.MainDir
		}
		if result.TargetDir == "" {
			result.TargetDir = fc.TargetDir
		}
		if result.Jar == "" {
			result.Jar = fc.Jar
		}
		if result.Java == "" {
			result.Java = fc.Java
		}
		if result.Format == "" {
			result.Format = fc.Format
		}
		if result.Project == "" {
			result.Project = fc.Project
		}
		if len(result.Exclude) == 0 && len(fc.Exclude) > 0 {
			result.Exclude = fc.Exclude
		}
		if result.Timeout == 0 && fc.Timeout != "" {
			if d, err := time.ParseDuration(fc.Timeout); err == nil {
				result.Timeout = d
			}
		}
	}

	if result.Jar == "" {
		result.Jar = os.Getenv(JarEnv)
	}

	if result.TestDir == "" {
		result.TestDir = DefaultTestDir
	}
	if result.MainDir == "" {
		result.MainDir = DefaultMainDir
	}
	if result.TargetDir == "" {
		result.TargetDir = DefaultTargetDir
	}
	if result.Format == "" {
		result.Format = DefaultFormat
	}
	if result.Project == "" {
		result.Project = DefaultProject
	}
	return result
}
