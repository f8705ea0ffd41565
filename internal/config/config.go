// Package config handles .smellscan.yaml configuration files.
package config

// Config represents the contents of a .smellscan.yaml (or .smellscan.toml)
// file. Every field is optional; unset fields fall through to the next layer.
type Config struct {
	TestDir   string   `yaml:"test_dir,omitempty" toml:"test_dir"`
	MainDir   string   `yaml:"main_dir,omitempty" toml:"main_dir"`
	TargetDir string   `yaml:"target_dir,omitempty" toml:"target_dir"`
	Jar       string   `yaml:"jar,omitempty" toml:"jar"`
	Java      string   `yaml:"java,omitempty" toml:"java"`
	Timeout   string   `yaml:"timeout,omitempty" toml:"timeout"`
	Format    string   `yaml:"format,omitempty" toml:"format"`
	Project   string   `yaml:"project,omitempty" toml:"project"`
	Exclude   []string `yaml:"exclude,omitempty" toml:"exclude"`
}

// FileName is the expected config file name in a project root.
const FileName = ".smellscan.yaml"

// TOMLFileName is the alternative config file name, used only when FileName
// is absent.
const TOMLFileName = ".smellscan.toml"

// JarEnv names the environment variable consulted for the tsDetect jar when
// neither flags nor config files set one.
const JarEnv = "SMELLSCAN_JAR"

// Built-in defaults, mirroring the Maven layout tsDetect projects use.
const (
	DefaultTestDir   = "src/test/java"
	DefaultMainDir   = "src/main/java"
	DefaultTargetDir = "target"
	DefaultFormat    = "text"
	DefaultProject   = "App"
)
