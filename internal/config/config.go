package config

// Config represents the complete lintcat configuration.
// It can be loaded from .lintcat/config.yml with environment variable
// overrides.
type Config struct {
	Scan ScanConfig `yaml:"scan" mapstructure:"scan"`
}

// ScanConfig defines where and what to scan.
type ScanConfig struct {
	Root      string   `yaml:"root" mapstructure:"root"`           // directory tree holding the lint sources
	Extension string   `yaml:"extension" mapstructure:"extension"` // source file extension, with leading dot
	Ignore    []string `yaml:"ignore" mapstructure:"ignore"`       // glob patterns to skip
	Workers   int      `yaml:"workers" mapstructure:"workers"`     // concurrent file reads
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Root:      "clippy_lints/src",
			Extension: ".rs",
			Ignore: []string{
				".git/**",
				"target/**",
			},
			Workers: 4,
		},
	}
}
