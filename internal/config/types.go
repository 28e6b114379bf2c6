package config

import "time"

// FileConfig represents the throng configuration file structure
type FileConfig struct {
	// Defaults contains default settings for operations
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty" mapstructure:"defaults"`

	// Profiles is a map of named setting overrides selectable per run
	Profiles map[string]ProfileConfig `yaml:"profiles,omitempty" json:"profiles,omitempty" mapstructure:"profiles"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// Limit is the concurrency limit for operations
	Limit int `yaml:"limit,omitempty" json:"limit,omitempty" mapstructure:"limit"`

	// Timeout bounds each item's unit of work
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" mapstructure:"timeout"`

	// Shell is the shell used to interpret per-item commands
	Shell string `yaml:"shell,omitempty" json:"shell,omitempty" mapstructure:"shell"`

	// OutputFormat is the default output format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty" mapstructure:"outputFormat"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty" mapstructure:"noColor"`
}

// ProfileConfig represents one named override tier. Unset fields fall
// through to the defaults tier.
type ProfileConfig struct {
	// Limit overrides the concurrency limit
	Limit int `yaml:"limit,omitempty" json:"limit,omitempty" mapstructure:"limit"`

	// Timeout overrides the per-item timeout
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" mapstructure:"timeout"`

	// Shell overrides the command shell
	Shell string `yaml:"shell,omitempty" json:"shell,omitempty" mapstructure:"shell"`
}
