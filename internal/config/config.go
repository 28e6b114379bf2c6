package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/nkamat/throng"
)

const (
	defaultConfigName = ".throng"
	defaultConfigDir  = ".throng"

	// DefaultTimeout bounds each item's command unless overridden
	DefaultTimeout = 30 * time.Second

	// DefaultShell interprets per-item commands unless overridden
	DefaultShell = "sh"
)

// Manager handles throng CLI configuration
type Manager struct {
	configPath string
	config     *FileConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &FileConfig{},
	}
}

// Load loads the throng configuration from file
func (m *Manager) Load() (*FileConfig, error) {
	// Set up config file path
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		// Try multiple locations
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.throng/config.yaml
		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		// Check ~/.throng.yaml
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	// Set environment variable support
	m.viper.SetEnvPrefix("THRONG")
	m.viper.AutomaticEnv()

	// Initialize config to ensure defaults are set even for empty configs
	m.config = &FileConfig{}

	// Read config file
	if err := m.viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	// Unmarshal into config struct
	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply defaults
	m.applyDefaults()

	return m.config, nil
}

// Save saves the current configuration to file
func (m *Manager) Save() error {
	if m.configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, defaultConfigDir)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		m.configPath = filepath.Join(configDir, "config.yaml")
	}

	// Ensure directory exists
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config to file
	if err := m.viper.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *FileConfig {
	return m.config
}

// GetProfile returns the named profile merged over the defaults tier.
// Unknown names return the defaults unchanged.
func (m *Manager) GetProfile(name string) DefaultsConfig {
	merged := m.config.Defaults

	if name == "" || m.config.Profiles == nil {
		return merged
	}

	profile, ok := m.config.Profiles[name]
	if !ok {
		return merged
	}

	if profile.Limit > 0 {
		merged.Limit = profile.Limit
	}
	if profile.Timeout > 0 {
		merged.Timeout = profile.Timeout
	}
	if profile.Shell != "" {
		merged.Shell = profile.Shell
	}
	return merged
}

// SetProfile sets or updates a named profile
func (m *Manager) SetProfile(name string, profile ProfileConfig) {
	if m.config.Profiles == nil {
		m.config.Profiles = make(map[string]ProfileConfig)
	}

	m.config.Profiles[name] = profile
	m.viper.Set("profiles", m.config.Profiles)
}

// RemoveProfile removes a named profile
func (m *Manager) RemoveProfile(name string) {
	if m.config.Profiles == nil {
		return
	}

	delete(m.config.Profiles, name)
	m.viper.Set("profiles", m.config.Profiles)
}

// applyDefaults sets default values for configuration.
// An invalid (non-positive) limit falls back to the engine default rather
// than being reported as an error.
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Defaults.Limit <= 0 {
		m.config.Defaults.Limit = throng.DefaultLimit
	}

	if m.config.Defaults.Timeout == 0 {
		m.config.Defaults.Timeout = DefaultTimeout
	}

	if m.config.Defaults.Shell == "" {
		m.config.Defaults.Shell = DefaultShell
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = "table"
	}
}
