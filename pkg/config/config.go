/*
Package config manages the TOML config for WordCheck.

	[vocab]
	path = "vocab.json"
	watch = false
	reload_debounce_ms = 200

	[suggest]
	default_limit = 5
	max_limit = 64
	max_distance = 0

	[check]
	max_words = 500
	suggestions = true

	[cli]
	default_limit = 5
	show_distance = true

Missing keys keep their defaults. A section whose values have the wrong type
is skipped key by key instead of failing the whole file.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Vocab   VocabConfig   `toml:"vocab"`
	Suggest SuggestConfig `toml:"suggest"`
	Check   CheckConfig   `toml:"check"`
	CLI     CliConfig     `toml:"cli"`
}

// VocabConfig holds vocabulary source options.
type VocabConfig struct {
	Path             string `toml:"path"`
	Watch            bool   `toml:"watch"`
	ReloadDebounceMs int    `toml:"reload_debounce_ms"`
}

// SuggestConfig holds suggestion engine options.
type SuggestConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
	MaxDistance  int `toml:"max_distance"`
}

// CheckConfig holds spell-check pass options.
type CheckConfig struct {
	MaxWords    int  `toml:"max_words"`
	Suggestions bool `toml:"suggestions"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowDistance bool `toml:"show_distance"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Vocab: VocabConfig{
			Path:             utils.VocabFileName,
			Watch:            false,
			ReloadDebounceMs: 200,
		},
		Suggest: SuggestConfig{
			DefaultLimit: 5,
			MaxLimit:     64,
			MaxDistance:  0,
		},
		Check: CheckConfig{
			MaxWords:    500,
			Suggestions: true,
		},
		CLI: CliConfig{
			DefaultLimit: 5,
			ShowDistance: true,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. defaultPath, created with defaults when missing
// 3. Builtin defaults
//
// It returns the config and the path it came from ("" for builtin defaults).
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	if defaultPath == "" {
		log.Debug("No default config path, using built-in defaults")
		return DefaultConfig(), ""
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return nil, err
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Values that fail to decode fall back
// to their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(raw, "vocab"); ok {
		extractVocabConfig(section, &config.Vocab)
	}
	if section, ok := utils.ExtractSection(raw, "suggest"); ok {
		extractSuggestConfig(section, &config.Suggest)
	}
	if section, ok := utils.ExtractSection(raw, "check"); ok {
		extractCheckConfig(section, &config.Check)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config
}

func extractVocabConfig(data map[string]any, vocab *VocabConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		vocab.Path = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		vocab.Watch = val
	}
	if val, ok := utils.ExtractInt(data, "reload_debounce_ms"); ok {
		vocab.ReloadDebounceMs = val
	}
}

func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		suggest.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt(data, "max_limit"); ok {
		suggest.MaxLimit = val
	}
	if val, ok := utils.ExtractInt(data, "max_distance"); ok {
		suggest.MaxDistance = val
	}
}

func extractCheckConfig(data map[string]any, check *CheckConfig) {
	if val, ok := utils.ExtractInt(data, "max_words"); ok {
		check.MaxWords = val
	}
	if val, ok := utils.ExtractBool(data, "suggestions"); ok {
		check.Suggestions = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_distance"); ok {
		cli.ShowDistance = val
	}
}

// sanitize resets out-of-range values to their defaults.
func (c *Config) sanitize() {
	defaults := DefaultConfig()

	if c.Vocab.ReloadDebounceMs < 0 {
		log.Warnf("reload_debounce_ms %d is negative, using %d", c.Vocab.ReloadDebounceMs, defaults.Vocab.ReloadDebounceMs)
		c.Vocab.ReloadDebounceMs = defaults.Vocab.ReloadDebounceMs
	}
	if c.Suggest.MaxLimit < 1 {
		log.Warnf("max_limit %d is below 1, using %d", c.Suggest.MaxLimit, defaults.Suggest.MaxLimit)
		c.Suggest.MaxLimit = defaults.Suggest.MaxLimit
	}
	if c.Suggest.DefaultLimit < 1 || c.Suggest.DefaultLimit > c.Suggest.MaxLimit {
		log.Warnf("default_limit %d is outside [1, %d], using %d", c.Suggest.DefaultLimit, c.Suggest.MaxLimit, min(defaults.Suggest.DefaultLimit, c.Suggest.MaxLimit))
		c.Suggest.DefaultLimit = min(defaults.Suggest.DefaultLimit, c.Suggest.MaxLimit)
	}
	if c.Suggest.MaxDistance < 0 {
		c.Suggest.MaxDistance = 0
	}
	if c.Check.MaxWords < 1 {
		c.Check.MaxWords = defaults.Check.MaxWords
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = defaults.CLI.DefaultLimit
	}
}

// ClampLimit maps a requested suggestion count onto the configured range.
// Zero or negative requests get the default limit.
func (c *Config) ClampLimit(requested int) int {
	if requested <= 0 {
		return c.Suggest.DefaultLimit
	}
	return min(requested, c.Suggest.MaxLimit)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
