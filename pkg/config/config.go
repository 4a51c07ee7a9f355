/*
Package config manages TOML config for SpellServe.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the config file looked up in the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Corpus CorpusConfig `toml:"corpus"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxWordLen     int `toml:"max_word_len"`
	MaxSuggestions int `toml:"max_suggestions"`
}

// CorpusConfig holds corpus loading options.
type CorpusConfig struct {
	DefaultPath string `toml:"default_path"`
	Watch       bool   `toml:"watch"`
	CacheSize   int    `toml:"cache_size"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit  int  `toml:"default_limit"`
	ShowFrequency bool `toml:"show_frequency"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxWordLen:     60,
			MaxSuggestions: 24,
		},
		Corpus: CorpusConfig{
			DefaultPath: "big.txt",
			Watch:       false,
			CacheSize:   4096,
		},
		CLI: CliConfig{
			DefaultLimit:  10,
			ShowFrequency: true,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. the platform user config dir (XDG on linux)
// 2. current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		primaryPath := utils.UserConfigDir(homeDir)
		if result := utils.CheckDirStatus(primaryPath); result.Writable {
			return primaryPath, nil
		}
		log.Warnf("Config directory %s is not writable", primaryPath)
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}

	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/spellserve/config.toml, created when missing
// 3. Builtin defaults
//
// The returned path is empty when builtin defaults are used.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
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

// LoadConfig loads from a TOML file. Values that do not parse fall back to their
// defaults one by one; an unreadable file is an error.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config.normalized(), nil
}

// tryPartialParse keeps every well-typed value of a file that failed to decode as a whole.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	generic, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		if _, statErr := os.Stat(configPath); statErr != nil {
			return nil, statErr
		}
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(generic, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(generic, "corpus"); ok {
		extractCorpusConfig(section, &config.Corpus)
	}
	if section, ok := utils.ExtractSection(generic, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config.normalized(), nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
	if val, ok := utils.ExtractInt(data, "max_suggestions"); ok {
		server.MaxSuggestions = val
	}
}

func extractCorpusConfig(data map[string]any, corpus *CorpusConfig) {
	if val, ok := utils.ExtractString(data, "default_path"); ok {
		corpus.DefaultPath = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		corpus.Watch = val
	}
	if val, ok := utils.ExtractInt(data, "cache_size"); ok {
		corpus.CacheSize = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_frequency"); ok {
		cli.ShowFrequency = val
	}
}

// normalized replaces out of range values with defaults.
func (c *Config) normalized() *Config {
	defaults := DefaultConfig()
	if c.Server.MaxWordLen <= 0 {
		log.Warnf("Invalid server.max_word_len %d, using %d", c.Server.MaxWordLen, defaults.Server.MaxWordLen)
		c.Server.MaxWordLen = defaults.Server.MaxWordLen
	}
	if c.Server.MaxSuggestions < 0 {
		c.Server.MaxSuggestions = defaults.Server.MaxSuggestions
	}
	if c.Corpus.DefaultPath == "" {
		c.Corpus.DefaultPath = defaults.Corpus.DefaultPath
	}
	if c.Corpus.CacheSize < 0 {
		c.Corpus.CacheSize = 0
	}
	if c.CLI.DefaultLimit < 0 {
		c.CLI.DefaultLimit = defaults.CLI.DefaultLimit
	}
	return c
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
