package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Phonebook is the path of the JSON file holding the records.
	Phonebook string `yaml:"phonebook" mapstructure:"phonebook"`
	// PageSize is how many records a listing page shows.
	PageSize int `yaml:"page_size" mapstructure:"page_size"`
	// Plain forces the line-mode menu even on a real terminal.
	Plain bool `yaml:"plain" mapstructure:"plain"`
}

func DefaultConfig() *Config {
	return &Config{
		Phonebook: defaultPhonebookPath(),
		PageSize:  5,
	}
}

func defaultPhonebookPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// no home, keep the file next to the binary like the old tool did
		return "phonebook.json"
	}
	return filepath.Join(home, ".local", "share", "rolodex", "phonebook.json")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "rolodex"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "rolodex"))

	// Environment variables
	viper.SetEnvPrefix("ROLODEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.Validate()
	return cfg, nil
}

// Validate fixes up values that would break the pager.
func (c *Config) Validate() {
	if c.PageSize < 1 {
		c.PageSize = 5
	}
	if c.Phonebook == "" {
		c.Phonebook = defaultPhonebookPath()
	}
}
