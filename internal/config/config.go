package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "CERTDRILL"

// Config holds application configuration loaded from flags, environment
// variables, an optional config file and defaults, in that priority.
type Config struct {
	Env     string `mapstructure:"env"`      // local, production, ...
	DB      string `mapstructure:"db"`       // SQLite path; empty means the XDG default
	DataDir string `mapstructure:"data_dir"` // directory holding bank datasets
	Bank    string `mapstructure:"bank"`     // bank to study; empty means last used
	Seed    uint64 `mapstructure:"seed"`     // 0 seeds from entropy
}

// Production reports whether the app runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration. flags may be nil; when set, flags that were
// changed on the command line override every other source.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "certdrill"))
	}

	v.SetDefault("env", "local")
	v.SetDefault("db", "")
	v.SetDefault("data_dir", "data")
	v.SetDefault("bank", "")
	v.SetDefault("seed", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"db":       "db",
			"data_dir": "data-dir",
			"bank":     "bank",
			"seed":     "seed",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}
