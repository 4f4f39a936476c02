package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel     = "warn"
	defaultEnv          = "prod"
	defaultConfigDir    = ".escuela"
	defaultMateriasFile = "data/materias.json"
	defaultTimeout      = 10 * time.Second
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	LogLevel      string        `mapstructure:"log_level"`
	ConfigDir     string        `mapstructure:"config_dir"`
	MateriasFile  string        `mapstructure:"materias_file"`
	ServerAddress string        `mapstructure:"server_address"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Load builds the CLI configuration from .env, the environment and whatever
// config file viper has already read. Flags bound to viper win over both.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("MATERIAS_FILE", defaultMateriasFile)
	viper.SetDefault("TIMEOUT", defaultTimeout)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		ConfigDir:     configDir,
		MateriasFile:  viper.GetString("MATERIAS_FILE"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		Timeout:       viper.GetDuration("TIMEOUT"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.MateriasFile == "" && c.ServerAddress == "" {
		return fmt.Errorf("materias_file or server_address must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// IsRemote reports whether commands go through a server instead of the file.
func (c *Config) IsRemote() bool {
	return c.ServerAddress != ""
}
