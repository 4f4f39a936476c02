package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress      = ":3000"
	defaultMateriasFile    = "data/materias.json"
	defaultMigrationsPath  = "migrations"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Logger  Logger
	Storage Storage
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

type Storage struct {
	MateriasFile string `env:"MATERIAS_FILE"`
}

// MustLoad reads .env when present and then the process environment.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("materias_file", defaultMateriasFile)
	viper.SetDefault("migrations_path", defaultMigrationsPath)
	viper.SetDefault("shutdown_timeout", defaultShutdownTimeout)

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      viper.GetString("run_address"),
			ShutdownTimeout: viper.GetDuration("shutdown_timeout"),
		},
		Logger:  Logger{LogLevel: viper.GetString("log_level")},
		Storage: Storage{MateriasFile: viper.GetString("materias_file")},
	}
}
