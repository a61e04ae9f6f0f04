package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment (and an
// optional .env file).
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
	// Prog is the program name diagnostics are prefixed with.
	Prog string `env:"PROG_NAME" envDefault:"devtools"`
	// FilesPath is the master directory the files operations are confined to.
	// Empty disables them.
	FilesPath string `env:"FILES_PATH"`
	// RequirementsPath is the directory holding the module definition that
	// --update-requirements refreshes. Empty disables the operation.
	RequirementsPath string `env:"REQUIREMENTS_PATH"`
	// StoragePath is the datastore file for durable access-control state.
	// Empty keeps everything in memory.
	StoragePath string `env:"STORAGE_PATH"`
	// DefaultsPath is the YAML file seeding groups, lists and role tiers.
	DefaultsPath string `env:"DEFAULTS_PATH"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// New loads the configuration. A missing .env file is not an error.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
