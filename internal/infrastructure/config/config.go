package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=3001"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Store StoreConfig
}

type StoreConfig struct {
	// Driver selects the persistence backend: "jsonfile" or "sqlite".
	Driver     string `env:"STORE_DRIVER, default=jsonfile"`
	DataFile   string `env:"DATA_FILE,    default=data/workspace.json"`
	SQLitePath string `env:"SQLITE_PATH,  default=data/workspace.db"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
