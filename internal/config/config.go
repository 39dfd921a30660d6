package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the CLI configuration read from the environment.
// Flags override these values.
type Config struct {
	OutputDir    string   `env:"SHEAF_OUTPUT_DIR" envDefault:"."`
	Format       string   `env:"SHEAF_FORMAT" envDefault:"json"`
	Ignore       []string `env:"SHEAF_IGNORE" envSeparator:","`
	MaxFileSize  int64    `env:"SHEAF_MAX_FILE_SIZE" envDefault:"0"`
	InboxPattern string   `env:"SHEAF_INBOX_PATTERN"`
	Verbose      bool     `env:"SHEAF_VERBOSE" envDefault:"false"`
}

// Load reads the given dotenv files, then parses the environment.
// Variables already set in the environment win over the files.
// A missing file is not an error.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
