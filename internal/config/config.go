// Package config loads optional run defaults from a spec-parser.yaml file and
// the process environment. Everything here can be overridden by CLI flags;
// the file only exists so CI setups can pin an output directory without
// repeating flags on every invocation.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/spec-parser/internal/logfields"
)

const (
	// DefaultPath is the defaults file looked up in the working directory.
	DefaultPath = "spec-parser.yaml"

	// EnvConfigPath overrides the defaults file location.
	EnvConfigPath = "SPEC_PARSER_CONFIG"
)

// Settings holds run defaults read from the YAML file.
type Settings struct {
	Output OutputSettings `yaml:"output"`
}

// OutputSettings mirrors the global output flags.
type OutputSettings struct {
	Directory string `yaml:"directory"`
	Force     bool   `yaml:"force"`
}

// Load reads the defaults file at path. An empty path falls back to
// SPEC_PARSER_CONFIG, then to spec-parser.yaml. A missing file is not an
// error; the zero Settings value is returned.
func Load(path string) (*Settings, error) {
	loadEnvFiles()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Settings{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var settings Settings
	if err := yaml.Unmarshal([]byte(expanded), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal defaults file: %w", err)
	}

	slog.Debug("Loaded run defaults", logfields.Path(path))
	return &settings, nil
}

// loadEnvFiles loads the first readable env file. Existing process
// environment variables are never overwritten.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(envPath))
			return
		}
	}
}
