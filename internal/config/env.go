// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvPathVar names the variable that overrides the .env location.
const dotEnvPathVar = "DOTENV_PATH"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv preloads variables from the .env file into the process
// environment. Variables already set are not overridden. A missing file is
// not an error.
func loadDotEnv() error {
	path := os.Getenv(dotEnvPathVar)
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading .env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}
