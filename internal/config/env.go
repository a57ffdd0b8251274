// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	dotEnvFile     = ".env"
	dotEnvTestFile = ".env.test"
)

func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv copies variables from the .env file (.env.test when APP_ENV=test)
// into the process environment. Variables already set are kept and a missing
// file is not an error.
func loadDotEnv() error {
	path := dotEnvFile
	if os.Getenv("APP_ENV") == "test" {
		path = dotEnvTestFile
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
