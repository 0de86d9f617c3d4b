// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom populates cfg from environ using the `env` and `envPrefix`
// tags of [StructuredConfig]. A nil environ means the process environment.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
