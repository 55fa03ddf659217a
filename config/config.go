// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Palette configuration loading from ~/.config/vte/palette.json.
// Usage: Hosts that want a persisted palette choice call Load() at
// startup and pass the result to vte.VTE.SetPalette/SetCustomPalette.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Config holds the palette configuration.
type Config struct {
	// Palette names one of the VTE's built-in named palettes, or "custom"
	// to use Custom below.
	Palette string `json:"palette"`
	// Custom is an 18*3-byte RGB table, used only when Palette == "custom".
	Custom []byte `json:"custom,omitempty"`
}

// Default returns the default configuration: the built-in palette.
func Default() *Config {
	return &Config{Palette: ""}
}

// Load loads configuration from ~/.config/vte/palette.json. If the file
// doesn't exist, it returns the default config.
func Load() (*Config, error) {
	cfg := Default()

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("config: failed to get user config dir: %v", err)
		return cfg, nil
	}

	configPath := filepath.Join(configDir, "vte", "palette.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config: no config file at %s, using defaults", configPath)
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	log.Printf("config: loaded from %s", configPath)
	return cfg, nil
}

// Save writes the configuration to ~/.config/vte/palette.json.
func (c *Config) Save() error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}

	vteDir := filepath.Join(configDir, "vte")
	if err := os.MkdirAll(vteDir, 0755); err != nil {
		return err
	}

	configPath := filepath.Join(vteDir, "palette.json")

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return err
	}

	log.Printf("config: saved to %s", configPath)
	return nil
}
