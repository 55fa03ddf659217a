// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import "testing"

func TestDefault(t *testing.T) {
	c := Default()
	if c.Palette != "" {
		t.Fatalf("Default().Palette = %q, want empty (built-in palette)", c.Palette)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := &Config{Palette: "solarized"}
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Palette != "solarized" {
		t.Fatalf("loaded.Palette = %q, want %q", loaded.Palette, "solarized")
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Palette != "" {
		t.Fatalf("loaded.Palette = %q, want empty default", loaded.Palette)
	}
}
