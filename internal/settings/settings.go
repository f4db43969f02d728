// Package settings handles configuration loading and merging.
//
// Settings are loaded from four levels (highest priority first):
//  1. Managed — /etc/ngrules/settings.json
//  2. Local — .ngrules/settings.local.json (gitignored, per-project)
//  3. Project — .ngrules/settings.json (committed, per-project)
//  4. User — ~/.ngrules/settings.json (global)
//
// CLI flags are applied on top of the merged result and are not handled
// here.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds merged configuration from all levels.
type Settings struct {
	// Plain disables ANSI styling and markdown rendering.
	Plain *bool `json:"plain,omitempty"`
	// Theme is the glamour style name ("dark", "light", "notty", ...).
	// Empty means auto-detect.
	Theme string `json:"theme,omitempty"`
	// Pager is the command long output is piped through ("less -R").
	// Empty means write to stdout directly.
	Pager string `json:"pager,omitempty"`
	// Dir overrides the embedded corpus with a directory on disk.
	Dir string `json:"dir,omitempty"`
	// LogLevel sets server log verbosity ("debug", "info", "warn", "error").
	LogLevel string `json:"logLevel,omitempty"`
}

// Load merges settings from all four levels. Missing or invalid files
// are skipped, so the zero settings come back when nothing is
// configured.
func Load(cwd string) (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Settings{}, nil // non-fatal: use empty settings
	}

	// Load from lowest to highest priority, merging as we go.
	merged := &Settings{}
	for _, path := range settingsPaths(home, cwd) {
		layer, err := loadFile(path)
		if err != nil {
			continue
		}
		merged = merge(merged, layer)
	}
	return merged, nil
}

// settingsPaths returns settings file paths from lowest to highest
// priority.
func settingsPaths(home, cwd string) []string {
	return []string{
		filepath.Join(home, ".ngrules", "settings.json"),
		filepath.Join(cwd, ".ngrules", "settings.json"),
		filepath.Join(cwd, ".ngrules", "settings.local.json"),
		"/etc/ngrules/settings.json",
	}
}

// loadFile reads and parses a single settings JSON file.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// merge overlays one settings layer on top of another. Fields set in
// overlay replace base.
func merge(base, overlay *Settings) *Settings {
	result := &Settings{}

	result.Plain = base.Plain
	if overlay.Plain != nil {
		result.Plain = overlay.Plain
	}
	result.Theme = base.Theme
	if overlay.Theme != "" {
		result.Theme = overlay.Theme
	}
	result.Pager = base.Pager
	if overlay.Pager != "" {
		result.Pager = overlay.Pager
	}
	result.Dir = base.Dir
	if overlay.Dir != "" {
		result.Dir = overlay.Dir
	}
	result.LogLevel = base.LogLevel
	if overlay.LogLevel != "" {
		result.LogLevel = overlay.LogLevel
	}

	return result
}

// UserPath returns the path to the user-level settings file.
func UserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ngrules", "settings.json"), nil
}

// SaveUser saves a single key/value pair to the user-level settings
// file. It reads the existing file, merges the new value, and writes
// back.
func SaveUser(key string, value interface{}) error {
	path, err := UserPath()
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			raw = make(map[string]interface{})
			if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
				return fmt.Errorf("creating settings directory: %w", mkErr)
			}
		} else {
			return fmt.Errorf("reading settings: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			// If the file is corrupt, start fresh rather than fail.
			raw = make(map[string]interface{})
		}
	}

	// nil means "remove the key".
	if value == nil {
		delete(raw, key)
	} else {
		raw[key] = value
	}

	output, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	output = append(output, '\n')

	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// BoolVal returns the value of a *bool pointer, or the default if nil.
func BoolVal(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}
