// Package profile holds the caller profile the console consults for clearance checks.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"maraos/internal/config"
)

// Profile is the signed-in user as handed over by the surrounding application.
// Only ID and ClearanceLevel matter to the console.
type Profile struct {
	ID             string `yaml:"id,omitempty" json:"id,omitempty"`
	Username       string `yaml:"username,omitempty" json:"username,omitempty"`
	ClearanceLevel *int   `yaml:"clearanceLevel,omitempty" json:"clearanceLevel,omitempty"`
}

// Anonymous is the profile of a caller that never signed in.
var Anonymous = Profile{}

// WithLevel returns a copy of p carrying clearance level n.
func (p Profile) WithLevel(n int) Profile {
	p.ClearanceLevel = &n
	return p
}

// Authenticated reports whether the profile carries an id.
func (p Profile) Authenticated() bool { return strings.TrimSpace(p.ID) != "" }

// Level returns the numeric clearance and whether one was set.
func (p Profile) Level() (int, bool) {
	if p.ClearanceLevel == nil {
		return 0, false
	}
	return *p.ClearanceLevel, true
}

// EffectiveLevel is the level used for lock checks: anonymous callers count as 0.
func (p Profile) EffectiveLevel() int {
	if !p.Authenticated() {
		return 0
	}
	n, _ := p.Level()
	return n
}

// Path returns the profile.yaml location.
func Path() (string, error) { return config.File("profile.yaml") }

// Load reads profile.yaml. A missing file yields the anonymous profile.
func Load() (Profile, error) {
	p, err := Path()
	if err != nil {
		return Anonymous, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Anonymous, nil
		}
		return Anonymous, fmt.Errorf("read %s: %w", p, err)
	}
	var out Profile
	if err := yaml.Unmarshal(b, &out); err != nil {
		return Anonymous, fmt.Errorf("parse %s: %w", p, err)
	}
	if n, ok := out.Level(); ok && n < 0 {
		out.ClearanceLevel = nil
	}
	return out, nil
}

// Save writes the profile, creating the config directory if needed.
func Save(p Profile) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
