// Package store keeps small named blobs ("slots") as files in one directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"maraos/internal/config"
)

// ErrEmpty is returned by Get for a slot that was never written.
var ErrEmpty = errors.New("slot is empty")

var validKey = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Slots is a directory of slot files, one <key>.json per slot.
type Slots struct {
	Dir string
}

func New(dir string) *Slots { return &Slots{Dir: dir} }

// Default returns the slots directory under the config dir.
func Default() (*Slots, error) {
	d, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return New(filepath.Join(d, "slots")), nil
}

func (s *Slots) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	if strings.TrimSpace(s.Dir) == "" {
		return "", errors.New("empty slot dir")
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

// Get reads a slot. A missing slot yields ErrEmpty.
func (s *Slots) Get(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return b, nil
}

// Put replaces a slot atomically via a temp file, creating the directory.
func (s *Slots) Put(key string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Delete removes a slot. Deleting an empty slot is not an error.
func (s *Slots) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Keys lists the slots that hold data.
func (s *Slots) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	out := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		out = append(out, strings.TrimSuffix(name, ".json"))
	}
	return out, nil
}
