package vfs

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_files.yaml
var defaultManifest []byte

// DefaultManifest returns the bundled manifest bytes.
func DefaultManifest() []byte { return append([]byte(nil), defaultManifest...) }

// envelope is the wrapped shape some content APIs answer with.
type envelope struct {
	Files   []VirtualFile `json:"files" yaml:"files"`
	Success *bool         `json:"success,omitempty" yaml:"success,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// ParseManifest decodes a manifest that is either a bare list of files or
// an object with a "files" key. JSON input is detected by its first byte.
func ParseManifest(data []byte) ([]VirtualFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty manifest")
	}
	var files []VirtualFile
	var env envelope
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &files); err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}
		return files, nil
	case '{':
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}
	default:
		if err := yaml.Unmarshal(trimmed, &files); err == nil {
			return files, nil
		}
		if err := yaml.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}
	}
	if env.Error != "" {
		return nil, fmt.Errorf("content api: %s", env.Error)
	}
	if env.Success != nil && !*env.Success {
		return nil, errors.New("content api reported failure")
	}
	return env.Files, nil
}

// Load builds the session catalog from source: "" for the bundled manifest,
// an http(s) URL, or a file path. On failure it returns an empty catalog
// together with the error so the caller can log it and carry on.
func Load(ctx context.Context, source string, timeout time.Duration) (*Catalog, error) {
	source = strings.TrimSpace(source)
	var (
		files []VirtualFile
		err   error
	)
	switch {
	case source == "":
		files, err = ParseManifest(defaultManifest)
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		client := &http.Client{Timeout: timeout}
		files, err = Fetch(ctx, client, source)
	default:
		files, err = ReadManifest(source)
	}
	if err != nil {
		return NewCatalog(nil), err
	}
	return NewCatalog(files), nil
}

// ReadManifest parses a manifest file from disk.
func ReadManifest(path string) ([]VirtualFile, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(b)
}

// Fetch performs one GET against a content API. It does not retry.
func Fetch(ctx context.Context, client *http.Client, url string) ([]VirtualFile, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return ParseManifest(b)
}
