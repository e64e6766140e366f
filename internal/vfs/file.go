// Package vfs is the console's read-only virtual file tree: the catalog of
// files and folders, path arithmetic against the drive root, and the
// clearance rules that decide who may open what.
package vfs

import "errors"

var (
	ErrNotFound  = errors.New("no such file or directory")
	ErrForbidden = errors.New("classified")
)

type FileType string

const (
	File   FileType = "file"
	Folder FileType = "folder"
)

// VirtualFile is one catalog entry. Path is the parent directory and
// FullPath is Path joined with Name.
type VirtualFile struct {
	Name          string   `json:"name" yaml:"name" jsonschema:"required,minLength=1"`
	Type          FileType `json:"type" yaml:"type" jsonschema:"required,enum=file,enum=folder"`
	Content       string   `json:"content" yaml:"content,omitempty"`
	Path          string   `json:"path" yaml:"path" jsonschema:"required"`
	FullPath      string   `json:"fullPath" yaml:"fullPath,omitempty"`
	ClearanceLock *int     `json:"clearanceLock,omitempty" yaml:"clearanceLock,omitempty" jsonschema:"minimum=0"`
}

func (f VirtualFile) IsFolder() bool { return f.Type == Folder }

// Lock returns the clearance requirement and whether one is set.
func (f VirtualFile) Lock() (int, bool) {
	if f.ClearanceLock == nil {
		return 0, false
	}
	return *f.ClearanceLock, true
}
