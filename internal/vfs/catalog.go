package vfs

import "maraos/internal/profile"

// Catalog is the immutable file list of one console session. The zero value
// and a nil *Catalog are both empty catalogs.
type Catalog struct {
	files []VirtualFile
}

// NewCatalog copies files and fills in FullPath where the source left it out.
func NewCatalog(files []VirtualFile) *Catalog {
	out := make([]VirtualFile, 0, len(files))
	for _, f := range files {
		if f.Name == "" {
			continue
		}
		if f.Type != Folder {
			f.Type = File
		}
		f.Path = Normalize(f.Path)
		if f.FullPath == "" {
			f.FullPath = Join(f.Path, f.Name)
		}
		out = append(out, f)
	}
	return &Catalog{files: out}
}

// List returns every entry in catalog order.
func (c *Catalog) List() []VirtualFile {
	if c == nil {
		return nil
	}
	out := make([]VirtualFile, len(c.files))
	copy(out, c.files)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.files)
}

// Children returns the entries directly inside dir, in catalog order.
func (c *Catalog) Children(dir string) []VirtualFile {
	if c == nil {
		return nil
	}
	var out []VirtualFile
	for _, f := range c.files {
		if Same(f.Path, dir) {
			out = append(out, f)
		}
	}
	return out
}

// Folder finds the folder whose full path matches p.
func (c *Catalog) Folder(p string) (VirtualFile, bool) {
	if c == nil {
		return VirtualFile{}, false
	}
	for _, f := range c.files {
		if f.IsFolder() && Same(f.FullPath, p) {
			return f, true
		}
	}
	return VirtualFile{}, false
}

// FileIn finds the plain file called name inside dir.
func (c *Catalog) FileIn(dir, name string) (VirtualFile, bool) {
	for _, f := range c.Children(dir) {
		if !f.IsFolder() && f.Name == name {
			return f, true
		}
	}
	return VirtualFile{}, false
}

// Enter resolves the folder at p for caller. It fails with ErrNotFound when
// no such folder exists and ErrForbidden when caller lacks clearance; the
// folder is returned alongside ErrForbidden so callers can compute a hint.
func (c *Catalog) Enter(p string, caller profile.Profile) (VirtualFile, error) {
	f, ok := c.Folder(p)
	if !ok {
		return VirtualFile{}, ErrNotFound
	}
	if !IsVisible(f, caller) {
		return f, ErrForbidden
	}
	return f, nil
}

// Open is Enter for the plain file called name inside dir.
func (c *Catalog) Open(dir, name string, caller profile.Profile) (VirtualFile, error) {
	f, ok := c.FileIn(dir, name)
	if !ok {
		return VirtualFile{}, ErrNotFound
	}
	if !IsVisible(f, caller) {
		return f, ErrForbidden
	}
	return f, nil
}
