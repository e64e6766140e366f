package vfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewCatalog_FillsFullPath(t *testing.T) {
	c := NewCatalog([]VirtualFile{
		{Name: "desktop", Type: Folder, Path: "C:/"},
		{Name: "a.txt", Path: "C:/desktop/"},
		{Name: ""},
	})
	files := c.List()
	if len(files) != 2 {
		t.Fatalf("expected nameless entry dropped, got %d files", len(files))
	}
	if files[0].FullPath != "C:/desktop" || files[1].FullPath != "C:/desktop/a.txt" {
		t.Fatalf("unexpected full paths: %q %q", files[0].FullPath, files[1].FullPath)
	}
	if files[1].Type != File {
		t.Fatalf("missing type should default to file")
	}
}

func TestCatalog_LookupsTolerateTrailingSlash(t *testing.T) {
	c := NewCatalog([]VirtualFile{
		{Name: "projects", Type: Folder, Path: "C:/desktop", FullPath: "C:/desktop/projects/"},
		{Name: "a.txt", Type: File, Path: "C:/desktop/projects/"},
	})
	if _, ok := c.Folder("C:/desktop/projects"); !ok {
		t.Fatalf("folder lookup should ignore trailing slash")
	}
	if got := c.Children("C:/desktop/projects"); len(got) != 1 {
		t.Fatalf("children = %v", got)
	}
	if _, ok := c.FileIn("C:/desktop/projects/", "a.txt"); !ok {
		t.Fatalf("FileIn should find a.txt")
	}
	if _, ok := c.FileIn("C:/desktop", "projects"); ok {
		t.Fatalf("FileIn must not return folders")
	}
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.List() != nil || c.Children(Root) != nil {
		t.Fatalf("nil catalog should be empty")
	}
	if _, ok := c.Folder("C:/desktop"); ok {
		t.Fatalf("nil catalog has no folders")
	}
}

func TestParseManifest_Shapes(t *testing.T) {
	list := `[{"name":"a","type":"file","path":"C:/","content":"hi","clearanceLock":2}]`
	files, err := ParseManifest([]byte(list))
	if err != nil || len(files) != 1 || files[0].Content != "hi" {
		t.Fatalf("bare list: %v %v", files, err)
	}
	if lock, ok := files[0].Lock(); !ok || lock != 2 {
		t.Fatalf("clearanceLock lost: %v %v", lock, ok)
	}
	wrapped := `{"success":true,"files":[{"name":"b","type":"folder","path":"C:/"}]}`
	files, err = ParseManifest([]byte(wrapped))
	if err != nil || len(files) != 1 || !files[0].IsFolder() {
		t.Fatalf("envelope: %v %v", files, err)
	}
	yml := "files:\n  - name: c\n    type: file\n    path: C:/\n"
	files, err = ParseManifest([]byte(yml))
	if err != nil || len(files) != 1 || files[0].Name != "c" {
		t.Fatalf("yaml envelope: %v %v", files, err)
	}
	if _, err := ParseManifest([]byte(`{"error":"nope"}`)); err == nil {
		t.Fatalf("api error should fail")
	}
	if _, err := ParseManifest([]byte("[{")); err == nil {
		t.Fatalf("malformed json should fail")
	}
	if _, err := ParseManifest(nil); err == nil {
		t.Fatalf("empty manifest should fail")
	}
}

func TestDefaultManifest(t *testing.T) {
	c, err := Load(context.Background(), "", time.Second)
	if err != nil {
		t.Fatalf("bundled manifest: %v", err)
	}
	if c.Len() == 0 {
		t.Fatalf("bundled manifest is empty")
	}
	if _, ok := c.Folder("C:/desktop"); !ok {
		t.Fatalf("bundled manifest needs C:/desktop")
	}
}

func TestLoad_MissingFileYieldsEmptyCatalog(t *testing.T) {
	c, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), time.Second)
	if err == nil {
		t.Fatalf("expected error for missing manifest")
	}
	if c == nil || c.Len() != 0 {
		t.Fatalf("expected empty catalog")
	}
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "files.json")
	if err := os.WriteFile(p, []byte(`[{"name":"x","type":"file","path":"C:/"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(context.Background(), p, time.Second)
	if err != nil || c.Len() != 1 {
		t.Fatalf("Load file: %v len=%d", err, c.Len())
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"name":"remote","type":"folder","path":"C:/"}]`))
	}))
	defer srv.Close()

	c, err := Load(context.Background(), srv.URL+"/files", time.Second)
	if err != nil || c.Len() != 1 {
		t.Fatalf("http load: %v len=%d", err, c.Len())
	}
	c, err = Load(context.Background(), srv.URL+"/missing", time.Second)
	if err == nil || c.Len() != 0 {
		t.Fatalf("404 should yield empty catalog and an error")
	}
}

func TestManifestSchema(t *testing.T) {
	b, err := MarshalSchema(ManifestSchema())
	if err != nil {
		t.Fatalf("MarshalSchema: %v", err)
	}
	if len(b) == 0 || b[0] != '{' {
		t.Fatalf("unexpected schema output: %s", b)
	}
}
