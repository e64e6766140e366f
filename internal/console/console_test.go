package console

import (
	"errors"
	"io"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"

	"maraos/internal/profile"
	"maraos/internal/vfs"
)

type memStore map[string][]byte

func (m memStore) Get(key string) ([]byte, error) {
	b, ok := m[key]
	if !ok {
		return nil, errors.New("missing")
	}
	return b, nil
}

func (m memStore) Put(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func lock(n int) *int { return &n }

func testCatalog() *vfs.Catalog {
	return vfs.NewCatalog([]vfs.VirtualFile{
		{Name: "desktop", Type: vfs.Folder, Path: "C:/"},
		{Name: "system", Type: vfs.Folder, Path: "C:/", ClearanceLock: lock(3)},
		{Name: "readme.txt", Type: vfs.File, Path: "C:/desktop", Content: "hello\nworld"},
		{Name: "projects", Type: vfs.Folder, Path: "C:/desktop/"},
		{Name: "notes.txt", Type: vfs.File, Path: "C:/desktop", Content: "secret", ClearanceLock: lock(1)},
		{Name: "portfolio.exe", Type: vfs.File, Path: "C:/desktop/projects", Content: "# Portfolio"},
		{Name: "archive", Type: vfs.Folder, Path: "C:/system", ClearanceLock: lock(5)},
	})
}

func newTestInterpreter(t *testing.T, caller profile.Profile) (*Interpreter, memStore) {
	t.Helper()
	st := memStore{}
	in := New(Options{
		Catalog: testCatalog(),
		Profile: caller,
		Store:   st,
		Logger:  clog.New(io.Discard),
		Now:     func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) },
	})
	in.Clear()
	return in, st
}

func typeText(in *Interpreter, s string) {
	for _, r := range s {
		in.HandleKey(Event{Key: KeyRune, Runes: []rune{r}})
	}
}

func enter(in *Interpreter, s string) {
	typeText(in, s)
	in.HandleKey(Event{Key: KeyEnter})
}

func displays(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Display
	}
	return out
}

func lastLine(t *testing.T, in *Interpreter) string {
	t.Helper()
	ls := in.Lines()
	if len(ls) == 0 {
		t.Fatalf("no output")
	}
	return ls[len(ls)-1].Display
}

func newTestLogger() *clog.Logger { return clog.New(io.Discard) }
