package store

import (
	"errors"
	"path/filepath"
	"testing"

	tu "maraos/internal/testutil"
)

func TestSlots_PutGetDelete(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "slots"))
	if _, err := s.Get("console"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty slot err = %v", err)
	}
	if err := s.Put("console", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b, err := s.Get("console")
	if err != nil || string(b) != `{"a":1}` {
		t.Fatalf("Get = %q, %v", b, err)
	}
	if err := s.Put("console", []byte(`{}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if b, _ := s.Get("console"); string(b) != `{}` {
		t.Fatalf("overwrite not applied: %q", b)
	}
	keys, err := s.Keys()
	if err != nil || len(keys) != 1 || keys[0] != "console" {
		t.Fatalf("Keys = %v, %v", keys, err)
	}
	if err := s.Delete("console"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("console"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if _, err := s.Get("console"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("deleted slot err = %v", err)
	}
}

func TestSlots_RejectsBadKeys(t *testing.T) {
	s := New(t.TempDir())
	for _, key := range []string{"", "../escape", "a/b", "with space"} {
		if err := s.Put(key, []byte("x")); err == nil {
			t.Fatalf("key %q accepted", key)
		}
	}
}

func TestDefault_UsesConfigDir(t *testing.T) {
	home := tu.TempHome(t)
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if s.Dir != filepath.Join(home, "slots") {
		t.Fatalf("dir = %q", s.Dir)
	}
	if keys, err := s.Keys(); err != nil || len(keys) != 0 {
		t.Fatalf("fresh Keys = %v, %v", keys, err)
	}
}
