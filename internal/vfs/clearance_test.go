package vfs

import (
	"errors"
	"testing"

	"maraos/internal/profile"
)

func locked(n int) VirtualFile {
	return VirtualFile{Name: "x", Type: File, Path: Root, ClearanceLock: &n}
}

func TestRequiredLevelHint(t *testing.T) {
	agent := profile.Profile{ID: "a"}
	cases := []struct {
		name   string
		lock   int
		caller profile.Profile
		want   int
	}{
		{"one above caller", 5, agent.WithLevel(2), 3},
		{"true lock when close", 3, agent.WithLevel(2), 3},
		{"anonymous", 9, profile.Anonymous, 1},
		{"anonymous with stale level", 9, profile.Anonymous.WithLevel(4), 1},
		{"no numeric level", 4, agent, 1},
		{"level zero", 4, agent.WithLevel(0), 1},
	}
	for _, c := range cases {
		if got := RequiredLevelHint(c.lock, c.caller); got != c.want {
			t.Fatalf("%s: hint = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestIsVisible(t *testing.T) {
	open := VirtualFile{Name: "open", Type: File, Path: Root}
	agent := profile.Profile{ID: "a"}
	if !IsVisible(open, profile.Anonymous) {
		t.Fatalf("unlocked file must be visible")
	}
	if IsVisible(locked(2), profile.Anonymous.WithLevel(5)) {
		t.Fatalf("anonymous caller must not pass a lock")
	}
	if IsVisible(locked(3), agent.WithLevel(2)) {
		t.Fatalf("level 2 must not open level 3")
	}
	if !IsVisible(locked(3), agent.WithLevel(3)) {
		t.Fatalf("level 3 must open level 3")
	}
	if !IsVisible(locked(0), profile.Anonymous) {
		t.Fatalf("lock 0 is open to everyone")
	}
}

func TestCatalog_EnterAndOpen(t *testing.T) {
	three := 3
	c := NewCatalog([]VirtualFile{
		{Name: "vault", Type: Folder, Path: Root, ClearanceLock: &three},
		{Name: "memo.txt", Type: File, Path: Root, ClearanceLock: &three},
		{Name: "open.txt", Type: File, Path: Root},
	})
	agent := profile.Profile{ID: "a"}

	if _, err := c.Enter("C:/vault", agent.WithLevel(1)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Enter locked = %v", err)
	}
	if f, err := c.Enter("C:/vault", agent.WithLevel(3)); err != nil || f.Name != "vault" {
		t.Fatalf("Enter cleared = %v %v", f, err)
	}
	if _, err := c.Enter("C:/nope", agent); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Enter missing = %v", err)
	}
	f, err := c.Open(Root, "memo.txt", profile.Anonymous)
	if !errors.Is(err, ErrForbidden) || f.Name != "memo.txt" {
		t.Fatalf("Open locked = %v %v", f, err)
	}
	if _, err := c.Open(Root, "open.txt", profile.Anonymous); err != nil {
		t.Fatalf("Open unlocked = %v", err)
	}
	if _, err := c.Open(Root, "vault", agent.WithLevel(3)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open on a folder should be not found, got %v", err)
	}
}

func TestHumanSize(t *testing.T) {
	cases := map[int]string{
		0:             "0.00 B",
		999:           "999.00 B",
		1000:          "1.00 KB",
		1536:          "1.54 KB",
		2500000:       "2.50 MB",
		7000000000000: "7.00 TB",
	}
	for n, want := range cases {
		if got := HumanSize(n); got != want {
			t.Fatalf("HumanSize(%d) = %q, want %q", n, got, want)
		}
	}
	if got := HumanSize(5_000_000_000_000_000); got != "5000.00 TB" {
		t.Fatalf("largest unit should absorb overflow, got %q", got)
	}
}
