package profile

import (
	"os"
	"path/filepath"
	"testing"

	tu "maraos/internal/testutil"
)

func TestLoad_MissingIsAnonymous(t *testing.T) {
	tu.TempHome(t)
	p, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p.Authenticated() {
		t.Fatalf("expected anonymous profile, got %+v", p)
	}
	if _, ok := p.Level(); ok {
		t.Fatalf("anonymous profile should carry no level")
	}
}

func TestSaveLoad(t *testing.T) {
	tu.TempHome(t)
	in := Profile{ID: "u-1", Username: "agent"}.WithLevel(3)
	if err := Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.ID != "u-1" || got.Username != "agent" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if n, ok := got.Level(); !ok || n != 3 {
		t.Fatalf("level = %d/%v, want 3", n, ok)
	}
}

func TestLoad_NegativeLevelDropped(t *testing.T) {
	dir := tu.TempHome(t)
	if err := os.WriteFile(filepath.Join(dir, "profile.yaml"), []byte("id: x\nclearanceLevel: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := got.Level(); ok {
		t.Fatalf("negative level should be ignored")
	}
}

func TestEffectiveLevel(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		want int
	}{
		{"anonymous", Anonymous, 0},
		{"anonymous with level", Anonymous.WithLevel(4), 0},
		{"signed in without level", Profile{ID: "a"}, 0},
		{"signed in", Profile{ID: "a"}.WithLevel(6), 6},
	}
	for _, c := range cases {
		if got := c.p.EffectiveLevel(); got != c.want {
			t.Fatalf("%s: EffectiveLevel = %d, want %d", c.name, got, c.want)
		}
	}
}
