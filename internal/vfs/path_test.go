package vfs

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"C:/":            "C:/",
		"C:":             "C:/",
		"C://":           "C:/",
		"C:/desktop":     "C:/desktop",
		"C:/desktop/":    "C:/desktop",
		"C:/desktop/a//": "C:/desktop/a",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParent(t *testing.T) {
	cases := map[string]string{
		"C:/":                  "C:/",
		"C:/desktop":           "C:/",
		"C:/desktop/":          "C:/",
		"C:/desktop/projects":  "C:/desktop",
		"C:/desktop/projects/": "C:/desktop",
	}
	for in, want := range cases {
		if got := Parent(in); got != want {
			t.Fatalf("Parent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParent_NeverLeavesRoot(t *testing.T) {
	p := "C:/a/b/c"
	for i := 0; i < 10; i++ {
		p = Parent(p)
	}
	if p != Root {
		t.Fatalf("repeated Parent = %q, want root", p)
	}
}

func TestJoin_RootAndNestedAgree(t *testing.T) {
	if got := Join("C:/", "desktop"); got != "C:/desktop" {
		t.Fatalf("Join at root = %q", got)
	}
	if got := Join("C:/desktop/", "projects/"); got != "C:/desktop/projects" {
		t.Fatalf("Join nested = %q", got)
	}
	if !Same(Join("C:/desktop", "projects"), "C:/desktop/projects/") {
		t.Fatalf("Same should tolerate trailing slash")
	}
}

func TestSegments(t *testing.T) {
	steps, abs := Segments("../projects/./x/")
	if abs {
		t.Fatalf("relative target reported absolute")
	}
	want := []string{"..", "projects", "x"}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v", steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("steps = %v, want %v", steps, want)
		}
	}
	steps, abs = Segments("C:/system/archive")
	if !abs || len(steps) != 2 || steps[0] != "system" {
		t.Fatalf("absolute target: %v %v", steps, abs)
	}
}
