package console

import (
	"strings"
	"testing"

	"maraos/internal/profile"
	"maraos/internal/vfs"
)

func outputsAfter(in *Interpreter, cmd string) []string {
	before := len(in.Lines())
	enter(in, cmd)
	ls := in.Lines()
	var out []string
	for _, l := range ls[before:] {
		if l.Kind == Output {
			out = append(out, l.Display)
		}
	}
	return out
}

func TestLs_TreeGlyphsAndCount(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	out := outputsAfter(in, "ls")
	want := len(in.Catalog().Children(in.Path()))
	if len(out) != want || want != 3 {
		t.Fatalf("ls printed %d lines for %d entries: %q", len(out), want, out)
	}
	for i, l := range out {
		glyph := treeMiddle
		if i == len(out)-1 {
			glyph = treeLast
		}
		if !strings.HasPrefix(l, glyph+" ") {
			t.Fatalf("row %d = %q, want prefix %q", i, l, glyph)
		}
	}
	if out[0] != "├── readme.txt (11.00 B)" {
		t.Fatalf("file row = %q", out[0])
	}
	if out[1] != "├── projects/" {
		t.Fatalf("folder row = %q", out[1])
	}
	if out[2] != "└── 🗝 notes.txt (6.00 B)" {
		t.Fatalf("locked row = %q", out[2])
	}
}

func TestLs_LockGlyphFollowsClearance(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Profile{ID: "agent"}.WithLevel(1))
	out := outputsAfter(in, "ls")
	if strings.Contains(strings.Join(out, "\n"), lockGlyph) {
		t.Fatalf("level 1 should see notes.txt unlocked: %q", out)
	}
}

func TestLs_EmptyDirectory(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	in.SetPath("C:/nowhere")
	if out := outputsAfter(in, "ls"); len(out) != 0 {
		t.Fatalf("empty dir printed %q", out)
	}
}

func TestCd(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	enter(in, "cd projects")
	if in.Path() != "C:/desktop/projects" {
		t.Fatalf("path = %q", in.Path())
	}
	enter(in, "cd ..")
	if in.Path() != "C:/desktop" {
		t.Fatalf("path after .. = %q", in.Path())
	}
	enter(in, "cd ../desktop/projects/")
	if in.Path() != "C:/desktop/projects" {
		t.Fatalf("multi-step path = %q", in.Path())
	}
	enter(in, "cd C:/desktop")
	if in.Path() != "C:/desktop" {
		t.Fatalf("absolute path = %q", in.Path())
	}
}

func TestCd_RootIsFloor(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	in.SetPath(vfs.Root)
	for i := 0; i < 3; i++ {
		if out := outputsAfter(in, "cd .."); len(out) != 0 {
			t.Fatalf("cd .. at root printed %q", out)
		}
		if in.Path() != vfs.Root {
			t.Fatalf("cd .. left root: %q", in.Path())
		}
	}
}

func TestCd_Errors(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Profile{ID: "agent"}.WithLevel(3))
	if out := outputsAfter(in, "cd nope"); len(out) != 1 || out[0] != "cd: nope: No such directory" {
		t.Fatalf("missing dir: %q", out)
	}
	if out := outputsAfter(in, "cd readme.txt"); len(out) != 1 || out[0] != "cd: readme.txt: No such directory" {
		t.Fatalf("file is not a directory: %q", out)
	}
	if out := outputsAfter(in, "cd C:/system/archive"); len(out) != 1 || out[0] != "cd C:/system/archive: CLASSIFIED. Level 4 needed." {
		t.Fatalf("classified: %q", out)
	}
	if in.Path() != "C:/desktop" {
		t.Fatalf("failed cd moved to %q", in.Path())
	}
	if out := outputsAfter(in, "cd"); len(out) != 1 || out[0] != "cd: missing directory" {
		t.Fatalf("bare cd: %q", out)
	}
}

func TestCd_AnonymousHint(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous.WithLevel(9))
	in.SetPath(vfs.Root)
	out := outputsAfter(in, "cd system")
	if len(out) != 1 || out[0] != "cd system: CLASSIFIED. Level 1 needed." {
		t.Fatalf("anonymous classified: %q", out)
	}
}

func TestRun(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	out := outputsAfter(in, "run readme.txt")
	if len(out) != 2 || out[0] != "hello" || out[1] != "world" {
		t.Fatalf("run text file: %q", out)
	}
	out = outputsAfter(in, "run notes.txt")
	if len(out) != 1 || out[0] != "run notes.txt: CLASSIFIED, Level 1 needed." {
		t.Fatalf("run locked: %q", out)
	}
	out = outputsAfter(in, "run missing.exe")
	if len(out) != 1 || out[0] != "run: missing.exe: No such file or directory" {
		t.Fatalf("run missing: %q", out)
	}
	out = outputsAfter(in, "run projects")
	if len(out) != 1 || !strings.Contains(out[0], "No such file or directory") {
		t.Fatalf("folders are not runnable: %q", out)
	}
}

func TestRun_ExecutableOpensOverlay(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	enter(in, "cd projects")
	if out := outputsAfter(in, "run portfolio.exe"); len(out) != 0 {
		t.Fatalf("exe should not print lines: %q", out)
	}
	ov, ok := in.Overlay()
	if !ok || ov.Title != "portfolio.exe" || ov.Content != "# Portfolio" {
		t.Fatalf("overlay = %+v shown=%v", ov, ok)
	}
	in.HideOverlay()
	if _, ok := in.Overlay(); ok {
		t.Fatalf("overlay still shown")
	}
}

func TestHelpListsCommandsInOrder(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	out := outputsAfter(in, "help")
	want := []string{"Available commands:", " - ls", " - cd", " - help", " - run", " - info", " - clear"}
	if strings.Join(out, "|") != strings.Join(want, "|") {
		t.Fatalf("help = %q", out)
	}
}

func TestInfoAndClear(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	out := outputsAfter(in, "info")
	if len(out) != 3 || out[1] != credits {
		t.Fatalf("info = %q", out)
	}
	enter(in, "clear")
	if n := len(in.Lines()); n != 0 {
		t.Fatalf("clear left %d lines", n)
	}
}

func TestUnknownCommand(t *testing.T) {
	in, _ := newTestInterpreter(t, profile.Anonymous)
	var seen []string
	in.onCmd = func(name string, found bool) {
		if !found {
			seen = append(seen, name)
		}
	}
	out := outputsAfter(in, "hlp me")
	if len(out) < 1 || out[0] != "syntax error: 'hlp' is not a recognized command" {
		t.Fatalf("unknown command: %q", out)
	}
	if len(out) != 2 || out[1] != "Did you mean 'help'?" {
		t.Fatalf("suggestion: %q", out)
	}
	if len(seen) != 1 || seen[0] != "hlp" {
		t.Fatalf("OnCommand saw %v", seen)
	}
	out = outputsAfter(in, "zzz")
	if len(out) != 1 {
		t.Fatalf("no suggestion expected: %q", out)
	}
}

func TestHandlerPanicBecomesOutput(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register("boom", func(Shell, profile.Profile, Sink, string, string) { panic("kaboom") })
	in := New(Options{Registry: reg, Logger: newTestLogger()})
	out := outputsAfter(in, "boom")
	if len(out) != 1 || out[0] != "boom: internal error" {
		t.Fatalf("panic output = %q", out)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	noop := func(Shell, profile.Profile, Sink, string, string) {}
	r.Register("b", noop)
	r.Register("a", noop)
	r.Register("b", noop)
	r.Register("", noop)
	if got := strings.Join(r.Names(), ","); got != "b,a" {
		t.Fatalf("names = %q", got)
	}
	var nilReg *Registry
	if _, ok := nilReg.Lookup("ls"); ok {
		t.Fatalf("nil registry has no commands")
	}
}
