package console

import (
	"errors"
	"fmt"
	"strings"

	"maraos/internal/profile"
	"maraos/internal/vfs"
)

const (
	lockGlyph  = "🗝 "
	treeMiddle = "├──"
	treeLast   = "└──"
	exeSuffix  = ".exe"
)

func listDir(sh Shell, caller profile.Profile, out Sink, _, _ string) {
	entries := sh.Catalog().Children(sh.Path())
	for i, f := range entries {
		branch := treeMiddle
		if i == len(entries)-1 {
			branch = treeLast
		}
		name := f.Name
		if !vfs.IsVisible(f, caller) {
			name = lockGlyph + name
		}
		if f.IsFolder() {
			name += "/"
		} else {
			name += " (" + vfs.HumanSize(len(f.Content)) + ")"
		}
		out.Print(branch + " " + name)
	}
}

func changeDir(sh Shell, caller profile.Profile, out Sink, _, args string) {
	if args == "" {
		out.Print("cd: missing directory")
		return
	}
	steps, abs := vfs.Segments(args)
	cur := sh.Path()
	if abs {
		cur = vfs.Root
	}
	for _, step := range steps {
		if step == ".." {
			cur = vfs.Parent(cur)
			continue
		}
		next := vfs.Join(cur, step)
		dir, err := sh.Catalog().Enter(next, caller)
		switch {
		case errors.Is(err, vfs.ErrForbidden):
			out.Print(fmt.Sprintf("cd %s: CLASSIFIED. Level %d needed.", args, vfs.Hint(dir, caller)))
			return
		case err != nil:
			out.Print(fmt.Sprintf("cd: %s: No such directory", args))
			return
		}
		cur = next
	}
	sh.SetPath(cur)
}

func help(sh Shell, _ profile.Profile, out Sink, _, _ string) {
	out.Print("Available commands:")
	for _, name := range sh.Commands() {
		out.Print(" - " + name)
	}
}

func run(sh Shell, caller profile.Profile, out Sink, _, args string) {
	f, err := sh.Catalog().Open(sh.Path(), args, caller)
	switch {
	case errors.Is(err, vfs.ErrForbidden):
		out.Print(fmt.Sprintf("run %s: CLASSIFIED, Level %d needed.", args, vfs.Hint(f, caller)))
		return
	case err != nil:
		out.Print(fmt.Sprintf("run: %s: No such file or directory", args))
		return
	}
	if strings.HasSuffix(f.Name, exeSuffix) {
		sh.ShowOverlay(f.Name, f.Content)
		return
	}
	for _, line := range strings.Split(f.Content, "\n") {
		out.Print(line)
	}
}

func info(_ Shell, _ profile.Profile, out Sink, _, _ string) {
	out.Print(banner)
	out.Print(credits)
	out.Print(about)
}

func clearScreen(sh Shell, _ profile.Profile, _ Sink, _, _ string) {
	sh.Clear()
}
