package vfs

import "strings"

// Root is the drive-root sentinel. No path resolves above it.
const Root = "C:/"

// minSegments is the number of segments a path keeps after "..": the drive
// plus one directory. Anything shorter collapses to Root.
const minSegments = 2

// Normalize strips trailing slashes unless the path is the root itself.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == Root {
		return Root
	}
	t := strings.TrimRight(p, "/")
	if t == "" || t == strings.TrimSuffix(Root, "/") {
		return Root
	}
	return t
}

// Parent pops the last segment of p.
func Parent(p string) string {
	n := Normalize(p)
	if n == Root {
		return Root
	}
	segs := strings.Split(n, "/")
	segs = segs[:len(segs)-1]
	if len(segs) < minSegments {
		return Root
	}
	return strings.Join(segs, "/")
}

// Join descends from dir into child.
func Join(dir, child string) string {
	child = strings.Trim(child, "/")
	d := Normalize(dir)
	if d == Root {
		return Root + child
	}
	return d + "/" + child
}

// Same compares two paths ignoring trailing slashes.
func Same(a, b string) bool { return Normalize(a) == Normalize(b) }

// IsAbs reports whether p starts at the drive root.
func IsAbs(p string) bool { return strings.HasPrefix(p, Root) || p == strings.TrimSuffix(Root, "/") }

// Segments splits a relative navigation target into its steps. An absolute
// target yields abs=true and the steps below Root.
func Segments(target string) (steps []string, abs bool) {
	if IsAbs(target) {
		abs = true
		target = strings.TrimPrefix(strings.TrimPrefix(target, Root), strings.TrimSuffix(Root, "/"))
	}
	for _, s := range strings.Split(target, "/") {
		if s == "" || s == "." {
			continue
		}
		steps = append(steps, s)
	}
	return steps, abs
}
