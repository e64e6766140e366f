package vfs

import "maraos/internal/profile"

// IsVisible reports whether caller may enter or read f.
func IsVisible(f VirtualFile, caller profile.Profile) bool {
	lock, ok := f.Lock()
	if !ok {
		return true
	}
	return caller.EffectiveLevel() >= lock
}

// RequiredLevelHint is the level shown in a CLASSIFIED message. It never
// reveals more than one level above what the caller already holds.
func RequiredLevelHint(lock int, caller profile.Profile) int {
	level, ok := caller.Level()
	if !ok || !caller.Authenticated() {
		return 1
	}
	if level+1 < lock {
		return level + 1
	}
	return lock
}

// Hint is RequiredLevelHint for an entry.
func Hint(f VirtualFile, caller profile.Profile) int {
	lock, _ := f.Lock()
	return RequiredLevelHint(lock, caller)
}
