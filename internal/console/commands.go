package console

import (
	"maraos/internal/profile"
	"maraos/internal/vfs"
)

// Shell is the slice of interpreter state a command may read or change.
type Shell interface {
	Path() string
	SetPath(p string)
	Catalog() *vfs.Catalog
	Commands() []string
	ShowOverlay(title, content string)
	Clear()
}

// Sink receives the lines a command produces.
type Sink interface {
	Print(text string)
	Emit(l Line)
}

// Handler runs one command. Failures are reported through out; handlers do
// not return errors.
type Handler func(sh Shell, caller profile.Profile, out Sink, name, args string)

// Registry maps command names to handlers and remembers registration order.
type Registry struct {
	names    []string
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{}}
}

// Register adds or replaces a command. A replaced command keeps its place.
func (r *Registry) Register(name string, h Handler) {
	if name == "" || h == nil {
		return
	}
	if _, ok := r.handlers[name]; !ok {
		r.names = append(r.names, name)
	}
	r.handlers[name] = h
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[name]
	return h, ok
}

// Names lists commands in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// DefaultRegistry holds the built-in commands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("ls", listDir)
	r.Register("cd", changeDir)
	r.Register("help", help)
	r.Register("run", run)
	r.Register("info", info)
	r.Register("clear", clearScreen)
	return r
}
