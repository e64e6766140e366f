package server

import (
	"context"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"maraos/internal/config"
	"maraos/internal/profile"
	"maraos/internal/system"
	"maraos/internal/vfs"
)

// Server exposes the catalog, headless consoles over websocket and metrics.
type Server struct {
	Addr string

	conf   config.Config
	caller profile.Profile
	// frameEvery paces boot animation frames on websocket sessions.
	frameEvery time.Duration
	catalog    atomic.Pointer[vfs.Catalog]
	metrics    *metrics

	mu       sync.Mutex
	sessions map[string]*session
}

func New(conf config.Config, caller profile.Profile) *Server {
	s := &Server{
		Addr:       conf.Server.Addr,
		conf:       conf,
		caller:     caller,
		frameEvery: max(conf.Console.FrameInterval, minAnimInterval),
		metrics:    newMetrics(),
		sessions:   map[string]*session{},
	}
	s.setCatalog(vfs.NewCatalog(nil))
	return s
}

// Catalog returns the file list new sessions start with.
func (s *Server) Catalog() *vfs.Catalog { return s.catalog.Load() }

func (s *Server) setCatalog(c *vfs.Catalog) {
	s.catalog.Store(c)
	s.metrics.catalogFiles.Set(float64(c.Len()))
}

// Reload loads the configured catalog source and pushes it to every open
// session. On error the previous catalog stays in place.
func (s *Server) Reload(ctx context.Context) error {
	c, err := vfs.Load(ctx, s.conf.Catalog.Source, s.conf.Catalog.Timeout)
	if err != nil {
		return err
	}
	s.setCatalog(c)
	s.mu.Lock()
	open := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()
	for _, sess := range open {
		sess.setCatalog(c)
	}
	system.Logger.Info("catalog loaded", "files", c.Len(), "sessions", len(open))
	return nil
}

// Handler builds the gin engine serving every route.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mountAPI(r)
	return r
}

func (s *Server) Start(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		system.Logger.Warn("catalog unavailable, serving an empty one", "source", s.conf.Catalog.Source, "err", err)
	}
	if vfs.IsFileSource(s.conf.Catalog.Source) {
		go s.watchCatalog(ctx)
	}

	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func (s *Server) watchCatalog(ctx context.Context) {
	changes, err := vfs.Watch(ctx, s.conf.Catalog.Source, 200*time.Millisecond)
	if err != nil {
		system.Logger.Warn("catalog watch failed", "source", s.conf.Catalog.Source, "err", err)
		return
	}
	for range changes {
		if err := s.Reload(ctx); err != nil {
			system.Logger.Warn("catalog reload failed", "err", err)
		}
	}
}

func (s *Server) track(sess *session) {
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	s.metrics.sessions.Inc()
}

func (s *Server) untrack(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	s.metrics.sessions.Dec()
}

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return exec.Command(cmd, args...).Start()
}
