package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"maraos/internal/console"
	"maraos/internal/system"
	"maraos/internal/vfs"
	appver "maraos/internal/version"
)

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Allow all origins for local dev; the server typically binds to localhost.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// minAnimInterval caps websocket frame rate during boot animations.
const minAnimInterval = 50 * time.Millisecond

// clientMsg is one message from the browser.
//
//	{"type":"key","key":"enter","shift":false}
//	{"type":"key","key":"paste","text":"clipboard contents"}
//	{"type":"text","text":"ls"}          inserts at the cursor
//	{"type":"line","text":"cd docs"}     submits a whole line
//	{"type":"close"}                     hides the overlay
type clientMsg struct {
	Type  string `json:"type"`
	Key   string `json:"key,omitempty"`
	Text  string `json:"text,omitempty"`
	Shift bool   `json:"shift,omitempty"`
}

// frame is the full console state, sent after every change.
type frame struct {
	ID        string           `json:"id"`
	Lines     []console.Line   `json:"lines"`
	Input     string           `json:"input"`
	Cursor    int              `json:"cursor"`
	Path      string           `json:"path"`
	Accepting bool             `json:"accepting"`
	Overlay   *console.Overlay `json:"overlay,omitempty"`
	// Clipboard carries text the copy shortcut produced; the browser owns
	// the real clipboard.
	Clipboard string `json:"clipboard,omitempty"`
}

var wsKeys = map[string]console.Key{
	"enter":     console.KeyEnter,
	"backspace": console.KeyBackspace,
	"delete":    console.KeyDelete,
	"left":      console.KeyLeft,
	"right":     console.KeyRight,
	"up":        console.KeyUp,
	"down":      console.KeyDown,
	"copy":      console.KeyCopy,
	"paste":     console.KeyPaste,
	"save":      console.KeySave,
	"restore":   console.KeyRestore,
}

type session struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
	in   *console.Interpreter
	clip *sessionClipboard
}

// consoleWSHandler runs one console per connection. Query ?boot=1 plays the
// startup animation.
func (s *Server) consoleWSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		system.Logger.Debug("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	clip := &sessionClipboard{}
	in := console.New(console.Options{
		Catalog:      s.Catalog(),
		Profile:      s.caller,
		DefaultPath:  s.conf.Console.DefaultPath,
		HistoryLimit: s.conf.Console.HistoryLimit,
		Boot:         r.URL.Query().Get("boot") == "1",
		Store:        newMemStore(),
		Clipboard:    clip,
		Logger:       system.Logger,
		Version:      appver.AppVersion,
		OnCommand:    s.metrics.observeCommand,
	})
	sess := &session{id: in.ID(), conn: conn, in: in, clip: clip}
	s.track(sess)
	defer s.untrack(sess)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go sess.animate(ctx, s.frameEvery)

	if err := sess.send(); err != nil {
		return
	}
	for {
		var msg clientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				system.Logger.Debug("websocket closed", "session", sess.id[:8], "err", err)
			}
			return
		}
		if err := sess.apply(msg); err != nil {
			return
		}
	}
}

func (sess *session) apply(msg clientMsg) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	switch msg.Type {
	case "key":
		k, ok := wsKeys[msg.Key]
		if !ok {
			return sess.writeFrame()
		}
		out := sess.in.HandleKey(console.Event{Key: k, Shift: msg.Shift, Name: msg.Key})
		if out.Paste {
			sess.in.Paste(msg.Text)
		}
	case "text":
		if sess.in.AcceptingInput() {
			sess.in.Paste(msg.Text)
		}
	case "line":
		if sess.in.AcceptingInput() {
			sess.in.Submit(msg.Text)
		}
	case "close":
		sess.in.HideOverlay()
	}
	return sess.writeFrame()
}

// animate ticks running animations and streams each frame.
func (sess *session) animate(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			sess.mu.Lock()
			var err error
			if sess.in.Animating() {
				sess.in.Tick()
				err = sess.writeFrame()
			}
			sess.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (sess *session) setCatalog(c *vfs.Catalog) {
	sess.mu.Lock()
	sess.in.SetCatalog(c)
	sess.mu.Unlock()
}

func (sess *session) send() error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.writeFrame()
}

// writeFrame must be called with mu held; gorilla allows one writer at a time.
func (sess *session) writeFrame() error {
	f := frame{
		ID:        sess.id,
		Lines:     sess.in.Lines(),
		Input:     sess.in.Input(),
		Cursor:    sess.in.Cursor(),
		Path:      sess.in.Path(),
		Accepting: sess.in.AcceptingInput(),
		Clipboard: sess.clip.take(),
	}
	if ov, ok := sess.in.Overlay(); ok {
		f.Overlay = &ov
	}
	return sess.conn.WriteJSON(f)
}
