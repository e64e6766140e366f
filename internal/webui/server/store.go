package server

import (
	"maraos/internal/store"
)

// memStore keeps a websocket session's snapshot and history for the life
// of the connection. Access is serialized by the session mutex.
type memStore map[string][]byte

func newMemStore() memStore { return memStore{} }

func (m memStore) Get(key string) ([]byte, error) {
	b, ok := m[key]
	if !ok {
		return nil, store.ErrEmpty
	}
	return append([]byte(nil), b...), nil
}

func (m memStore) Put(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

// sessionClipboard holds copied text until the next frame delivers it.
type sessionClipboard struct {
	text string
}

func (c *sessionClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func (c *sessionClipboard) take() string {
	t := c.text
	c.text = ""
	return t
}
