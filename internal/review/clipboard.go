package review

import "sync"

// MemoryClipboard is a per-session clipboard buffer for clients that read
// copied text back from the server.
type MemoryClipboard struct {
	mu   sync.RWMutex
	text string
	set  bool
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.set = true
	return nil
}

// ReadText returns the last written text and whether anything was written.
func (c *MemoryClipboard) ReadText() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text, c.set
}
