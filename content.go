package walker

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Content holds the bytes read for one file. It never touches the filesystem again
// and does not know which path it came from.
type Content struct {
	data []byte
}

func newContent(data []byte) *Content { return &Content{data: data} }

// Text decodes the content as text. A UTF-8 or UTF-16 byte order mark selects the
// matching decoder and is stripped; without one the bytes are returned unchanged.
func (c *Content) Text() (string, error) {
	if c == nil || len(c.data) == 0 {
		return "", nil
	}
	s, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), c.data)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// Bytes returns a copy of the raw content.
func (c *Content) Bytes() []byte {
	if c == nil {
		return nil
	}
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// Len returns the content size in bytes.
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.data)
}
