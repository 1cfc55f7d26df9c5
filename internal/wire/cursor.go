// Package wire implements the raw Bitcoin transaction encoding: a
// bounds-checked byte cursor, the CompactSize integer codec, the
// transaction decoder and the size/weight derivation.
package wire

import (
	"encoding/binary"
	"fmt"
)

// cursor is a sequential reader over an immutable byte buffer. Every read
// validates the remaining length before advancing; reads return subslices
// of the backing buffer, so callers copy anything they keep.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

// take returns the next n bytes without copying.
func (c *cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, fmt.Errorf("read %s: need %d bytes, have %d: %w", field, n, c.remaining(), ErrTruncatedInput)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readByte(field string) (byte, error) {
	b, err := c.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readUint16(field string) (uint16, error) {
	b, err := c.take(2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readUint32(field string) (uint32, error) {
	b, err := c.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readUint64(field string) (uint64, error) {
	b, err := c.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// peek2 reports the next two bytes without advancing.
func (c *cursor) peek2() (b0, b1 byte, ok bool) {
	if c.remaining() < 2 {
		return 0, 0, false
	}
	return c.buf[c.pos], c.buf[c.pos+1], true
}

func (c *cursor) skip(n int) {
	c.pos += n
}
