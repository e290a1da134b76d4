// Package message holds the byte payload hidden in an image and its bit-level views.
package message

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yyyoichi/lsbsteg/internal/bitconv"
	"github.com/yyyoichi/lsbsteg/internal/bitpack"
)

var (
	ErrInvalidInput = errors.New("message must be built from a string or a byte slice")
)

// Message is an immutable byte payload, usually UTF-8 text.
type Message struct {
	data []byte
}

// New builds a Message from a string or a []byte.
// Any other type returns ErrInvalidInput.
func New(v any) (*Message, error) {
	switch v := v.(type) {
	case string:
		return NewString(v), nil
	case []byte:
		return NewBytes(v), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInput, v)
	}
}

// NewString builds a Message from the UTF-8 bytes of s.
func NewString(s string) *Message {
	return &Message{data: []byte(s)}
}

// NewBytes builds a Message from a copy of b.
func NewBytes(b []byte) *Message {
	return &Message{data: bytes.Clone(b)}
}

// NewBools builds a Message from MSB-first bits.
// Bits that do not complete a trailing byte are dropped.
func NewBools(bits []bool) *Message {
	return &Message{data: bitconv.BoolsToBytes(bits)}
}

// FromGroups rebuilds a Message from n-bit payload values as extracted from an image.
func FromGroups(values []uint8, n int) (*Message, error) {
	data, err := bitpack.UngroupBytes(values, n)
	if err != nil {
		return nil, err
	}
	return &Message{data: data}, nil
}

// Len returns the length in bytes.
func (m *Message) Len() int {
	return len(m.data)
}

// BitLen returns 8 * Len.
func (m *Message) BitLen() int {
	return len(m.data) * 8
}

// Bytes returns a copy of the payload.
func (m *Message) Bytes() []byte {
	return bytes.Clone(m.data)
}

// String interprets the payload as UTF-8 text.
func (m *Message) String() string {
	return string(m.data)
}

// Bits returns the payload bits, most significant bit of each byte first.
func (m *Message) Bits() []bool {
	return bitconv.BytesToBools(m.data)
}

// Groups splits the payload bits into n-bit values.
func (m *Message) Groups(n int) ([]uint8, error) {
	return bitpack.GroupBytes(m.data, n)
}

// Trimmed returns the Message without trailing zero bytes.
func (m *Message) Trimmed() *Message {
	return &Message{data: TrimPadding(m.data)}
}

// TrimPadding strips trailing zero bytes. A decoded payload carries no length,
// so unused image capacity comes back as zeros after the real content.
func TrimPadding(b []byte) []byte {
	return bytes.TrimRight(b, "\x00")
}
