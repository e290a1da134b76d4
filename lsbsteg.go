package lsbsteg

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/lsbsteg/internal/bitpack"
	"github.com/yyyoichi/lsbsteg/internal/grid"
	"github.com/yyyoichi/lsbsteg/internal/steg"
	"github.com/yyyoichi/lsbsteg/message"
)

// DefaultBitsPerChannel is the number of low-order bits of each color channel used for payload.
const DefaultBitsPerChannel = 4

var (
	ErrInvalidBitsPerChannel = errors.New("bits per channel must divide 8")
	ErrCapacityExceeded      = errors.New("message exceeds image capacity")
)

// Message is the payload hidden in an image.
type Message = message.Message

// Encode hides msg in a copy of src with the specified options.
// This is a convenience function that creates a Stego instance and calls its Encode method.
func Encode(ctx context.Context, src image.Image, msg *Message, opts ...Option) (*image.NRGBA, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Encode(ctx, src, msg)
}

// Decode recovers the payload of src with the specified options.
// This is a convenience function that creates a Stego instance and calls its Decode method.
func Decode(ctx context.Context, src image.Image, opts ...Option) (*Message, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Decode(ctx, src)
}

type Stego struct {
	bits    int
	strict  bool
	workers int
}

// New initializes a steganography processor.
// Without options it uses DefaultBitsPerChannel, one worker and silent truncation.
func New(opts ...Option) (*Stego, error) {
	s := new(Stego)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// BitsPerChannel returns the number of payload bits stored in each color channel.
func (s *Stego) BitsPerChannel() int {
	return s.bits
}

// Encode hides msg in the low-order bits of a copy of src and returns the copy.
//
// Process:
//  1. Copies src into a non-premultiplied RGBA grid.
//  2. Splits the message bits into groups of BitsPerChannel bits.
//  3. Walks every red, green and blue channel row by row and stores one group per channel.
//  4. Clears the low bits of channels left over once the message runs out.
//
// Every pixel of the result is opaque. A message larger than the image is
// truncated unless WithStrictCapacity is set.
func (s *Stego) Encode(ctx context.Context, src image.Image, msg *Message) (*image.NRGBA, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil message", message.ErrInvalidInput)
	}
	g := grid.New(src)
	values, err := msg.Groups(s.bits)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidBitsPerChannel, err)
	}
	if s.strict {
		if err := steg.Enable(g, len(values)); err != nil {
			return nil, fmt.Errorf("%w:%w", ErrCapacityExceeded, err)
		}
	}
	if err := steg.Embed(ctx, g, values, s.bits, s.workers); err != nil {
		return nil, err
	}
	return g.Image(), nil
}

// Decode reads the low-order bits of every red, green and blue channel of src
// and joins them into bytes.
//
// No length is stored in the image, so the result always spans the full
// capacity: the hidden message followed by zero bytes. Use Message.Trimmed to drop them.
func (s *Stego) Decode(ctx context.Context, src image.Image) (*Message, error) {
	g := grid.New(src)
	values, err := steg.Extract(ctx, g, s.bits, s.workers)
	if err != nil {
		return nil, err
	}
	return message.FromGroups(values, s.bits)
}

// Capacity describes how much payload src can carry with this instance's settings.
func (s *Stego) Capacity(rect image.Rectangle) CapacityInfo {
	c, _ := Capacity(rect, s.bits)
	return c
}

// CapacityInfo holds information about the embedding capacity of an image.
type CapacityInfo struct {
	Width, Height  int
	BitsPerChannel int
	// Slots is the number of color channels, 3 per pixel.
	Slots int
	// Bits is Slots * BitsPerChannel.
	Bits int
	// Bytes is the number of whole bytes Decode can return.
	Bytes int
}

// Capacity computes the payload capacity of an image of the given bounds.
func Capacity(rect image.Rectangle, bitsPerChannel int) (CapacityInfo, error) {
	if err := bitpack.Validate(bitsPerChannel); err != nil {
		return CapacityInfo{}, fmt.Errorf("%w:%w", ErrInvalidBitsPerChannel, err)
	}
	c := CapacityInfo{
		Width:          rect.Dx(),
		Height:         rect.Dy(),
		BitsPerChannel: bitsPerChannel,
	}
	c.Slots = c.Width * c.Height * grid.Channels
	c.Bits = c.Slots * bitsPerChannel
	c.Bytes = c.Bits / 8
	return c, nil
}

func (s *Stego) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.bits == 0 {
		s.bits = DefaultBitsPerChannel
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return nil
}
