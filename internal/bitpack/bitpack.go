// Package bitpack splits bit sequences into fixed-width groups and joins them back.
//
// A group is N bits wide, where N divides 8, and is carried as a right-aligned
// uint8 whose most significant group bit comes first in the sequence.
package bitpack

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
)

var (
	ErrInvalidWidth = errors.New("group width must be one of 1, 2, 4 or 8")
)

// Validate reports whether n is usable as a group width.
func Validate(n int) error {
	if n < 1 || n > 8 || 8%n != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, n)
	}
	return nil
}

// Count returns the number of n-bit groups needed to hold bits.
func Count(bits, n int) int {
	return (bits + n - 1) / n
}

// Group partitions bits into n-bit values in order.
// A final chunk shorter than n is padded on the right with zeros.
func Group(bits []bool, n int) ([]uint8, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	w := bitstream.NewBitWriter[uint8](0, 0)
	for _, bit := range bits {
		w.WriteBool(bit)
	}
	return group(w.Data(), len(bits), n), nil
}

// GroupBytes is Group applied to the MSB-first bits of data.
func GroupBytes(data []byte, n int) ([]uint8, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return group(data, len(data)*8, n), nil
}

func group(data []uint8, bits, n int) []uint8 {
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(bits)
	values := make([]uint8, Count(bits, n))
	for i := range values {
		values[i] = r.Read8R(n, i)
	}
	return values
}

// Ungroup expands each value, masked to its low n bits, back into n bits
// and concatenates them in order.
func Ungroup(values []uint8, n int) ([]bool, error) {
	w, err := ungroup(values, n)
	if err != nil {
		return nil, err
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	bits := make([]bool, r.Bits())
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits, nil
}

// UngroupBytes is Ungroup followed by packing into bytes.
// Bits that do not fill a whole trailing byte are dropped.
func UngroupBytes(values []uint8, n int) ([]byte, error) {
	w, err := ungroup(values, n)
	if err != nil {
		return nil, err
	}
	return w.Data()[:w.Bits()/8], nil
}

func ungroup(values []uint8, n int) (*bitstream.BitWriter[uint8], error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	w := bitstream.NewBitWriter[uint8](0, 0)
	for _, v := range values {
		w.Write8(8-n, n, v)
	}
	return w, nil
}
