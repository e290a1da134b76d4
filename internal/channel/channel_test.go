package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, uint8(0b1), Mask(1))
	assert.Equal(t, uint8(0b11), Mask(2))
	assert.Equal(t, uint8(0x0f), Mask(4))
	assert.Equal(t, uint8(0xff), Mask(8))
}

func TestEmbed(t *testing.T) {
	test := []struct {
		v, d uint8
		n    int
		exp  uint8
	}{
		{0b1010_1010, 0b0101, 4, 0b1010_0101},
		{0xff, 0, 1, 0xfe},
		{0x00, 1, 1, 0x01},
		{0b1100_0011, 0b10, 2, 0b1100_0010},
		{0x12, 0xab, 8, 0xab},
		// bits of d above n are dropped
		{0xf0, 0xff, 2, 0xf3},
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, Embed(tt.v, tt.d, tt.n), "v=%08b d=%b n=%d", tt.v, tt.d, tt.n)
	}
}

func TestEmbedExtract(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		high := ^Mask(n)
		for v := range 256 {
			for d := range 1 << n {
				got := Embed(uint8(v), uint8(d), n)
				if !assert.Equal(t, uint8(d), Extract(got, n)) {
					t.FailNow()
				}
				if !assert.Equal(t, uint8(v)&high, got&high, "high bits changed v=%d d=%d n=%d", v, d, n) {
					t.FailNow()
				}
			}
		}
	}
}
