package channel

// Mask returns the low-n-bit mask of a channel value.
func Mask(n int) uint8 {
	return uint8(1<<n - 1)
}

// Embed replaces the low n bits of v with d and keeps the high 8-n bits.
// Bits of d above n are ignored.
func Embed(v, d uint8, n int) uint8 {
	m := Mask(n)
	return v&^m | d&m
}

// Extract returns the low n bits of v.
func Extract(v uint8, n int) uint8 {
	return v & Mask(n)
}
