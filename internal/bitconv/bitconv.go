package bitconv

import "github.com/yyyoichi/bitstream-go"

// BytesToBools expands each byte into 8 bits, most significant bit first.
func BytesToBools(b []byte) []bool {
	r := bitstream.NewBitReader(b, 0, 0)
	bits := make([]bool, r.Bits())
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}

// BoolsToBytes packs bits into bytes, most significant bit first.
// A trailing group of fewer than 8 bits does not form a byte and is dropped.
func BoolsToBytes(bits []bool) []byte {
	whole := len(bits) - len(bits)%8
	w := bitstream.NewBitWriter[uint8](0, 0)
	for _, bit := range bits[:whole] {
		w.WriteBool(bit)
	}
	return w.Data()
}
