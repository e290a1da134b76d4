package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	test := []struct {
		name    string
		input   any
		exp     []byte
		wantErr error
	}{
		{"string", "Hi", []byte("Hi"), nil},
		{"multibyte", "こんにちはHello", []byte("こんにちはHello"), nil},
		{"bytes", []byte{0x01, 0xff, 0x00}, []byte{0x01, 0xff, 0x00}, nil},
		{"empty", "", []byte{}, nil},
		{"int", 42, nil, ErrInvalidInput},
		{"nil", nil, nil, ErrInvalidInput},
		{"runes", []rune("Hi"), nil, ErrInvalidInput},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.input)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap expected")
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exp, m.Bytes())
			assert.Equal(t, len(tt.exp), m.Len())
			assert.Equal(t, len(tt.exp)*8, m.BitLen())
			assert.Len(t, m.Bits(), m.BitLen())
		})
	}
}

func TestImmutable(t *testing.T) {
	src := []byte("abc")
	m := NewBytes(src)
	src[0] = 'x'
	assert.Equal(t, "abc", m.String())

	out := m.Bytes()
	out[1] = 'x'
	assert.Equal(t, "abc", m.String())
}

func TestBits(t *testing.T) {
	m := NewString("H")
	assert.Equal(t, []bool{false, true, false, false, true, false, false, false}, m.Bits())
	assert.Equal(t, "H", NewBools(m.Bits()).String())
	assert.Equal(t, "H", NewBools(append(m.Bits(), true, true)).String())
}

func TestGroups(t *testing.T) {
	m := NewString("Hi")
	for _, n := range []int{1, 2, 4, 8} {
		values, err := m.Groups(n)
		require.NoError(t, err)
		assert.Len(t, values, 16/n)

		back, err := FromGroups(values, n)
		require.NoError(t, err)
		assert.Equal(t, "Hi", back.String())
	}
	_, err := m.Groups(3)
	assert.Error(t, err)
	_, err = FromGroups([]uint8{1}, 5)
	assert.Error(t, err)
}

func TestTrimmed(t *testing.T) {
	m := NewBytes([]byte{'H', 'i', 0, 0, 0})
	assert.Equal(t, "Hi", m.Trimmed().String())
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []byte{}, TrimPadding([]byte{0, 0}))
	assert.Equal(t, []byte{0, 'a'}, TrimPadding([]byte{0, 'a', 0}))
}
