package lsbsteg

import (
	"fmt"

	"github.com/yyyoichi/lsbsteg/internal/bitpack"
)

type Option func(*Stego) error

// WithBitsPerChannel sets how many low-order bits of each color channel carry payload.
// n must be 1, 2, 4 or 8. Larger values hold more data but disturb the image more.
func WithBitsPerChannel(n int) Option {
	return func(s *Stego) error {
		if err := bitpack.Validate(n); err != nil {
			return fmt.Errorf("%w:%w", ErrInvalidBitsPerChannel, err)
		}
		s.bits = n
		return nil
	}
}

// WithStrictCapacity makes Encode fail with ErrCapacityExceeded instead of
// truncating a message that does not fit. The source image is not touched in that case.
func WithStrictCapacity() Option {
	return func(s *Stego) error {
		s.strict = true
		return nil
	}
}

// WithWorkers splits rows across n goroutines. Results are identical to a
// sequential run. Values below 1 mean one worker.
func WithWorkers(n int) Option {
	return func(s *Stego) error {
		s.workers = n
		return nil
	}
}
