package hamming

import "errors"

var (
	// ErrInvalidInput is returned for empty or non-binary bit strings, an
	// impossible data length, or a parity count that does not match the
	// word length.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUncorrectable is returned when the syndrome points past the end of
	// the received word, which takes at least two bit errors.
	ErrUncorrectable = errors.New("uncorrectable error")
)
