package hamming

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Bit is a single binary symbol, either Zero or One.
type Bit uint8

const (
	Zero Bit = iota
	One
)

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

// MarshalJSON writes a bit as the number 0 or 1, which also keeps a []Bit
// from being encoded as base64.
func (b Bit) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bit) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0":
		*b = Zero
	case "1":
		*b = One
	default:
		return fmt.Errorf("%w: %s is not a binary digit", ErrInvalidInput, data)
	}
	return nil
}

// BitString is an immutable, non-empty sequence of bits. It is written
// left to right like a human reads it, but positions are counted 1-based
// from the right: position 1 is the last character.
type BitString struct {
	bits []Bit
}

// Parse reads a string of '0' and '1' characters.
func Parse(s string) (BitString, error) {
	if len(s) == 0 {
		return BitString{}, fmt.Errorf("%w: empty bit string", ErrInvalidInput)
	}
	bits := make([]Bit, len(s))
	for i, c := range []byte(s) {
		switch c {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		default:
			return BitString{}, fmt.Errorf("%w: %q at index %v is not a binary digit", ErrInvalidInput, c, i)
		}
	}
	return BitString{bits: bits}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) BitString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBits copies bits (left to right) into a BitString.
func FromBits(bits []Bit) (BitString, error) {
	if len(bits) == 0 {
		return BitString{}, fmt.Errorf("%w: empty bit string", ErrInvalidInput)
	}
	for i, b := range bits {
		if b > One {
			return BitString{}, fmt.Errorf("%w: value %v at index %v is not a binary digit", ErrInvalidInput, uint8(b), i)
		}
	}
	return BitString{bits: slices.Clone(bits)}, nil
}

func (b BitString) Len() int {
	return len(b.bits)
}

// IsEmpty is true only for the zero value.
func (b BitString) IsEmpty() bool {
	return len(b.bits) == 0
}

// At returns the bit at the 1-based position counted from the right.
func (b BitString) At(pos int) Bit {
	if pos < 1 || pos > len(b.bits) {
		panic(fmt.Sprintf("position must be in [1,%v] but found %v", len(b.bits), pos))
	}
	return b.bits[len(b.bits)-pos]
}

// Bits returns a copy of the bits in left to right order.
func (b BitString) Bits() []Bit {
	return slices.Clone(b.bits)
}

// Flip returns a copy with the bit at pos (from the right) inverted.
func (b BitString) Flip(pos int) BitString {
	if pos < 1 || pos > len(b.bits) {
		panic(fmt.Sprintf("position must be in [1,%v] but found %v", len(b.bits), pos))
	}
	bits := slices.Clone(b.bits)
	bits[len(bits)-pos] ^= One
	return BitString{bits: bits}
}

func (b BitString) Equal(other BitString) bool {
	return slices.Equal(b.bits, other.bits)
}

// HammingDistance counts the differing bits. If the lengths differ the
// strings are aligned at position 1 and the extra length counts as errors.
func (b BitString) HammingDistance(other BitString) int {
	min, max := b.Len(), other.Len()
	if min > max {
		min, max = max, min
	}
	count := max - min
	for pos := 1; pos <= min; pos++ {
		if b.At(pos) != other.At(pos) {
			count++
		}
	}
	return count
}

// HammingWeight counts the ones.
func (b BitString) HammingWeight() int {
	count := 0
	for _, bit := range b.bits {
		count += int(bit)
	}
	return count
}

func (b BitString) String() string {
	buf := strings.Builder{}
	buf.Grow(len(b.bits))
	for _, bit := range b.bits {
		buf.WriteString(bit.String())
	}
	return buf.String()
}

func (b BitString) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BitString) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
