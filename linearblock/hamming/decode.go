package hamming

import (
	"fmt"
)

// SyndromeStep records one parity check over a received word.
type SyndromeStep struct {
	Index    int   // i, the check covers position 2^i
	Position int   // 2^i
	Covered  []int // positions j with j&2^i != 0, ascending
	Bits     []Bit // the received bits at Covered
	Syndrome Bit   // s_i, XOR of Bits
}

// Decoding is the result of Decode. Corrected is nil when no error was
// found or the error could not be corrected.
type Decoding struct {
	Received      BitString
	R             int
	Steps         []SyndromeStep
	Syndrome      BitString // s_{r-1} ... s_0
	ErrorPosition int       // 0 means no error, counted from the right
	Corrected     *BitString
}

// Codeword returns the corrected word, or the received word when nothing
// needed correcting.
func (d *Decoding) Codeword() BitString {
	if d.Corrected != nil {
		return *d.Corrected
	}
	return d.Received
}

// IndexFromLeft converts ErrorPosition to a 1-based index counted from the
// left, 0 when there is no error.
func (d *Decoding) IndexFromLeft() int {
	if d.ErrorPosition == 0 {
		return 0
	}
	return d.Received.Len() - d.ErrorPosition + 1
}

// Data strips the parity bits from the (corrected) codeword.
func (d *Decoding) Data() (BitString, error) {
	return ExtractData(d.Codeword(), d.R)
}

// Syndrome recomputes every parity check over the received word. Each
// syndrome bit s_i is bit i of the returned error position, so the
// position is 0 for a valid codeword and otherwise names the flipped bit.
func Syndrome(received BitString, r int) (errorPosition int, steps []SyndromeStep) {
	n := received.Len()
	steps = make([]SyndromeStep, 0, r)

	for i := 0; i < r; i++ {
		covered := Coverage(n, i)
		observed := make([]Bit, len(covered))
		var s Bit
		for c, j := range covered {
			observed[c] = received.At(j)
			s ^= observed[c]
		}
		if s == One {
			errorPosition |= 1 << i
		}

		steps = append(steps, SyndromeStep{
			Index:    i,
			Position: 1 << i,
			Covered:  covered,
			Bits:     observed,
			Syndrome: s,
		})
	}
	return
}

// Correct returns a copy of received with the bit at pos (from the right)
// flipped. pos must be in [1, received.Len()].
func Correct(received BitString, pos int) (BitString, error) {
	if pos < 1 || pos > received.Len() {
		return BitString{}, fmt.Errorf("%w: error position must be in [1,%v] but found %v", ErrInvalidInput, received.Len(), pos)
	}
	return received.Flip(pos), nil
}

// DataLength returns the data length m and parity count r of an n bit
// codeword. Not every n is a valid codeword length; e.g. there is no
// codeword of length 4.
func DataLength(n int) (m, r int, err error) {
	if n < 1 {
		return 0, 0, fmt.Errorf("%w: codeword length must be >=1 but found %v", ErrInvalidInput, n)
	}
	// m+RedundantBits(m) strictly increases with m, so a match is unique
	for r = 2; r < n; r++ {
		m = n - r
		want, _ := RedundantBits(m)
		if want == r {
			return m, r, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no data length encodes to %v bits", ErrInvalidInput, n)
}

func validateParityCount(n, r int) error {
	m := n - r
	if m < 1 {
		return fmt.Errorf("%w: %v parity bits leave no data in a %v bit word", ErrInvalidInput, r, n)
	}
	want, err := RedundantBits(m)
	if err != nil {
		return err
	}
	if want != r {
		return fmt.Errorf("%w: a %v bit word carries %v parity bits but %v were given", ErrInvalidInput, n, want, r)
	}
	return nil
}

// ExtractData drops the parity positions of codeword and returns the data
// bits in their original order.
func ExtractData(codeword BitString, r int) (BitString, error) {
	n := codeword.Len()
	if err := validateParityCount(n, r); err != nil {
		return BitString{}, err
	}

	data := make([]Bit, 0, n-r)
	for i, bit := range codeword.bits {
		if !IsParityPosition(n - i) {
			data = append(data, bit)
		}
	}
	return BitString{bits: data}, nil
}

// InjectError flips one bit of codeword. pos 0 leaves it untouched. When
// fromLeft is set pos is counted 1-based from the left instead of the right.
func InjectError(codeword BitString, pos int, fromLeft bool) (BitString, error) {
	n := codeword.Len()
	if pos < 0 || pos > n {
		return BitString{}, fmt.Errorf("%w: error position must be in [0,%v] but found %v", ErrInvalidInput, n, pos)
	}
	if pos == 0 {
		return codeword, nil
	}
	if fromLeft {
		pos = n - pos + 1
	}
	return codeword.Flip(pos), nil
}

// Decode parses received and checks it against r parity bits, the value
// returned by Encode for the same word length.
//
// It fails with ErrInvalidInput for malformed input or a mismatched r, and
// with ErrUncorrectable when the syndrome lies beyond the word; in that
// case the returned Decoding is still filled in, without a correction.
func Decode(received string, r int) (*Decoding, error) {
	bits, err := Parse(received)
	if err != nil {
		return nil, err
	}
	return DecodeBits(bits, r)
}

// DecodeBits is Decode for an already parsed BitString.
func DecodeBits(received BitString, r int) (*Decoding, error) {
	if received.IsEmpty() {
		return nil, fmt.Errorf("%w: empty bit string", ErrInvalidInput)
	}
	n := received.Len()
	if err := validateParityCount(n, r); err != nil {
		return nil, err
	}

	pos, steps := Syndrome(received, r)

	syndrome := make([]Bit, r)
	for _, step := range steps {
		syndrome[r-1-step.Index] = step.Syndrome
	}

	d := &Decoding{
		Received:      received,
		R:             r,
		Steps:         steps,
		Syndrome:      BitString{bits: syndrome},
		ErrorPosition: pos,
	}

	switch {
	case pos == 0:
		return d, nil
	case pos > n:
		return d, fmt.Errorf("%w: syndrome %v names position %v of a %v bit word", ErrUncorrectable, d.Syndrome, pos, n)
	}

	corrected, err := Correct(received, pos)
	if err != nil {
		return nil, err
	}
	d.Corrected = &corrected
	return d, nil
}
