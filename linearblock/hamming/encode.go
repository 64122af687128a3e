package hamming

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ParityStep records how one parity bit was computed.
type ParityStep struct {
	Index    int   // i, the parity bit covers position 2^i
	Position int   // 2^i
	Covered  []int // positions j with j&2^i != 0, ascending
	Bits     []Bit // the bits at Covered when the parity was computed
	Parity   Bit   // XOR of Bits, written to Position
}

// Encoding is the result of Encode.
type Encoding struct {
	Data     BitString
	Arranged BitString // data with zero placeholders at the parity positions
	Codeword BitString
	R        int // number of parity bits
	Steps    []ParityStep
}

// RedundantBits returns the smallest r with 2^r >= m+r+1, the number of
// parity bits needed to protect m data bits.
func RedundantBits(m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: data length must be >=1 but found %v", ErrInvalidInput, m)
	}
	//r == m+1 always satisfies the inequality for m>=1
	r := 0
	for ; r <= m+1; r++ {
		if 1<<r >= m+r+1 {
			break
		}
	}
	return r, nil
}

// IsParityPosition is true for the power of two positions 1, 2, 4, 8, ...
func IsParityPosition(pos int) bool {
	return pos > 0 && pos&(pos-1) == 0
}

// Coverage lists the positions in [1,n] checked by parity bit i, that is
// every position whose binary form has bit i set. The parity bit's own
// position 2^i is always included.
func Coverage(n, i int) []int {
	p := 1 << i
	covered := make([]int, 0, n/2+1)
	for j := 1; j <= n; j++ {
		if j&p == p {
			covered = append(covered, j)
		}
	}
	return covered
}

// Interleave spreads the data bits over m+r positions leaving a zero at
// each of the r power of two positions. Data bits are placed from the last
// one backwards starting at position 1, so they keep their relative order.
func Interleave(data BitString, r int) BitString {
	m := data.Len()
	n := m + r
	if n >= 1<<r || (r > 0 && n < 1<<(r-1)) {
		panic(fmt.Sprintf("%v parity bits can not be placed in a %v bit codeword", r, n))
	}

	arranged := make([]Bit, 0, n)
	nextParity := 1
	k := 1
	for pos := 1; pos <= n; pos++ {
		if pos == nextParity {
			arranged = append(arranged, Zero)
			nextParity <<= 1
			continue
		}
		arranged = append(arranged, data.bits[m-k])
		k++
	}

	//built from position 1 upward, so flip it to read left to right
	slices.Reverse(arranged)
	return BitString{bits: arranged}
}

// computeParity fills in the parity bits of an interleaved sequence in
// order i = 0..r-1, each one the even parity of its coverage set as the
// sequence stands at that moment.
func computeParity(arranged BitString, r int) (BitString, []ParityStep) {
	n := arranged.Len()
	bits := slices.Clone(arranged.bits)
	steps := make([]ParityStep, 0, r)

	for i := 0; i < r; i++ {
		p := 1 << i
		covered := Coverage(n, i)
		observed := make([]Bit, len(covered))
		var val Bit
		for c, j := range covered {
			observed[c] = bits[n-j]
			val ^= bits[n-j]
		}
		bits[n-p] = val

		steps = append(steps, ParityStep{
			Index:    i,
			Position: p,
			Covered:  covered,
			Bits:     observed,
			Parity:   val,
		})
	}

	return BitString{bits: bits}, steps
}

// Encode parses data and returns its Hamming codeword together with the
// intermediate values. It fails with ErrInvalidInput when data is empty or
// holds anything but '0' and '1'.
func Encode(data string) (*Encoding, error) {
	bits, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return EncodeBits(bits)
}

// EncodeBits is Encode for an already parsed BitString.
func EncodeBits(data BitString) (*Encoding, error) {
	r, err := RedundantBits(data.Len())
	if err != nil {
		return nil, err
	}

	arranged := Interleave(data, r)
	codeword, steps := computeParity(arranged, r)

	return &Encoding{
		Data:     data,
		Arranged: arranged,
		Codeword: codeword,
		R:        r,
		Steps:    steps,
	}, nil
}
