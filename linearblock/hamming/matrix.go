package hamming

import (
	"fmt"

	"github.com/nathanhack/hamming/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

// ParityCheckMatrix builds the r×n parity check matrix of the positional
// hamming code. Columns follow the left to right order of a BitString, so
// the column for position j holds the binary form of j (row i == bit i).
func ParityCheckMatrix(n, r int) (*linearblock.LinearBlock, error) {
	if err := validateParityCount(n, r); err != nil {
		return nil, err
	}

	H := mat.CSRMat(r, n)
	for j := 1; j <= n; j++ {
		for i := 0; i < r; i++ {
			if j&(1<<i) > 0 {
				H.Set(i, n-j, 1)
			}
		}
	}

	return &linearblock.LinearBlock{H: H}, nil
}

// ToVector converts b into a sparse vector in left to right order.
func ToVector(b BitString) mat.SparseVector {
	vec := mat.CSRVec(b.Len())
	for i, bit := range b.bits {
		if bit == One {
			vec.Set(i, 1)
		}
	}
	return vec
}

// FromVector converts a nonempty sparse vector back into a BitString.
func FromVector(vec mat.SparseVector) (BitString, error) {
	if vec.Len() == 0 {
		return BitString{}, fmt.Errorf("%w: empty vector", ErrInvalidInput)
	}
	bits := make([]Bit, vec.Len())
	for _, i := range vec.NonzeroArray() {
		bits[i] = One
	}
	return BitString{bits: bits}, nil
}

// SyndromeVector computes H·received over GF(2). Entry i is the syndrome
// bit s_i, which makes it agree with Syndrome.
func SyndromeVector(received BitString, r int) (mat.SparseVector, error) {
	block, err := ParityCheckMatrix(received.Len(), r)
	if err != nil {
		return nil, err
	}
	return block.Syndrome(ToVector(received)), nil
}

// SyndromePosition reads a syndrome vector as the binary error position.
func SyndromePosition(syndrome mat.SparseVector) int {
	pos := 0
	for _, i := range syndrome.NonzeroArray() {
		pos |= 1 << i
	}
	return pos
}
