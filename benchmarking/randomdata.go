package benchmarking

import (
	"math"
	"math/rand"

	"github.com/nathanhack/hamming/linearblock/hamming"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomMessage creates a random message of length len.
func RandomMessage(len int) hamming.BitString {
	bits := make([]hamming.Bit, len)
	for i := range bits {
		bits[i] = hamming.Bit(rand.Intn(2))
	}
	message, err := hamming.FromBits(bits)
	if err != nil {
		panic(err)
	}
	return message
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,input.Len()) number of bits.
func RandomFlipBitCount(input hamming.BitString, numberOfBitsToFlip int) hamming.BitString {
	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < input.Len() {
		flip[rand.Intn(input.Len())+1] = true
	}

	output := input
	for pos := range flip {
		output = output.Flip(pos)
	}
	return output
}

// RandomFlipBits flips every bit independently with the crossoverProbability.
func RandomFlipBits(input hamming.BitString, crossoverProbability float64) hamming.BitString {
	output := input
	for pos := 1; pos <= input.Len(); pos++ {
		if rand.Float64() < crossoverProbability {
			output = output.Flip(pos)
		}
	}
	return output
}

// RandomNoiseBPSK creates a randomizes version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
