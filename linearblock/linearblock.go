package linearblock

import (
	"encoding/json"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

//LinearBlock holds the parity check matrix H of a binary linear block code.
// Column c of H describes which checks cover codeword symbol c.
type LinearBlock struct {
	H mat.SparseMat //the H(parity) matrix
}

//// For JSON unmarshalling
type linearblock struct {
	H mat.CSRMatrix
}

//UnmarshalJSON is needed because LinearBlock has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.H = &lb.H
	return nil
}

//Syndrome calculates H*codeword over GF(2)
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}
	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

//IsCodeword reports whether every parity check is satisfied by the codeword.
func (l *LinearBlock) IsCodeword(codeword mat.SparseVector) bool {
	return l.Syndrome(codeword).IsZero()
}

func (l *LinearBlock) MessageLength() int {
	return l.CodewordLength() - l.ParitySymbols()
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString(fmt.Sprintf("n: %v k: %v", l.CodewordLength(), l.MessageLength()))
	buf.WriteString("\n}\n")
	return buf.String()
}
