package linearblock

import (
	"encoding/json"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

// the (7,4) hamming parity check matrix with column c == binary(c+1)
func hamming74() *LinearBlock {
	return &LinearBlock{
		H: mat.CSRMat(3, 7,
			1, 0, 1, 0, 1, 0, 1,
			0, 1, 1, 0, 0, 1, 1,
			0, 0, 0, 1, 1, 1, 1,
		),
	}
}

func TestLinearBlock_Dims(t *testing.T) {
	l := hamming74()
	if l.CodewordLength() != 7 {
		t.Fatalf("expected 7 but found %v", l.CodewordLength())
	}
	if l.ParitySymbols() != 3 {
		t.Fatalf("expected 3 but found %v", l.ParitySymbols())
	}
	if l.MessageLength() != 4 {
		t.Fatalf("expected 4 but found %v", l.MessageLength())
	}
	if l.CodeRate() != 4.0/7.0 {
		t.Fatalf("expected %v but found %v", 4.0/7.0, l.CodeRate())
	}
}

func TestLinearBlock_Syndrome(t *testing.T) {
	l := hamming74()
	tests := []struct {
		codeword mat.SparseVector
		expected mat.SparseVector
	}{
		{mat.CSRVec(7), mat.CSRVec(3)},
		{mat.CSRVec(7, 1, 1, 1, 0, 0, 0, 0), mat.CSRVec(3)},
		{mat.CSRVec(7, 1, 0, 0, 0, 0, 0, 0), mat.CSRVec(3, 1, 0, 0)},
		{mat.CSRVec(7, 0, 0, 0, 0, 1, 0, 0), mat.CSRVec(3, 1, 0, 1)},
		{mat.CSRVec(7, 0, 0, 0, 0, 0, 0, 1), mat.CSRVec(3, 1, 1, 1)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := l.Syndrome(test.codeword)
			if !actual.Equals(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
			if l.IsCodeword(test.codeword) != test.expected.IsZero() {
				t.Fatalf("expected IsCodeword == %v", test.expected.IsZero())
			}
		})
	}
}

func TestLinearBlock_JSON(t *testing.T) {
	l := hamming74()
	bs, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	var actual LinearBlock
	err = json.Unmarshal(bs, &actual)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	if !actual.H.Equals(l.H) {
		t.Fatalf("expected %v but found %v", l.H, actual.H)
	}
}
