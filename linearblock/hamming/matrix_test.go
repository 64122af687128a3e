package hamming

import (
	"errors"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestParityCheckMatrix(t *testing.T) {
	actual, err := ParityCheckMatrix(7, 3)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	// leftmost column is position 7
	expected := mat.CSRMat(3, 7,
		1, 0, 1, 0, 1, 0, 1,
		1, 1, 0, 0, 1, 1, 0,
		1, 1, 1, 1, 0, 0, 0,
	)
	if !actual.H.Equals(expected) {
		t.Fatalf("expected %v but found %v", expected, actual.H)
	}
	if actual.MessageLength() != 4 {
		t.Fatalf("expected message length 4 but found %v", actual.MessageLength())
	}

	_, err = ParityCheckMatrix(4, 2)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput but found %v", err)
	}
}

func TestParityCheckMatrix_Codewords(t *testing.T) {
	for m := 1; m <= 6; m++ {
		for _, message := range allMessages(m) {
			enc, err := EncodeBits(message)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			block, err := ParityCheckMatrix(enc.Codeword.Len(), enc.R)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !block.IsCodeword(ToVector(enc.Codeword)) {
				t.Fatalf("%v: expected %v to satisfy H", message, enc.Codeword)
			}
		}
	}
}

func TestSyndromeVector(t *testing.T) {
	for m := 1; m <= 5; m++ {
		for _, message := range allMessages(m) {
			enc, err := EncodeBits(message)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}

			for p := 0; p <= enc.Codeword.Len(); p++ {
				received, err := InjectError(enc.Codeword, p, false)
				if err != nil {
					t.Fatalf("expected no error but found: %v", err)
				}

				vec, err := SyndromeVector(received, enc.R)
				if err != nil {
					t.Fatalf("expected no error but found: %v", err)
				}
				expected, _ := Syndrome(received, enc.R)
				if actual := SyndromePosition(vec); actual != expected {
					t.Fatalf("%v flip %v: expected %v but found %v", message, p, expected, actual)
				}
			}
		}
	}
}

func TestToFromVector(t *testing.T) {
	b := MustParse("1101000")
	actual, err := FromVector(ToVector(b))
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if !actual.Equal(b) {
		t.Fatalf("expected %v but found %v", b, actual)
	}

	_, err = FromVector(mat.CSRVec(0))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput but found %v", err)
	}
}
