package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/nathanhack/hamming/linearblock/hamming"
)

func init() {
	color.NoColor = true
}

func TestHighlight(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	word := hamming.MustParse("10101001110")
	actual := Highlight(word, 5)
	if !strings.HasPrefix(actual, "101010") || !strings.HasSuffix(actual, "1110") {
		t.Fatalf("expected the unmarked bits to be kept but found %q", actual)
	}
	if actual == word.String() {
		t.Fatalf("expected position 5 to be marked")
	}
	if Highlight(word, 0) != word.String() {
		t.Fatalf("expected no marks for position 0")
	}
}

func TestEncoding(t *testing.T) {
	enc, err := hamming.Encode("1011001")
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	buf := bytes.Buffer{}
	Encoding(&buf, enc)
	out := buf.String()

	for _, expected := range []string{"r = 4", "10101000100", "10101001110", "P8", "1,3,5,7,9,11"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in\n%v", expected, out)
		}
	}
}

func TestDecoding(t *testing.T) {
	tests := []struct {
		received string
		expected string
	}{
		{"10101001110", "No error detected"},
		{"10101011110", "position 5 from the right (index 7 from the left)"},
		{"10111000110", "Uncorrectable: position 12"},
	}
	for _, test := range tests {
		dec, _ := hamming.Decode(test.received, 4)

		buf := bytes.Buffer{}
		Decoding(&buf, dec)
		if !strings.Contains(buf.String(), test.expected) {
			t.Fatalf("expected %q in\n%v", test.expected, buf.String())
		}
	}
}

func TestJSON(t *testing.T) {
	dec, err := hamming.Decode("10101011110", 4)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	buf := bytes.Buffer{}
	err = JSON(&buf, dec)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	for _, expected := range []string{`"ErrorPosition": 5`, `"Corrected": "10101001110"`, `"Syndrome": "0101"`} {
		if !strings.Contains(buf.String(), expected) {
			t.Fatalf("expected %q in\n%v", expected, buf.String())
		}
	}
}
