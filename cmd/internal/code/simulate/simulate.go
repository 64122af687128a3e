package simulate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathanhack/hamming/cmd/internal/render"
	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ErrorPosition uint
	FromLeft      bool
	JSON          bool
)

// Result is what a simulated transmission produced.
type Result struct {
	Encoding *hamming.Encoding
	Injected int // position from the right, 0 for a clean transmission
	Received hamming.BitString
	Decoding *hamming.Decoding
}

// Simulate encodes data, flips the bit at pos and decodes the result.
func Simulate(data string, pos int, fromLeft bool) (*Result, error) {
	enc, err := hamming.Encode(data)
	if err != nil {
		return nil, err
	}

	received, err := hamming.InjectError(enc.Codeword, pos, fromLeft)
	if err != nil {
		return nil, err
	}
	injected := pos
	if fromLeft && pos > 0 {
		injected = enc.Codeword.Len() - pos + 1
	}

	dec, err := hamming.DecodeBits(received, enc.R)
	if err != nil && !errors.Is(err, hamming.ErrUncorrectable) {
		return nil, err
	}

	return &Result{
		Encoding: enc,
		Injected: injected,
		Received: received,
		Decoding: dec,
	}, nil
}

var SimulateRun = func(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	result, err := Simulate(strings.TrimSpace(args[0]), int(ErrorPosition), FromLeft)
	if err != nil {
		fmt.Fprintln(out, "Unable to simulate: ", err)
		return
	}
	logrus.Debugf("Injected an error at position %v, decoder found %v", result.Injected, result.Decoding.ErrorPosition)

	if JSON {
		if err := render.JSON(out, result); err != nil {
			fmt.Fprintln(out, "Unable to serialize the simulation: ", err)
		}
		return
	}

	render.Encoding(out, result.Encoding)
	fmt.Fprintln(out)
	render.Decoding(out, result.Decoding)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Sent:           %v\n", render.Highlight(result.Encoding.Codeword, result.Injected))
	fmt.Fprintf(out, "Received:       %v\n", render.Highlight(result.Received, result.Injected))
	if result.Injected == 0 {
		fmt.Fprintln(out, "Error simulation: none (perfect transmission)")
		return
	}
	fmt.Fprintf(out, "Error introduced at position %v (from the right)\n", result.Injected)
	if result.Decoding.Codeword().Equal(result.Encoding.Codeword) {
		fmt.Fprintln(out, "Successfully corrected single-bit error")
	}
}
