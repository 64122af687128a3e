package decode

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
	ParityBits uint
	JSON       bool
)

var DecodeRun = func(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	word := strings.TrimSpace(args[0])

	r := int(ParityBits)
	if r == 0 {
		//not given so we work it out from the codeword length
		var err error
		_, r, err = hamming.DataLength(len(word))
		if err != nil {
			fmt.Fprintln(out, "Unable to decode: ", err)
			return
		}
		logrus.Debugf("Using r=%v for a %v bit codeword", r, len(word))
	}

	dec, err := hamming.Decode(word, r)
	if err != nil && !errors.Is(err, hamming.ErrUncorrectable) {
		fmt.Fprintln(out, "Unable to decode: ", err)
		return
	}
	if err != nil {
		logrus.Debugf("Decoding failed: %v", err)
	}

	if JSON {
		if err := render.JSON(out, dec); err != nil {
			fmt.Fprintln(out, "Unable to serialize the decoding: ", err)
		}
		return
	}

	render.Decoding(out, dec)
	if dec.Corrected == nil && dec.ErrorPosition != 0 {
		return
	}

	data, err := dec.Data()
	if err != nil {
		fmt.Fprintln(out, "Unable to extract the data bits: ", err)
		return
	}
	fmt.Fprintf(out, "Data bits:      %v\n", data)
}
