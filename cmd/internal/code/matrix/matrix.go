package matrix

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	MessageBits uint
	OutputFile  string
)

var MatrixRun = func(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	m := int(MessageBits)
	r, err := hamming.RedundantBits(m)
	if err != nil {
		fmt.Fprintln(out, "Unable to create the parity check matrix: ", err)
		return
	}

	block, err := hamming.ParityCheckMatrix(m+r, r)
	if err != nil {
		fmt.Fprintln(out, "Unable to create the parity check matrix: ", err)
		return
	}
	logrus.Debugf("Created a %vx%v parity check matrix", r, m+r)

	if OutputFile == "" {
		fmt.Fprint(out, block)
		return
	}

	bs, err := json.Marshal(block)
	if err != nil {
		fmt.Fprintln(out, "Unable to serialize the parity check matrix: ", err)
		return
	}

	err = os.WriteFile(OutputFile, bs, 0644)
	if err != nil {
		fmt.Fprintln(out, "unable to write file: ", err)
	}
}
