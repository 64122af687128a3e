package encode

import (
	"fmt"
	"strings"

	"github.com/nathanhack/hamming/cmd/internal/render"
	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	JSON bool
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	enc, err := hamming.Encode(strings.TrimSpace(args[0]))
	if err != nil {
		fmt.Fprintln(out, "Unable to encode: ", err)
		return
	}
	logrus.Debugf("Encoded %v data bits with %v parity bits", enc.Data.Len(), enc.R)

	if JSON {
		if err := render.JSON(out, enc); err != nil {
			fmt.Fprintln(out, "Unable to serialize the encoding: ", err)
		}
		return
	}
	render.Encoding(out, enc)
}
