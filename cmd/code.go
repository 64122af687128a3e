package cmd

import (
	"github.com/nathanhack/hamming/cmd/internal/code/decode"
	"github.com/nathanhack/hamming/cmd/internal/code/encode"
	"github.com/nathanhack/hamming/cmd/internal/code/matrix"
	"github.com/nathanhack/hamming/cmd/internal/code/simulate"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode DATA_BITS",
	Aliases: []string{"e", "enc"},
	Short:   "Encodes a bit string",
	Long: `Encodes a bit string such as 1011001 with a Hamming code. The parity bits
are placed at the power of two positions (1, 2, 4, ... counted from the right)
and every parity computation is shown.`,
	Args: cobra.ExactArgs(1),
	Run:  encode.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODEWORD",
	Aliases: []string{"d", "dec"},
	Short:   "Checks and corrects a codeword",
	Long: `Recomputes every parity check of a received codeword. The syndrome gives the
position (from the right) of a single flipped bit, which is then corrected.`,
	Args: cobra.ExactArgs(1),
	Run:  decode.DecodeRun,
}

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:     "simulate DATA_BITS",
	Aliases: []string{"s", "sim"},
	Short:   "Encodes, flips a bit and decodes",
	Long:    `Encodes the data bits, simulates a transmission error by flipping one bit of the codeword and shows how the decoder finds and corrects it.`,
	Args:    cobra.ExactArgs(1),
	Run:     simulate.SimulateRun,
}

// matrixCmd represents the matrix command
var matrixCmd = &cobra.Command{
	Use:     "matrix",
	Aliases: []string{"m", "h"},
	Short:   "Shows the parity check matrix",
	Long:    `Shows the parity check matrix H used for a message size, where the column for position j is j in binary.`,
	Args:    cobra.NoArgs,
	Run:     matrix.MatrixRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVarP(&encode.JSON, "json", "j", false, "output the encoding as JSON")

	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().UintVarP(&decode.ParityBits, "parity", "r", 0, "the number of parity bits used to encode; note 0 means work it out from the codeword length")
	decodeCmd.Flags().BoolVarP(&decode.JSON, "json", "j", false, "output the decoding as JSON")

	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().UintVarP(&simulate.ErrorPosition, "error", "e", 0, "the position of the bit to flip; note 0 means no error")
	simulateCmd.Flags().BoolVarP(&simulate.FromLeft, "from-left", "l", false, "count the error position from the left instead of the right")
	simulateCmd.Flags().BoolVarP(&simulate.JSON, "json", "j", false, "output the simulation as JSON")

	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().UintVarP(&matrix.MessageBits, "message", "m", 4, "the number of bits in the message")
	matrixCmd.Flags().StringVarP(&matrix.OutputFile, "output", "o", "", "write the matrix as JSON to this file instead of printing it")
}
