// Package render formats encoder and decoder results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/olekukonko/tablewriter"
)

var (
	flipped = color.New(color.FgRed, color.Bold)
	parity  = color.New(color.FgCyan)
	good    = color.New(color.FgGreen)
	bad     = color.New(color.FgYellow)
)

const rule = "----------------------------------------------------------------------"

// Highlight returns word with the bit at pos (from the right) marked. A pos
// of 0 leaves the word plain.
func Highlight(word hamming.BitString, pos int) string {
	s := word.String()
	if pos < 1 || pos > len(s) {
		return s
	}
	i := len(s) - pos
	return s[:i] + flipped.Sprint(s[i:i+1]) + s[i+1:]
}

// Parities returns word with every parity position marked.
func Parities(word hamming.BitString) string {
	s := word.String()
	buf := strings.Builder{}
	for i := 0; i < len(s); i++ {
		if hamming.IsParityPosition(len(s) - i) {
			buf.WriteString(parity.Sprint(s[i : i+1]))
		} else {
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}

func joinBits(bits []hamming.Bit, sep string) string {
	strs := make([]string, len(bits))
	for i, b := range bits {
		strs[i] = b.String()
	}
	return strings.Join(strs, sep)
}

func joinInts(values []int) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, ",")
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// Encoding writes the steps that produced enc.
func Encoding(w io.Writer, enc *hamming.Encoding) {
	m := enc.Data.Len()
	fmt.Fprintf(w, "Data bits:      %v (m = %v)\n", enc.Data, m)
	fmt.Fprintf(w, "Parity bits:    r = %v, the smallest r with 2^r >= m + r + 1\n", enc.R)
	fmt.Fprintf(w, "Codeword size:  %v + %v = %v\n", m, enc.R, enc.Codeword.Len())
	fmt.Fprintf(w, "Placeholders:   %v\n", Parities(enc.Arranged))
	fmt.Fprintln(w, rule)

	table := newTable(w, []string{"Parity", "Covers positions", "Bits", "XOR"})
	for _, step := range enc.Steps {
		table.Append([]string{
			fmt.Sprintf("P%v", step.Position),
			joinInts(step.Covered),
			joinBits(step.Bits, " "),
			step.Parity.String(),
		})
	}
	table.Render()

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Codeword:       %v\n", Parities(enc.Codeword))
}

// Decoding writes the syndrome calculation of dec and its outcome.
func Decoding(w io.Writer, dec *hamming.Decoding) {
	fmt.Fprintf(w, "Received:       %v\n", dec.Received)
	fmt.Fprintln(w, rule)

	table := newTable(w, []string{"Check", "Covers positions", "XOR", "Syndrome"})
	for _, step := range dec.Steps {
		table.Append([]string{
			fmt.Sprintf("P%v", step.Position),
			joinInts(step.Covered),
			joinBits(step.Bits, " ⊕ "),
			fmt.Sprintf("S%v = %v", step.Position, step.Syndrome),
		})
	}
	table.Render()

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Syndrome:       %v (binary) = %v\n", dec.Syndrome, dec.ErrorPosition)

	switch {
	case dec.ErrorPosition == 0:
		fmt.Fprintln(w, good.Sprint("No error detected"))
	case dec.Corrected == nil:
		fmt.Fprintln(w, bad.Sprintf("Uncorrectable: position %v is outside the %v bit word", dec.ErrorPosition, dec.Received.Len()))
	default:
		fmt.Fprintf(w, "%v at position %v from the right (index %v from the left)\n",
			bad.Sprint("Error detected"), dec.ErrorPosition, dec.IndexFromLeft())
		fmt.Fprintf(w, "Received:       %v\n", Highlight(dec.Received, dec.ErrorPosition))
		fmt.Fprintf(w, "Corrected:      %v\n", Highlight(*dec.Corrected, dec.ErrorPosition))
	}
}

// JSON writes v indented.
func JSON(w io.Writer, v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}
