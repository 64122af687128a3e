package csv

import (
	"bytes"
	"testing"

	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/cmd/internal/tools"
)

func stat(codeword, message float64) benchmarking.Stats {
	s := benchmarking.Stats{}
	s.ChannelCodewordError.Update(codeword)
	s.ChannelMessageError.Update(message)
	s.Uncorrectable.Update(0)
	return s
}

func TestWriteCSV(t *testing.T) {
	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{0.1: stat(0.5, 0.25), 0.01: stat(0, 0)}},
		{Stats: map[float64]benchmarking.Stats{0.2: stat(1, 0.75)}},
	}
	names := []string{"h74.json", "dir/h1511.json"}

	tests := []struct {
		message  bool
		expected string
	}{
		{false, "Results File,0.01,0.1,0.2\nh74,0,0.5,\ndir/h1511,,,1\n"},
		{true, "Results File,0.01,0.1,0.2\nh74,0,0.25,\ndir/h1511,,,0.75\n"},
	}
	for _, test := range tests {
		MessageError = test.message

		buf := bytes.Buffer{}
		err := WriteCSV(&buf, names, stats)
		if err != nil {
			t.Fatalf("expected no error but found: %v", err)
		}
		if buf.String() != test.expected {
			t.Fatalf("expected\n%v\nbut found\n%v", test.expected, buf.String())
		}
	}
}
