package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var Uncorrectable bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*tools.SimulationStats, len(args))
	var err error
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if stats[i] == nil {
			fmt.Printf("results file %v does not exist\n", resultFile)
			return
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = WriteCSV(f, args, stats)
	if err != nil {
		fmt.Println(err)
	}
}

// selected picks the error rate chosen by the flags.
func selected(s benchmarking.Stats) float64 {
	switch {
	case MessageError:
		return s.ChannelMessageError.Mean
	case Uncorrectable:
		return s.Uncorrectable.Mean
	default:
		return s.ChannelCodewordError.Mean
	}
}

// WriteCSV writes one row per results file and one column per simulated point.
func WriteCSV(out io.Writer, names []string, stats []*tools.SimulationStats) error {
	w := csv.NewWriter(out)

	//first write headers
	percentagesFloats := make(map[float64]bool)
	for _, s := range stats {
		for _, p := range s.Points() {
			percentagesFloats[p] = true
		}
	}
	percentagesList := make([]float64, 0, len(percentagesFloats))
	for p := range percentagesFloats {
		percentagesList = append(percentagesList, p)
	}
	sort.Float64s(percentagesList)

	header := []string{"Results File"}
	for _, p := range percentagesList {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(names[i], filepath.Ext(names[i]))

		for j, p := range percentagesList {
			if v, has := s.Stats[p]; has {
				record[j+1] = fmt.Sprintf("%v", selected(v))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
