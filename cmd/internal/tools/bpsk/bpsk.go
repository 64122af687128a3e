package bpsk

import (
	"context"
	"fmt"

	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/cmd/internal/tools"
	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

const typeInfo = "BPSK:hamming/harddecision"

var (
	MessageBits uint
	Trials      uint
	EbN0        []float64
	Threads     uint
)

// RunBPSK sends random messages as BPSK symbols over an AWGN channel with
// the given E_b/N_0, makes a hard decision on each symbol and decodes.
func RunBPSK(ctx context.Context,
	code *tools.Code,
	eBPerN0 float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) hamming.BitString {
		return benchmarking.RandomMessage(code.MessageBits)
	}

	encode := func(message hamming.BitString) mat2.Vector {
		return benchmarking.BitsToBPSK(code.Encode(message))
	}

	channel := func(codeword mat2.Vector) mat2.Vector {
		return benchmarking.RandomNoiseBPSK(codeword, eBPerN0)
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) (mat2.Vector, bool) {
		//hard decision: >=0 is a 1 and <0 is a 0
		received := benchmarking.BPSKToBits(channelInducedCodeword, 0)
		fixed, uncorrectable := code.Repair(benchmarking.BPSKToBits(originalCodeword, 0), received)
		return benchmarking.BitsToBPSK(fixed), uncorrectable
	}

	metrics := func(message hamming.BitString, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (float64, float64) {
		return code.Metrics(message, benchmarking.BPSKToBits(originalCodeword, 0), benchmarking.BPSKToBits(fixedChannelInducedCodeword, 0))
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, repair, metrics, checkpoints, previousStats, showProgress)
}

var BpskRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}
	for _, e := range EbN0 {
		if e <= 0 {
			fmt.Printf("E_b/N_0 must be >0 but found %v\n", e)
			return
		}
	}

	code, err := tools.NewCode(int(MessageBits))
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := tools.LoadOrCreateResults(args[0], typeInfo, code.Info())
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Debugf("Simulating hamming(%v,%v) over BPSK", code.CodewordLength(), code.MessageBits)

	ctx := tools.SignalContext()
	run := func(ctx context.Context, e float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, code, e, trials, threads, previousStats, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, EbN0, int(Trials), int(Threads), args[0], run)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}
