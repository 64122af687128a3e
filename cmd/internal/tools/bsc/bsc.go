package bsc

import (
	"context"
	"fmt"

	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/cmd/internal/tools"
	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const typeInfo = "BSC:hamming/syndrome"

var (
	MessageBits      uint
	Trials           uint
	ErrorProbability []float64
	Threads          uint
)

// RunBSC sends random messages through a binary symmetric channel, where
// every codeword bit flips independently with crossoverProbability.
func RunBSC(ctx context.Context,
	code *tools.Code,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) hamming.BitString {
		return benchmarking.RandomMessage(code.MessageBits)
	}

	channel := func(originalCodeword hamming.BitString) (erroredCodeword hamming.BitString) {
		return benchmarking.RandomFlipBits(originalCodeword, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, code.Encode, channel, code.Repair, code.Metrics, checkpoints, previousStats, showProgress)
}

var BscRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}
	for _, p := range ErrorProbability {
		if p < 0 || p > 0.5 {
			fmt.Printf("crossover probability must be in [0, 0.5] but found %v\n", p)
			return
		}
	}

	code, err := tools.NewCode(int(MessageBits))
	if err != nil {
		fmt.Println(err)
		return
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadOrCreateResults(args[0], typeInfo, code.Info())
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Debugf("Simulating hamming(%v,%v) over a BSC", code.CodewordLength(), code.MessageBits)

	ctx := tools.SignalContext()
	run := func(ctx context.Context, p float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, code, p, trials, threads, previousStats, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, ErrorProbability, int(Trials), int(Threads), args[0], run)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}
