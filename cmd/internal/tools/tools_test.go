package tools

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/linearblock/hamming"
)

func TestSimulationStats_Validate(t *testing.T) {
	s := &SimulationStats{TypeInfo: "BSC", ECCInfo: "a"}

	if err := s.Validate("BSC", "a"); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	err := s.Validate("BPSK", "b")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "2 errors occurred") {
		t.Fatalf("expected both mismatches reported but found: %v", err)
	}
}

func TestSaveLoadResults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results.json")

	missing, err := LoadResults(file)
	if err != nil || missing != nil {
		t.Fatalf("expected nothing for a missing file but found %v, %v", missing, err)
	}

	stats := benchmarking.Stats{}
	stats.ChannelCodewordError.Update(0.25)
	expected := &SimulationStats{
		TypeInfo: "BSC",
		ECCInfo:  "a",
		Stats:    map[float64]benchmarking.Stats{0.1: stats, 0.05: {}},
	}
	err = SaveResults(file, expected)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	actual, err := LoadOrCreateResults(file, "BSC", "a")
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if !reflect.DeepEqual(actual.Points(), []float64{0.05, 0.1}) {
		t.Fatalf("expected points [0.05 0.1] but found %v", actual.Points())
	}
	if actual.Stats[0.1].ChannelCodewordError.Mean != 0.25 {
		t.Fatalf("expected mean 0.25 but found %v", actual.Stats[0.1].ChannelCodewordError.Mean)
	}

	_, err = LoadOrCreateResults(file, "BPSK", "a")
	if err == nil {
		t.Fatalf("expected a mismatch error")
	}
}

func TestCode(t *testing.T) {
	code, err := NewCode(7)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if code.ParityBits != 4 || code.CodewordLength() != 11 {
		t.Fatalf("expected hamming(11,7) but found (%v,%v)", code.CodewordLength(), code.MessageBits)
	}
	if !strings.HasPrefix(code.Info(), "hamming(11,7):") {
		t.Fatalf("expected the info to name the code but found %v", code.Info())
	}

	message := hamming.MustParse("1011001")
	codeword := code.Encode(message)

	fixed, uncorrectable := code.Repair(codeword, codeword.Flip(3))
	if uncorrectable || !fixed.Equal(codeword) {
		t.Fatalf("expected %v but found %v", codeword, fixed)
	}
	cw, msg := code.Metrics(message, codeword, fixed)
	if cw != 0 || msg != 0 {
		t.Fatalf("expected no errors but found %v, %v", cw, msg)
	}

	received := codeword.Flip(4).Flip(8)
	fixed, uncorrectable = code.Repair(codeword, received)
	if !uncorrectable || !fixed.Equal(received) {
		t.Fatalf("expected the received word back as uncorrectable")
	}
	cw, _ = code.Metrics(message, codeword, fixed)
	if cw != 2.0/11.0 {
		t.Fatalf("expected %v but found %v", 2.0/11.0, cw)
	}

	if _, err := NewCode(0); err == nil {
		t.Fatalf("expected an error for an empty message")
	}
}

func TestRunSimulation(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results.json")
	data := &SimulationStats{Stats: map[float64]benchmarking.Stats{}}

	calls := map[float64][]int{}
	run := func(ctx context.Context, point float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		calls[point] = append(calls[point], trials)
		for previousStats.ChannelCodewordError.Count < trials {
			previousStats.ChannelCodewordError.Update(point)
			checkpoints(previousStats)
		}
		return previousStats
	}

	RunSimulation(context.Background(), data, []float64{0.1, 0.2}, 25, 1, file, run)

	for _, p := range []float64{0.1, 0.2} {
		if !reflect.DeepEqual(calls[p], []int{10, 20, 25}) {
			t.Fatalf("p=%v: expected rounds [10 20 25] but found %v", p, calls[p])
		}
		if data.Stats[p].ChannelCodewordError.Count != 25 {
			t.Fatalf("p=%v: expected 25 trials but found %v", p, data.Stats[p].ChannelCodewordError.Count)
		}
	}

	saved, err := LoadResults(file)
	if err != nil || saved == nil {
		t.Fatalf("expected checkpointed results but found %v, %v", saved, err)
	}
}

func TestRunSimulation_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := &SimulationStats{Stats: map[float64]benchmarking.Stats{}}
	run := func(ctx context.Context, point float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		t.Fatalf("expected no trials after cancellation")
		return previousStats
	}
	RunSimulation(ctx, data, []float64{0.1}, 100, 1, filepath.Join(t.TempDir(), "results.json"), run)
}
