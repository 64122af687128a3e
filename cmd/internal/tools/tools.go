package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/linearblock/hamming"
	"github.com/sirupsen/logrus"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// Validate checks that previously saved results were produced by the same
// channel and code.
func (s *SimulationStats) Validate(typeInfo, eccInfo string) error {
	var result *multierror.Error
	if s.TypeInfo != typeInfo {
		result = multierror.Append(result, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, s.TypeInfo))
	}
	if s.ECCInfo != eccInfo {
		result = multierror.Append(result, fmt.Errorf("results loaded do not match the ECC expected %v but found %v", eccInfo, s.ECCInfo))
	}
	return result.ErrorOrNil()
}

// Points returns the simulated probabilities in increasing order.
func (s *SimulationStats) Points() []float64 {
	points := make([]float64, 0, len(s.Stats))
	for p := range s.Stats {
		points = append(points, p)
	}
	sort.Float64s(points)
	return points
}

// Code bundles what the simulators need to know about the hamming code
// protecting messages of a fixed size.
type Code struct {
	MessageBits int
	ParityBits  int
}

func NewCode(messageBits int) (*Code, error) {
	r, err := hamming.RedundantBits(messageBits)
	if err != nil {
		return nil, err
	}
	return &Code{MessageBits: messageBits, ParityBits: r}, nil
}

func (c *Code) CodewordLength() int {
	return c.MessageBits + c.ParityBits
}

// Info identifies the code by its parity check matrix.
func (c *Code) Info() string {
	block, err := hamming.ParityCheckMatrix(c.CodewordLength(), c.ParityBits)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("hamming(%v,%v):%x", c.CodewordLength(), c.MessageBits, md5.Sum([]byte(block.H.String())))
}

func (c *Code) Encode(message hamming.BitString) hamming.BitString {
	enc, err := hamming.EncodeBits(message)
	if err != nil {
		panic(err)
	}
	return enc.Codeword
}

// Repair decodes the received word. Uncorrectable words are passed through
// as received.
func (c *Code) Repair(originalCodeword, channelInducedCodeword hamming.BitString) (hamming.BitString, bool) {
	dec, err := hamming.DecodeBits(channelInducedCodeword, c.ParityBits)
	if err != nil {
		return channelInducedCodeword, true
	}
	return dec.Codeword(), false
}

func (c *Code) Metrics(originalMessage, originalCodeword, fixedChannelInducedCodeword hamming.BitString) (percentFixedCodewordErrors, percentFixedMessageErrors float64) {
	message, err := hamming.ExtractData(fixedChannelInducedCodeword, c.ParityBits)
	if err != nil {
		panic(err)
	}
	codewordErrors := originalCodeword.HammingDistance(fixedChannelInducedCodeword)
	messageErrors := originalMessage.HammingDistance(message)

	percentFixedCodewordErrors = float64(codewordErrors) / float64(c.CodewordLength())
	percentFixedMessageErrors = float64(messageErrors) / float64(c.MessageBits)
	return
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

// LoadOrCreateResults loads the results at filepath, or starts new ones
// when the file does not exist yet, and checks they match typeInfo and eccInfo.
func LoadOrCreateResults(filepath, typeInfo, eccInfo string) (*SimulationStats, error) {
	data, err := LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if err := data.Validate(typeInfo, eccInfo); err != nil {
		return nil, err
	}
	return data, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() context.Context {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()
	return ctx
}

// PointRunner runs trials (a running total) for a single point and returns
// the updated stats.
type PointRunner func(ctx context.Context, point float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

// RunSimulation works through every point in small rounds so all points make
// progress together, saving the results to outputFilename as it goes.
func RunSimulation(ctx context.Context, data *SimulationStats, points []float64, trials, threads int, outputFilename string, run PointRunner) {
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	trialsPerIter := threads * 10
	bar := pb.StartNew(trials * len(points))
	done := 0
	for target := trialsPerIter; done < trials; target += trialsPerIter {
		if target > trials {
			target = trials
		}

		select {
		case <-ctx.Done():
			logrus.Infof("Simulation stopped after %v of %v trials", done, trials)
			bar.Finish()
			return
		default:
		}

		for _, p := range points {
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						logrus.Errorf("Unable to save checkpoint: %v", err)
					}
				}
				checkpointCount++
			}
			data.Stats[p] = run(ctx, p, target, threads, data.Stats[p], checkpoint)
			bar.Add(target - done)
			logrus.Debugf("p=%v: %v", p, data.Stats[p])
		}
		done = target
	}
	bar.Finish()
}
