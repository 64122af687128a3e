package chart

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/nathanhack/hamming/benchmarking"
	"github.com/nathanhack/hamming/cmd/internal/tools"
)

func TestXAxisAndValues(t *testing.T) {
	nums, strs := xAxisAndValues(map[float64]bool{0.5: true, 0.01: true, 0.1: true})
	if !reflect.DeepEqual(nums, []float64{0.01, 0.1, 0.5}) {
		t.Fatalf("expected sorted values but found %v", nums)
	}
	if !reflect.DeepEqual(strs, []string{"0.01", "0.1", "0.5"}) {
		t.Fatalf("expected sorted names but found %v", strs)
	}
}

func TestRender(t *testing.T) {
	s := benchmarking.Stats{}
	s.ChannelCodewordError.Update(0.125)
	stats := []*tools.SimulationStats{{Stats: map[float64]benchmarking.Stats{0.1: s}}}

	buf := bytes.Buffer{}
	err := Render(&buf, []string{"h74.json"}, stats)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if !strings.Contains(buf.String(), "h74.json") {
		t.Fatalf("expected the series name in the chart")
	}
}
