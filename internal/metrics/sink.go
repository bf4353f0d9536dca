// Package metrics provides the observability sink training losses are
// reported to.
package metrics

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Sink receives scalar metric values once per training step.
type Sink interface {
	Record(step int, values map[string]float64)
}

// LogSink writes metrics to a standard logger, one line per step with
// keys in sorted order.
type LogSink struct {
	logger *log.Logger
	runID  string
}

// NewLogSink creates a sink writing to the given logger, tagging every
// line with the run ID. A nil logger uses the default logger.
func NewLogSink(logger *log.Logger, runID string) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{
		logger: logger,
		runID:  runID,
	}
}

// Record logs one line: run=<id> step=<n> key=value ...
func (s *LogSink) Record(step int, values map[string]float64) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "run=%s step=%d", s.runID, step)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%.6e", k, values[k])
	}
	s.logger.Print(b.String())
}

// Recorded is one sink invocation, kept for inspection.
type Recorded struct {
	Step   int
	Values map[string]float64
}

// MemorySink stores every recorded step in memory. Used in tests.
type MemorySink struct {
	mu      sync.Mutex
	records []Recorded
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Record stores a copy of the values.
func (s *MemorySink) Record(step int, values map[string]float64) {
	copied := make(map[string]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Recorded{Step: step, Values: copied})
}

// Records returns everything recorded so far.
func (s *MemorySink) Records() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.records))
	copy(out, s.records)
	return out
}
