package funcz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/metricz"
)

// BenchmarkReport summarizes the recorded calls of one function.
type BenchmarkReport struct {
	Calls     int
	Total     time.Duration
	Average   time.Duration
	Deviation time.Duration
}

// BenchmarkSession collects call durations for named functions. Wrap
// functions with BenchmarkFunc, run the program, then read Report.
//
// Each call also increments the counter "benchmark.calls.<name>" in the
// session's metrics registry.
type BenchmarkSession struct {
	clock   clockz.Clock
	metrics *metricz.Registry
	times   map[Name][]time.Duration
	mu      sync.Mutex
}

// NewBenchmarkSession creates an empty session on the real clock.
func NewBenchmarkSession() *BenchmarkSession {
	return &BenchmarkSession{
		clock:   clockz.RealClock,
		metrics: metricz.New(),
		times:   make(map[Name][]time.Duration),
	}
}

// WithClock sets the clock used to time calls.
func (s *BenchmarkSession) WithClock(clock clockz.Clock) *BenchmarkSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
	return s
}

// Metrics returns the call counters.
func (s *BenchmarkSession) Metrics() *metricz.Registry {
	return s.metrics
}

// CallsKey returns the metrics key counting calls of name.
func CallsKey(name Name) metricz.Key {
	return metricz.Key("benchmark.calls." + name)
}

func (s *BenchmarkSession) now() (clockz.Clock, time.Time) {
	s.mu.Lock()
	clock := s.clock
	s.mu.Unlock()
	return clock, clock.Now()
}

// Record stores one measured call of name.
func (s *BenchmarkSession) Record(name Name, d time.Duration) {
	s.mu.Lock()
	s.times[name] = append(s.times[name], d)
	s.mu.Unlock()
	s.metrics.Counter(CallsKey(name)).Inc()
}

// BenchmarkFunc returns f instrumented to record each call under name.
func BenchmarkFunc[A, R any](s *BenchmarkSession, name Name, f func(A) R) func(A) R {
	return func(a A) R {
		clock, start := s.now()
		r := f(a)
		s.Record(name, clock.Since(start))
		return r
	}
}

// BenchmarkExpr runs f once, recording the call under name, and returns its
// result.
func BenchmarkExpr[R any](s *BenchmarkSession, name Name, f func() R) R {
	clock, start := s.now()
	r := f()
	s.Record(name, clock.Since(start))
	return r
}

// RunNTimes calls f n times.
func RunNTimes(n int, f func()) {
	for i := 0; i < n; i++ {
		f()
	}
}

// Reports summarizes every recorded function.
func (s *BenchmarkSession) Reports() map[Name]BenchmarkReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Name]BenchmarkReport, len(s.times))
	for name, times := range s.times {
		out[name] = makeReport(times)
	}
	return out
}

func makeReport(times []time.Duration) BenchmarkReport {
	var total time.Duration
	for _, t := range times {
		total += t
	}
	if len(times) == 0 {
		return BenchmarkReport{}
	}
	mean := float64(total) / float64(len(times))
	var sq float64
	for _, t := range times {
		d := float64(t) - mean
		sq += d * d
	}
	return BenchmarkReport{
		Calls:     len(times),
		Total:     total,
		Average:   time.Duration(mean),
		Deviation: time.Duration(math.Sqrt(sq / float64(len(times)))),
	}
}

// Report renders all reports as a table ordered by total time, slowest
// first.
func (s *BenchmarkSession) Report() string {
	reports := s.Reports()
	names := make([]Name, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := reports[names[i]], reports[names[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return names[i] < names[j]
	})

	rows := [][]string{{"Function", "Nb calls", "Total time", "Av. time", "Deviation"}}
	for _, name := range names {
		r := reports[name]
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", r.Calls),
			fmt.Sprintf("%.3fms", float64(r.Total)/float64(time.Millisecond)),
			fmt.Sprintf("%.3fns", float64(r.Average)),
			fmt.Sprintf("%.3fns", float64(r.Deviation)),
		})
	}
	return renderTable(rows)
}

// renderTable pads every column to its widest cell. Cells that start with a
// digit are right-aligned. A separator follows the header row.
func renderTable(rows [][]string) string {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], len(cell))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		for c, cell := range row {
			pad := strings.Repeat(" ", widths[c]-len(cell))
			if cell != "" && unicode.IsDigit(rune(cell[0])) {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		if r == 0 {
			for _, w := range widths {
				b.WriteString(strings.Repeat("-", w))
				b.WriteByte('+')
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
