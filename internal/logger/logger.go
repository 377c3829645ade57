// Package logger provides structured JSON logging and run metrics for pokedata.
//
// Log lines are single JSON objects carrying a timestamp, level, message,
// optional structured fields and an optional error string. They are written
// to stderr by default so that stdout stays free for the run summary.
//
// Metrics tracks counters (fetch failures, skipped rows, missing stats) and
// timings (per-request latency) for the current run. A Snapshot of the
// tracker is embedded in the JSON summary printed at the end of a command.
//
// Example usage:
//
//	log := logger.New(logger.LevelInfo, os.Stderr)
//	log.Warn("Pokemon fetch failed", logger.Fields{
//	    "id":    132,
//	    "group": "Generación 1",
//	})
//
//	metrics.IncrCounter(logger.CounterFetchFailed)
//	metrics.RecordTiming(logger.TimingFetch, elapsed)
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel converts a user supplied level name (case-insensitive) to a Level.
func ParseLevel(name string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(name)))
	if level == "" {
		return LevelInfo, nil
	}
	if level == "WARNING" {
		return LevelWarn, nil
	}
	if _, ok := levelRank[level]; !ok {
		return LevelInfo, fmt.Errorf("unknown log level: %s", name)
	}
	return level, nil
}

// Logger writes structured log entries at or above a minimum level.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
	now      func() time.Time
}

// Fields represents structured log fields
type Fields map[string]interface{}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger that discards messages below level.
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
		now:      time.Now,
	}
}

// Discard returns a logger that writes nothing. Used where a component needs
// a logger but the caller did not supply one.
func Discard() *Logger {
	return New(LevelError, io.Discard)
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger used by Error.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: l.now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}

	fmt.Fprintln(l.output, string(data))
}

func (l *Logger) shouldLog(level Level) bool {
	return levelRank[level] >= levelRank[l.minLevel]
}

// Debug logs per-request detail, such as each ID fetched.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs run progress.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a skipped item or a tolerated data gap.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs a failure that ends the run.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Error logs with the default logger. The CLI uses it to report the error
// that ends a command, after the command has installed its own logger.
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Counter and timing names recorded during a run.
const (
	CounterFetched         = "pokedex.fetched"
	CounterFetchFailed     = "pokedex.fetch_failed"
	CounterShapeFailed     = "pokedex.shape_failed"
	CounterStatsMissing    = "pokedex.stats_missing"
	CounterStandingRows    = "standings.rows"
	CounterStandingSkipped = "standings.skipped"

	TimingFetch     = "pokeapi.fetch"
	TimingStandings = "standings.fetch"
)

// Metrics tracks counters and timings. All operations are safe for
// concurrent use.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// TimingStats summarises the durations recorded under one name.
type TimingStats struct {
	Count   int    `json:"count"`
	Total   string `json:"total"`
	Average string `json:"average"`
	Min     string `json:"min"`
	Max     string `json:"max"`
}

// Snapshot is a point-in-time copy of a Metrics tracker.
type Snapshot struct {
	Counters map[string]int64       `json:"counters"`
	Timings  map[string]TimingStats `json:"timings"`
}

// CounterNames returns the snapshot's counter names in sorted order.
func (s Snapshot) CounterNames() []string {
	names := make([]string, 0, len(s.Counters))
	for name := range s.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TimingNames returns the snapshot's timing names in sorted order.
func (s Snapshot) TimingNames() []string {
	names := make([]string, 0, len(s.Timings))
	for name := range s.Timings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewMetrics creates an empty tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1.
func (m *Metrics) IncrCounter(name string) {
	m.AddCounter(name, 1)
}

// AddCounter adds delta to a counter, creating it if needed.
func (m *Metrics) AddCounter(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

// Counter returns the current value of a counter, 0 if never incremented.
func (m *Metrics) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// RecordTiming records one duration measurement under name.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], duration)
}

// Snapshot returns a deep copy of the tracker with timing statistics computed.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Counters: make(map[string]int64, len(m.counters)),
		Timings:  make(map[string]TimingStats, len(m.timings)),
	}
	for k, v := range m.counters {
		snap.Counters[k] = v
	}

	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}

		var total time.Duration
		min := durations[0]
		max := durations[0]
		for _, d := range durations {
			total += d
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}

		snap.Timings[name] = TimingStats{
			Count:   len(durations),
			Total:   total.String(),
			Average: (total / time.Duration(len(durations))).String(),
			Min:     min.String(),
			Max:     max.String(),
		}
	}

	return snap
}
