// Package tui renders a breeding run in the terminal: a fitness chart, a
// mean weight chart and the run statistics, redrawn on a fixed interval
// while the engine works on another goroutine.
package tui

import (
	"sync"
	"time"

	"github.com/baldhumanity/rats-go/rats"
)

// Snapshot is a consistent copy of the model, safe to read without locking.
type Snapshot struct {
	RunID string

	Generations []int
	Fitness     []float64
	MeanWeights []float64

	InitialFitness    float64
	InitialMeanWeight float64
	Elapsed           time.Duration

	Running bool
	Result  *rats.RunResult
	Err     error
}

// Model collects progress from an engine. It implements rats.Reporter and
// may be read from another goroutine through Snapshot.
type Model struct {
	mu      sync.Mutex
	snap    Snapshot
	started time.Time
}

var _ rats.Reporter = (*Model)(nil)

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Start resets the model for a new run and marks it as running.
func (m *Model) Start(runID string, initial rats.Population, fitness float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.started = time.Now()
	m.snap = Snapshot{
		RunID:             runID,
		InitialFitness:    fitness,
		InitialMeanWeight: initial.Mean(),
		Running:           true,
	}
}

// Generation appends one point to each chart series.
func (m *Model) Generation(record rats.GenerationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap.Generations = append(m.snap.Generations, record.Generation)
	m.snap.Fitness = append(m.snap.Fitness, record.Fitness)
	m.snap.MeanWeights = append(m.snap.MeanWeights, float64(record.MeanWeight))
}

// End stores the final result and stops the elapsed clock.
func (m *Model) End(result *rats.RunResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap.Running = false
	m.snap.Result = result
	m.snap.Elapsed = result.Duration
}

// Fail records an error that stopped the run before it produced a result.
func (m *Model) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap.Running = false
	m.snap.Err = err
}

// Snapshot returns a copy of the current state.
func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.snap
	s.Generations = append([]int(nil), m.snap.Generations...)
	s.Fitness = append([]float64(nil), m.snap.Fitness...)
	s.MeanWeights = append([]float64(nil), m.snap.MeanWeights...)
	if s.Running {
		s.Elapsed = time.Since(m.started)
	}
	return s
}
