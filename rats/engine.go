package rats

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the phase of the run controller.
type State int

const (
	// StateInit covers creating and scoring the founding population.
	StateInit State = iota
	// StateEvolving is the generation loop.
	StateEvolving
	// StateDone means the run converged or hit the cap.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateEvolving:
		return "evolving"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Engine runs the select, breed and mutate loop until the population
// reaches the target mean or the generation cap.
type Engine struct {
	Config *Config

	rng       *rand.Rand
	log       logrus.FieldLogger
	reporters []Reporter
	state     State
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes the engine draw from rng instead of a generator seeded
// from Config.Run.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithReporter registers a progress reporter. May be given more than once.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporters = append(e.reporters, r)
	}
}

// NewEngine validates config and creates an engine for it.
func NewEngine(config *Config, opts ...Option) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil: %w", ErrInvalidConfiguration)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		Config: config,
		log:    logrus.StandardLogger(),
		state:  StateInit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newRand(config.Run.Seed)
	}
	return e, nil
}

// Run is shorthand for NewEngine followed by Engine.Run.
func Run(config *Config, opts ...Option) (*RunResult, error) {
	e, err := NewEngine(config, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// State returns the phase the engine is in. After a failed run it stays
// in the phase where the failure happened.
func (e *Engine) State() State {
	return e.state
}

// Run executes one complete experiment and blocks until it ends. Any
// operator error aborts the run and no result is returned. Config is
// validated again since it may have been changed after NewEngine.
func (e *Engine) Run() (*RunResult, error) {
	startTime := time.Now()
	cfg := e.Config
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil: %w", ErrInvalidConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	result := newRunResult(uuid.NewString())
	log := e.log.WithField("run_id", result.RunID)

	// 1. Create and evaluate the founding population
	e.state = StateInit
	parents, err := Populate(e.rng, cfg.Population.Size,
		cfg.Population.MinWeight, cfg.Population.MaxWeight, cfg.Population.ModeWeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial population: %w", err)
	}
	fitness, err := Fitness(parents, cfg.Run.TargetMean)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate initial population: %w", err)
	}
	result.InitialFitness = fitness
	result.InitialMeanWeight = parents.Mean()

	retain := cfg.RetainCount()
	log.WithFields(logrus.Fields{
		"size":    len(parents),
		"mean":    result.InitialMeanWeight,
		"fitness": fitness,
		"retain":  retain,
	}).Info("Initial population created")
	for _, r := range e.reporters {
		r.Start(result.RunID, parents.Clone(), fitness)
	}

	e.state = StateEvolving
	generation := 0
	for fitness < 1 && generation < cfg.Run.GenerationCap {
		// 2. Select the heaviest of each sex as parents
		males, females, err := Select(parents, retain)
		if err != nil {
			return nil, fmt.Errorf("selection failed in generation %d: %w", generation, err)
		}
		// 3. Breed litters and mutate the children
		children, err := Breed(e.rng, males, females, cfg.Breeding.LitterSize)
		if err != nil {
			return nil, fmt.Errorf("breeding failed in generation %d: %w", generation, err)
		}
		children, err = Mutate(e.rng, children, cfg.Mutation.Odds, cfg.Mutation.Min, cfg.Mutation.Max)
		if err != nil {
			return nil, fmt.Errorf("mutation failed in generation %d: %w", generation, err)
		}

		// 4. Parents survive alongside their children
		next := make(Population, 0, len(males)+len(females)+len(children))
		next = append(next, males...)
		next = append(next, females...)
		parents = append(next, children...)

		// 5. Evaluate fitness and record the generation
		fitness, err = Fitness(parents, cfg.Run.TargetMean)
		if err != nil {
			return nil, fmt.Errorf("fitness evaluation failed in generation %d: %w", generation, err)
		}

		rec := GenerationRecord{
			Generation: generation,
			MeanWeight: int(parents.Mean()),
			Fitness:    fitness,
		}
		result.add(rec)
		log.WithFields(logrus.Fields{
			"generation": generation,
			"mean":       rec.MeanWeight,
			"fitness":    fitness,
		}).Debug("Generation bred")
		for _, r := range e.reporters {
			r.Generation(rec)
		}
		generation++
	}
	// 6. Summarize the run
	e.state = StateDone

	result.Outcome = OutcomeCapped
	if fitness >= 1 {
		result.Outcome = OutcomeConverged
	}
	result.Population = parents
	result.FinalFitness = fitness
	result.Years = float64(generation) / float64(cfg.Breeding.LittersPerYear)
	result.Duration = time.Since(startTime)

	log.WithFields(logrus.Fields{
		"generations": generation,
		"years":       result.Years,
		"fitness":     fitness,
		"outcome":     result.Outcome,
		"duration":    result.Duration,
	}).Info("Run finished")
	for _, r := range e.reporters {
		r.End(result)
	}
	return result, nil
}
