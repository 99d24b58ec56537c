package rats

import "time"

// Outcome says why a run stopped.
type Outcome int

const (
	// OutcomeConverged means fitness reached 1.0.
	OutcomeConverged Outcome = iota + 1
	// OutcomeCapped means the generation cap was hit first.
	OutcomeCapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverged:
		return "converged"
	case OutcomeCapped:
		return "capped"
	default:
		return "unknown"
	}
}

// GenerationRecord is the snapshot taken after one generation.
type GenerationRecord struct {
	Generation int
	MeanWeight int // population mean truncated toward zero
	Fitness    float64
}

// RunResult is the full history of a run. MeanWeights, Fitness and
// Generations are parallel: index i describes generation i.
type RunResult struct {
	RunID string

	MeanWeights []int
	Fitness     []float64
	Generations []int

	Duration time.Duration
	Years    float64 // generations divided by litters per year

	Population   Population // terminal population
	FinalFitness float64
	Outcome      Outcome

	InitialFitness    float64
	InitialMeanWeight float64
}

func newRunResult(runID string) *RunResult {
	return &RunResult{
		RunID:       runID,
		MeanWeights: []int{},
		Fitness:     []float64{},
		Generations: []int{},
	}
}

func (r *RunResult) add(rec GenerationRecord) {
	r.MeanWeights = append(r.MeanWeights, rec.MeanWeight)
	r.Fitness = append(r.Fitness, rec.Fitness)
	r.Generations = append(r.Generations, rec.Generation)
}

// GenerationCount returns how many generations were bred.
func (r *RunResult) GenerationCount() int {
	return len(r.Generations)
}

// Converged reports whether the run reached the target mean.
func (r *RunResult) Converged() bool {
	return r.Outcome == OutcomeConverged
}

// FinalMeanWeight returns the mean weight of the terminal population.
func (r *RunResult) FinalMeanWeight() float64 {
	return r.Population.Mean()
}

// Records zips the parallel sequences back into per-generation records.
func (r *RunResult) Records() []GenerationRecord {
	records := make([]GenerationRecord, len(r.Generations))
	for i := range records {
		records[i] = GenerationRecord{
			Generation: r.Generations[i],
			MeanWeight: r.MeanWeights[i],
			Fitness:    r.Fitness[i],
		}
	}
	return records
}
