package rats

// Reporter receives progress notifications from a running Engine. Calls are
// made synchronously on the goroutine executing Run, so implementations that
// are read from elsewhere must do their own locking.
type Reporter interface {
	// Start is called once the initial population has been evaluated.
	Start(runID string, initial Population, fitness float64)
	// Generation is called after each bred generation is evaluated.
	Generation(record GenerationRecord)
	// End is called with the finished result. It is not called when the run fails.
	End(result *RunResult)
}
