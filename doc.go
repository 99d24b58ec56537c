// Package rats provides a small generational genetic algorithm that breeds a
// colony of rats toward a target mean body weight.
//
// Each rat is a single integer weight in grams. Every generation the colony
// is sorted and split into two pools, the heaviest of each pool are kept as
// parents, litters are bred between random pairs, and a few children are
// mutated by a random factor. The run stops when the mean weight reaches the
// target or a generation cap is hit.
//
// The experiment follows the rat breeding chapter of Lee Vaughan's
// "Impractical Python Projects".
//
// Basic usage:
//
//	// Load configuration
//	config, err := rats.LoadConfig("path/to/rats-config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Run the experiment to completion
//	result, err := rats.Run(config)
//	if err != nil {
//		log.Fatalf("Error running experiment: %v", err)
//	}
//
//	fmt.Printf("%d generations (%.1f years), final fitness %.4f\n",
//		result.GenerationCount(), result.Years, result.FinalFitness)
package rats
