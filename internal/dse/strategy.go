package dse

// Strategy constants for the curve reduction. They pick how the q-grid
// loop is decomposed, never what it computes.
const (
	Sequential  = "sequential"
	ParallelQ   = "parallel-q"
	ParallelRow = "parallel-row"
)

// ValidStrategies contains all valid strategy values
var ValidStrategies = []string{Sequential, ParallelQ, ParallelRow}

// IsValidStrategy checks if the given strategy is in the list of valid strategies
func IsValidStrategy(strategy string) bool {
	for _, validStrategy := range ValidStrategies {
		if strategy == validStrategy {
			return true
		}
	}
	return false
}

// ValidStrategiesString returns a comma-separated string of valid strategies for error messages
func ValidStrategiesString() string {
	return "sequential, parallel-q, parallel-row"
}
