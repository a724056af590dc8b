package core

// PatternResult is the uniform envelope every pattern execution produces.
// It is constructed exactly once per Execute call and not mutated after.
//
// Invariants: Cost >= 0 always; a failed result carries an empty Response
// and a non-empty ErrorMessage; Cost reflects every generation completed
// before the failure point.
type PatternResult struct {
	// Response is the final text, empty on failure.
	Response string
	// Cost is the accumulated estimated cost across all generation calls.
	Cost float64
	// PatternName identifies the pattern that produced this result.
	PatternName string
	// Metadata carries pattern-specific trace data. It is advisory and
	// never required for correctness.
	Metadata map[string]interface{}
	// Success is false iff an unrecoverable failure occurred.
	Success bool
	// ErrorMessage describes the failure when Success is false.
	ErrorMessage string
}
