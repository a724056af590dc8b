package logging

// LogEntry represents a structured log record with fields relevant to
// pattern execution over an LLM.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Pattern-specific fields
	PatternName string  // The pattern emitting the entry, if any
	Cost        float64 // Accumulated cost in dollars at emit time

	// General structured data
	Fields map[string]interface{}
}
