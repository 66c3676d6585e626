package progress

// ErrorRecord captures one processing failure tied to a repository and,
// optionally, a branch within it.
type ErrorRecord struct {
	Repository string
	Branch     string
	Message    string
}
