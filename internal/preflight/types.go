package preflight

// Status classifies a check result.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the release can proceed but something is off.
	StatusWarn
	// StatusFail means the release must not proceed.
	StatusFail
)

// Result is the outcome of a single preflight check.
type Result struct {
	Name   string // short check name, e.g. "branch"
	Status Status
	Detail string // human-readable explanation
}

// Failed reports whether any check failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
