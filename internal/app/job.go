package app

import "rawbatch/internal/domain"

// Job is one unit of work: an input file, where it goes, and how. A job is
// executed exactly once by a single worker and then dropped.
type Job struct {
	Input   string
	Output  string
	Skip    bool
	Policy  domain.Policy
	Encoder domain.EncoderConfig

	// ResolveErr is set when no output path could be computed. The job still
	// runs so that the failure is counted once, like any other.
	ResolveErr error
}

func (j Job) Name() string {
	return j.Input
}
