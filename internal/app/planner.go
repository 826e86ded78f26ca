package app

import (
	"context"
	"errors"
	"path/filepath"

	"rawbatch/internal/domain"
	appErrors "rawbatch/internal/errors"
	"rawbatch/internal/logging"
)

// Plan is the ordered job list for one run.
type Plan struct {
	InputBase  string
	OutputBase string
	Jobs       []Job
	RawCount   int
	ImageCount int
	OtherCount int
}

type Planner struct {
	FS         FileSystem
	Walker     DirectoryWalker
	Resolver   *Resolver
	Classifier domain.Classifier
	Policy     domain.Policy
	Encoder    domain.EncoderConfig
	Logger     logging.Logger
}

// Plan lists input (a file or a directory tree) and builds one job per entry.
// Only a failure to stat input itself is returned; per-entry resolution
// failures are carried on the job so they are counted when it runs.
func (p *Planner) Plan(ctx context.Context, input, output string) (Plan, error) {
	if p.FS == nil || p.Walker == nil || p.Resolver == nil {
		return Plan{}, errors.New("planner requires FS, Walker and Resolver")
	}

	stop := p.Logger.Measure("Planning jobs")
	defer stop()

	absInput, err := filepath.Abs(input)
	if err != nil {
		return Plan{}, appErrors.Wrap(appErrors.NotFound, "abs", input, err)
	}

	info, err := p.FS.Stat(absInput)
	if err != nil {
		return Plan{}, appErrors.Wrap(appErrors.NotFound, "stat", input, err)
	}

	plan := Plan{InputBase: absInput, OutputBase: output}
	var paths []string
	if info.IsDir() {
		paths, err = p.Walker.ListRecursively(absInput)
		if err != nil {
			return Plan{}, appErrors.Wrap(appErrors.IOFailure, "walk", input, err)
		}
	} else {
		plan.InputBase = filepath.Dir(absInput)
		paths = []string{absInput}
	}
	p.Logger.Verbosef("Found %d entries in %s", len(paths), input)

	targetExt := p.Encoder.Extension()
	plan.Jobs = make([]Job, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return Plan{}, err
		}

		switch p.Classifier.Classify(path) {
		case domain.KindRaw:
			plan.RawCount++
		case domain.KindImage:
			plan.ImageCount++
		default:
			plan.OtherCount++
		}

		job := Job{Input: path, Policy: p.Policy, Encoder: p.Encoder}
		res, err := p.Resolver.Resolve(path, plan.InputBase, plan.OutputBase, targetExt, p.Policy.OnRaw, p.Policy.OnExisting)
		if err != nil {
			job.ResolveErr = err
		} else {
			job.Output = res.Path
			job.Skip = res.Skip
		}
		plan.Jobs = append(plan.Jobs, job)
	}

	p.Logger.Verbosef("Planned %d jobs (%d raw, %d image, %d other)", len(plan.Jobs), plan.RawCount, plan.ImageCount, plan.OtherCount)
	return plan, nil
}
