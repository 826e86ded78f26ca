package app

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"rawbatch/internal/domain"
	appErrors "rawbatch/internal/errors"
	"rawbatch/internal/logging"
)

// Timer runs fn and reports how long it took. op and path identify the step.
type Timer func(op, path string, fn func() error) (time.Duration, error)

// WallTimer measures fn with the monotonic clock.
func WallTimer(_, _ string, fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

// Executor runs jobs. Its collaborators are shared by all workers and must be
// safe for concurrent use.
type Executor struct {
	FS         FileSystem
	Decoder    RawDecoder
	Encoder    ImageEncoder
	Classifier domain.Classifier
	Logger     logging.Logger
	Timer      Timer
}

// Execute performs the single action job calls for and returns its statistics
// delta. Exactly one action category is incremented. A non-nil error always
// comes with an Errors increment; it describes the failure for reporting and
// is never fatal to the run.
func (e *Executor) Execute(ctx context.Context, job Job) (domain.Statistics, error) {
	var stats domain.Statistics
	fail := func(err error) (domain.Statistics, error) {
		stats.Errors.Inc()
		return stats, err
	}

	if e.FS == nil {
		return fail(errors.New("executor requires FS"))
	}

	info, err := e.FS.Stat(job.Input)
	if err != nil {
		return fail(appErrors.Wrap(appErrors.MetadataFailure, "stat", job.Input, err))
	}
	if !info.Mode().IsRegular() {
		e.Logger.Verbosef("Ignoring %s: not a regular file", job.Input)
		stats.Ignored.Inc()
		return stats, nil
	}

	if job.ResolveErr != nil {
		return fail(job.ResolveErr)
	}

	if parent := filepath.Dir(job.Output); parent != "." {
		if err := e.FS.MkdirAll(parent, 0o755); err != nil {
			return fail(appErrors.Wrap(appErrors.MkdirFailure, "mkdir", parent, err))
		}
	}

	if job.Skip {
		e.Logger.Verbosef("%s already exists and will *not* be overwritten", job.Output)
		stats.Ignored.Inc()
		return stats, nil
	}

	kind := e.Classifier.Classify(job.Input)
	switch action := job.Policy.ActionFor(kind); action {
	case domain.ActionCopy:
		err = e.transfer(job, "copy", appErrors.CopyFailure, e.FS.CopyFile, &stats.Copied, &stats)
	case domain.ActionMove:
		err = e.transfer(job, "move", appErrors.MoveFailure, e.FS.MoveFile, &stats.Moved, &stats)
	case domain.ActionParse:
		err = e.parse(ctx, job, &stats)
	default:
		e.Logger.Verbosef("Ignoring %s (%s)", job.Input, kind)
		stats.Ignored.Inc()
	}
	if err != nil {
		return fail(err)
	}
	return stats, nil
}

// transfer copies or moves job.Input. Identical paths are a no-op counted as
// ignored, without a duration.
func (e *Executor) transfer(job Job, op string, kind appErrors.Kind, fn func(src, dst string) error, item *domain.StatisticsItem, stats *domain.Statistics) error {
	if filepath.Clean(job.Input) == filepath.Clean(job.Output) {
		e.Logger.Verbosef("Skipping %s of %s onto itself", op, job.Input)
		stats.Ignored.Inc()
		return nil
	}

	e.Logger.Verbosef("%s %s to %s", verb(op), job.Input, job.Output)
	elapsed, err := e.timer()(op, job.Input, func() error {
		return fn(job.Input, job.Output)
	})
	if err != nil {
		return appErrors.Wrap(kind, op, job.Input, err)
	}
	item.Record(elapsed)
	e.Logger.Verbosef("%s %s in %s", pastTense(op), job.Input, elapsed.Round(time.Millisecond))
	return nil
}

// parse decodes a raw file and encodes it with the job's encoder. Durations are
// recorded only once both stages succeeded, so a failed job lands in Errors
// alone. A partially written output is left in place.
func (e *Executor) parse(ctx context.Context, job Job, stats *domain.Statistics) error {
	if e.Decoder == nil || e.Encoder == nil {
		return appErrors.Wrap(appErrors.Internal, "parse", job.Input, errors.New("executor requires Decoder and Encoder"))
	}

	e.Logger.Verbosef("Decoding %s", job.Input)
	var buf domain.PixelBuffer
	decodeTime, err := e.timer()("decode", job.Input, func() error {
		var decodeErr error
		buf, decodeErr = e.Decoder.Decode(ctx, job.Input)
		return decodeErr
	})
	if err != nil {
		return appErrors.Wrap(appErrors.DecodeFailure, "decode", job.Input, err)
	}
	e.Logger.Verbosef("Decoded %s in %s", job.Input, decodeTime.Round(time.Millisecond))

	e.Logger.Verbosef("Encoding %s", job.Output)
	encodeTime, err := e.timer()("encode", job.Output, func() error {
		return e.Encoder.Encode(buf, job.Output, job.Encoder)
	})
	if err != nil {
		return appErrors.Wrap(appErrors.EncodeFailure, "encode", job.Output, err)
	}
	e.Logger.Verbosef("Encoded %s in %s", job.Output, encodeTime.Round(time.Millisecond))

	stats.Decoded.Record(decodeTime)
	stats.Encoded.Record(encodeTime)
	return nil
}

func (e *Executor) timer() Timer {
	if e.Timer != nil {
		return e.Timer
	}
	return WallTimer
}

func verb(op string) string {
	if op == "move" {
		return "Moving"
	}
	return "Copying"
}

func pastTense(op string) string {
	if op == "move" {
		return "Moved"
	}
	return "Copied"
}
