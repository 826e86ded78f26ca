package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"rawbatch/internal/domain"
	appErrors "rawbatch/internal/errors"
)

// DefaultRenameLimit bounds the unused-path search.
const DefaultRenameLimit = 10000

var (
	ErrPathNotUnderBase = errors.New("path is not under the input base")
	ErrNoUnusedPath     = errors.New("no unused path found")
)

// Resolution is the outcome of resolving one input. Skip means the output
// already exists and the existing-file policy is Ignore.
type Resolution struct {
	Path string
	Skip bool
}

// Resolver computes collision-free output paths. Paths it hands out are
// remembered and treated as taken for the rest of the run, so two inputs that
// map to the same name never share an output. A Resolver is not safe for
// concurrent use; planning runs it on one goroutine.
//
// Files created by other processes between planning and execution can still
// collide with a resolved path. That race is accepted.
type Resolver struct {
	FS         FileSystem
	Classifier domain.Classifier
	Limit      int

	claimed map[string]struct{}
}

func (r *Resolver) Resolve(input, inputBase, outputBase, targetExt string, onRaw domain.Action, onExisting domain.ExistingAction) (Resolution, error) {
	rebased, err := rebase(input, inputBase, outputBase)
	if err != nil {
		return Resolution{}, appErrors.Wrap(appErrors.PathNotUnderBase, "resolve", input, err)
	}

	if onRaw == domain.ActionParse && r.Classifier.Classify(input) == domain.KindRaw {
		rebased = strings.TrimSuffix(rebased, filepath.Ext(rebased)) + targetExt
	}

	taken, err := r.taken(rebased)
	if err != nil {
		return Resolution{}, appErrors.Wrap(appErrors.MetadataFailure, "resolve", rebased, err)
	}
	if !taken {
		r.claim(rebased)
		return Resolution{Path: rebased}, nil
	}

	if onExisting == domain.ExistingIgnore {
		return Resolution{Path: rebased, Skip: true}, nil
	}

	unused, err := r.unusedPath(rebased)
	if err != nil {
		return Resolution{}, err
	}
	r.claim(unused)
	return Resolution{Path: unused}, nil
}

// unusedPath probes stem_1.ext, stem_2.ext, ... and returns the first free one.
func (r *Resolver) unusedPath(path string) (string, error) {
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultRenameLimit
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 1; i <= limit; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		taken, err := r.taken(candidate)
		if err != nil {
			return "", appErrors.Wrap(appErrors.MetadataFailure, "resolve", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", appErrors.Wrap(appErrors.NoUnusedPath, "resolve", path, fmt.Errorf("%w after %d attempts", ErrNoUnusedPath, limit))
}

func (r *Resolver) taken(path string) (bool, error) {
	if _, ok := r.claimed[path]; ok {
		return true, nil
	}
	return r.FS.Exists(path)
}

func (r *Resolver) claim(path string) {
	if r.claimed == nil {
		r.claimed = make(map[string]struct{})
	}
	r.claimed[path] = struct{}{}
}

func rebase(input, inputBase, outputBase string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(inputBase), filepath.Clean(input))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathNotUnderBase, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathNotUnderBase
	}
	return filepath.Join(outputBase, rel), nil
}
