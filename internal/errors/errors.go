package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig    Kind = "invalid_config"
	NotFound         Kind = "not_found"
	PathNotUnderBase Kind = "path_not_under_base"
	NoUnusedPath     Kind = "no_unused_path"
	MetadataFailure  Kind = "metadata_failure"
	MkdirFailure     Kind = "mkdir_failure"
	DecodeFailure    Kind = "decode_failure"
	EncodeFailure    Kind = "encode_failure"
	CopyFailure      Kind = "copy_failure"
	MoveFailure      Kind = "move_failure"
	ExifFailure      Kind = "exif_failure"
	IOFailure        Kind = "io_failure"
	Internal         Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the kind of the outermost AppError in err's chain, or
// Internal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case NotFound:
		return fmt.Sprintf("Path not found: %s", appErr.Path)
	case PathNotUnderBase:
		return fmt.Sprintf("Unable to switch base for %s: %v", appErr.Path, appErr.Err)
	case NoUnusedPath:
		return fmt.Sprintf("Could not find unused path for %s", appErr.Path)
	case MetadataFailure:
		return fmt.Sprintf("Unable to get file attributes for %s: %v", appErr.Path, appErr.Err)
	case MkdirFailure:
		return fmt.Sprintf("Unable to create directory for %s: %v", appErr.Path, appErr.Err)
	case DecodeFailure:
		return fmt.Sprintf("Unable to decode %s: %v", appErr.Path, appErr.Err)
	case EncodeFailure:
		return fmt.Sprintf("Unable to encode %s: %v", appErr.Path, appErr.Err)
	case CopyFailure:
		return fmt.Sprintf("Unable to copy %s: %v", appErr.Path, appErr.Err)
	case MoveFailure:
		return fmt.Sprintf("Unable to move %s: %v", appErr.Path, appErr.Err)
	case ExifFailure:
		return fmt.Sprintf("EXIF read failed: %s", appErr.Path)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s", appErr.Path)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
