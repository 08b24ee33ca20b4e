package errors

import "fmt"

type Kind string

const (
	// Configuration-time kinds abort the run before any file is touched.
	InvalidConfig      Kind = "invalid_config"
	InvalidSource      Kind = "invalid_source"
	NoExtensions       Kind = "no_extensions"
	InvalidDestination Kind = "invalid_destination"
	DestinationCreate  Kind = "destination_create"

	// Per-file kinds are recorded as failed outcomes and never abort.
	DirCreate Kind = "dir_create"
	Copy      Kind = "copy_failed"

	Internal Kind = "internal"
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

// KindOf returns the Kind carried by err, or "" for foreign errors.
func KindOf(err error) Kind {
	appErr, ok := err.(*AppError)
	if !ok {
		return ""
	}
	return appErr.Kind
}

func UserMessage(err error) string {
	appErr, ok := err.(*AppError)
	if !ok {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case InvalidSource:
		return fmt.Sprintf("Invalid source directory: %s", appErr.Path)
	case NoExtensions:
		return "No file extensions provided."
	case InvalidDestination:
		return fmt.Sprintf("Invalid destination directory: %s (%v)", appErr.Path, appErr.Err)
	case DestinationCreate:
		return fmt.Sprintf("Could not create destination directory: %s", appErr.Path)
	case DirCreate:
		return fmt.Sprintf("Could not create directory: %s", appErr.Path)
	case Copy:
		return fmt.Sprintf("Copy failed: %s (%v)", appErr.Path, appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
