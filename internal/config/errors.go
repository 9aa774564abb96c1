package config

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by run-file failures.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind tells a CLI caller which file was at fault and how.
type ErrorKind string

const (
	// KindNotFound: the run file could not be read.
	KindNotFound ErrorKind = "not_found"
	// KindInvalidConfig: the run file decoded but a field is out of range.
	KindInvalidConfig ErrorKind = "invalid_config"
	// KindIO: an artefact could not be created, written or opened.
	KindIO ErrorKind = "io"
	// KindMalformed: an input artefact (a thread file) is readable but not
	// in the expected format.
	KindMalformed ErrorKind = "malformed"
)

// OpError records the operation (e.g. "config.load_run", "batch.write"),
// the kind and the file involved.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// invalidField names the YAML key that failed validation.
func invalidField(path, field, msg string) error {
	return &OpError{
		Op:   "config.validate",
		Kind: KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, msg),
	}
}
