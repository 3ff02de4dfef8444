package store

import "fmt"

// IOError wraps a filesystem failure (directory creation, read, write).
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func errIO(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

// ParseError reports a malformed persisted document. Load never converts
// corrupt data into an empty list; the caller decides what to do.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError reports that the per-user data directory cannot be resolved
// (no override set and no home directory available).
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve data dir: %s: %v", e.Reason, e.Err)
	}
	return "resolve data dir: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }
