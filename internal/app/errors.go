package app

import (
	"errors"
	"fmt"
)

// ErrIndexRequired is returned when no index name is configured at connection time
var ErrIndexRequired = errors.New(`expected "index" to be set in options`)

var errNoConnector = errors.New("no search connector configured")

// ConfigurationError reports options that cannot be used to connect
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "invalid indexer configuration: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ConnectionError wraps a failure reported by the remote search client while connecting
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "failed to connect to search index: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TransformError wraps a failure from a custom collect function
type TransformError struct {
	Key string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("failed to collect file %s: %v", e.Key, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// SubmissionError wraps a failure submitting one document
type SubmissionError struct {
	Key string
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to index document %s: %v", e.Key, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
