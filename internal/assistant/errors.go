package assistant

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the assistant surfaces.
// Every external-boundary fault is converted into exactly one of these and
// reported to the user; none crash the session.
type Kind int

const (
	KindLoadFailed Kind = iota + 1
	KindNoDataset
	KindGenerationFailed
	KindExecutionFailed
	KindTranscriptionFailed
	KindAudioUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindLoadFailed:
		return "LOAD_FAILED"
	case KindNoDataset:
		return "NO_DATASET"
	case KindGenerationFailed:
		return "GENERATION_FAILED"
	case KindExecutionFailed:
		return "EXECUTION_FAILED"
	case KindTranscriptionFailed:
		return "TRANSCRIPTION_FAILED"
	case KindAudioUnavailable:
		return "AUDIO_UNAVAILABLE"
	}
	return "UNKNOWN"
}

// Error pairs a failure kind with its underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(k Kind, err error) *Error { return &Error{Kind: k, Err: err} }

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
