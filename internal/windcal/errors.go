package windcal

import (
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when the station answers with an empty list
var ErrEmptyPayload = errors.New("empty wind payload")

// TransportError covers network failures, timeouts and non-2xx responses
type TransportError struct {
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("wind request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("wind request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError covers malformed JSON, wrong types and missing fields
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode wind payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind names the failure class of err for logging
func Kind(err error) string {
	var transportErr *TransportError
	var decodeErr *DecodeError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyPayload):
		return "empty"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "unknown"
	}
}
