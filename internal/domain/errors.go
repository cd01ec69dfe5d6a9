package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a referenced document does not exist in the search
// index. Projectors treat it as a reference-lookup miss and degrade to an
// empty embedded object instead of failing the projection.
var ErrNotFound = errors.New("document not found")

// MalformedEventError indicates an event payload could not be normalized into
// the entity shape expected for its event type. Unrecoverable for that event:
// redelivery carries the same payload, so the reconciler discards it.
type MalformedEventError struct {
	EventType EventType
	Reason    string
	Err       error
}

func (e *MalformedEventError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s event: %s: %v", e.EventType, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s event: %s", e.EventType, e.Reason)
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}

// NewMalformedEventError creates a MalformedEventError for the given event type.
func NewMalformedEventError(eventType EventType, reason string, err error) *MalformedEventError {
	return &MalformedEventError{EventType: eventType, Reason: reason, Err: err}
}

// IsMalformedEvent reports whether err is a MalformedEventError.
func IsMalformedEvent(err error) bool {
	var target *MalformedEventError
	return errors.As(err, &target)
}
