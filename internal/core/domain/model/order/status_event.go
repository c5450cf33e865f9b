package order

import (
	"fmt"
	"time"

	"laundry/internal/pkg/errs"
)

// MaxNoteLength is the longest note a status event can carry.
// Matches the width of the note column in storage so an oversized note is
// rejected during validation rather than by the database.
const MaxNoteLength = 512

// StatusEvent is an immutable record of one accepted status transition.
// Events are appended to the order's status history exactly once per
// transition and are never mutated or removed; together they form the
// order's audit trail.
type StatusEvent struct {
	status    Status
	note      string
	timestamp time.Time
}

// NewStatusEvent creates a status history entry.
// If note is empty, a default note of the form "Status updated to <status>"
// is synthesized; the note is cosmetic and never affects transition decisions.
// Notes longer than MaxNoteLength are rejected.
func NewStatusEvent(status Status, note string, timestamp time.Time) (StatusEvent, error) {
	if err := status.Validate(); err != nil {
		return StatusEvent{}, err
	}
	if timestamp.IsZero() {
		return StatusEvent{}, errs.NewValueIsRequiredError("timestamp")
	}
	if len(note) > MaxNoteLength {
		return StatusEvent{}, errs.NewValueIsOutOfRangeError("note", len(note), 0, MaxNoteLength)
	}

	if note == "" {
		note = fmt.Sprintf("Status updated to %s", status)
	}

	return StatusEvent{
		status:    status,
		note:      note,
		timestamp: timestamp,
	}, nil
}

// Status returns the status recorded by this event.
func (e StatusEvent) Status() Status {
	return e.status
}

// Note returns the human-readable note attached to the transition.
func (e StatusEvent) Note() string {
	return e.note
}

// Timestamp returns when the transition was applied.
func (e StatusEvent) Timestamp() time.Time {
	return e.timestamp
}
