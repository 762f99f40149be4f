// Package audit records the collaborator actions taken against instructions.
// Events are fire-and-forget: the action has already happened by the time an
// event is emitted, so delivery problems are logged, never surfaced.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action identifies what was done.
type Action string

const (
	ActionVerificationApproved   Action = "verification_approved"
	ActionVerificationOverridden Action = "verification_overridden"
	ActionDocumentsRequested     Action = "documents_requested"
)

// Event is one audit record.
type Event struct {
	ID             string            `json:"id"`
	Timestamp      time.Time         `json:"timestamp"`
	Action         Action            `json:"action"`
	Actor          string            `json:"actor"`
	InstructionRef string            `json:"instruction_ref"`
	Detail         map[string]string `json:"detail,omitempty"`
}

// NewEvent stamps a fresh event for the given action.
func NewEvent(action Action, actor, instructionRef string, detail map[string]string) Event {
	return Event{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Action:         action,
		Actor:          actor,
		InstructionRef: instructionRef,
		Detail:         detail,
	}
}
