package ops

import (
	"encoding/json"

	"github.com/grabapp/grabd/internal/clipboard"
	"github.com/grabapp/grabd/internal/history"
)

// EventOutput contains the result of the CheckClipboardEvent operation.
// Event is the producer-defined payload passed through verbatim; it is nil
// when no event was pending.
type EventOutput struct {
	Pending bool            `json:"pending"`
	Event   json.RawMessage `json:"event,omitempty"`
}

// CheckClipboardEvent consumes the pending clipboard event, if any.
// Delivery is at-most-once per poll: the backing file is deleted on read.
func CheckClipboardEvent(env *Env) (*EventOutput, error) {
	payload, pending, err := clipboard.PollEvent(env.BaseDir)
	if err != nil {
		return nil, err
	}
	if !pending {
		return &EventOutput{Pending: false}, nil
	}

	recordActivity(env, history.KindClipboardEvent, clipboard.EventFileName, string(payload))

	return &EventOutput{Pending: true, Event: payload}, nil
}
