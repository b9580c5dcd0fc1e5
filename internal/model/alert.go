package model

import (
	"encoding/json"
	"fmt"
)

// ProcessedAction marks an actionable alert (a friend request) as resolved.
// The empty value means the alert has not been processed yet.
type ProcessedAction string

const ProcessedNone ProcessedAction = ""

// Alert is a single notification record owned by the server.
// Only ID, IsRead and ProcessedAction are interpreted by the client; the rest of
// the object (message text, timestamps, subject references) is kept verbatim in
// Payload and passed through.
type Alert struct {
	ID              int64
	IsRead          bool
	ProcessedAction ProcessedAction
	Payload         json.RawMessage
}

type alertFields struct {
	ID              *int64          `json:"id"`
	IsRead          bool            `json:"isRead"`
	ProcessedAction ProcessedAction `json:"processedAction"`
}

// UnmarshalJSON decodes an alert object and keeps the raw bytes as payload.
func (a *Alert) UnmarshalJSON(data []byte) error {
	var f alertFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.ID == nil {
		return fmt.Errorf("alert: missing id")
	}
	a.ID = *f.ID
	a.IsRead = f.IsRead
	a.ProcessedAction = f.ProcessedAction
	a.Payload = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON renders the client-side view of the alert.
func (a Alert) MarshalJSON() ([]byte, error) {
	payload := a.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return json.Marshal(struct {
		ID              int64           `json:"id"`
		IsRead          bool            `json:"isRead"`
		ProcessedAction ProcessedAction `json:"processedAction,omitempty"`
		Payload         json.RawMessage `json:"payload"`
	}{a.ID, a.IsRead, a.ProcessedAction, payload})
}

// Field decodes a single top-level payload field into v.
// It returns false when the field is absent or does not decode.
func (a Alert) Field(name string, v any) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(a.Payload, &m); err != nil {
		return false
	}
	raw, ok := m[name]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Processed reports whether a terminal action has been recorded.
func (a Alert) Processed() bool {
	return a.ProcessedAction != ProcessedNone
}
