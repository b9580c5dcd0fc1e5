package alert

import "notification-client/internal/model"

// PageSize is the size of every alerts page requested from the server.
const PageSize = 10

// ListOptions selects one page of alerts.
type ListOptions struct {
	Page int
	Size int
}

// Snapshot is a point-in-time copy of the store state.
type Snapshot struct {
	Alerts  []model.Alert `json:"alerts"`
	HasMore bool          `json:"hasMore"`
	Page    int           `json:"page"`
}

// Observer receives the store state after a mutation.
type Observer func(Snapshot)

// UnreadIDs returns the ids of unread alerts in feed order.
func (s Snapshot) UnreadIDs() []int64 {
	ids := make([]int64, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		if !a.IsRead {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// IDs returns every id in feed order.
func (s Snapshot) IDs() []int64 {
	ids := make([]int64, len(s.Alerts))
	for i, a := range s.Alerts {
		ids[i] = a.ID
	}
	return ids
}

// Find returns the alert with the given id.
func (s Snapshot) Find(id int64) (model.Alert, bool) {
	for _, a := range s.Alerts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Alert{}, false
}
