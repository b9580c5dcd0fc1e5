package httpserver

import (
	"notification-client/internal/alert"
	"notification-client/internal/model"
)

type feedResp struct {
	Alerts      []model.Alert `json:"alerts"`
	HasMore     bool          `json:"hasMore"`
	Page        int           `json:"page"`
	UnreadIDs   []int64       `json:"unreadIds"`
	UnreadCount int           `json:"unreadCount"`
}

func newFeedResp(s alert.Snapshot, unread []int64) feedResp {
	alerts := s.Alerts
	if alerts == nil {
		alerts = []model.Alert{}
	}
	if unread == nil {
		unread = []int64{}
	}
	return feedResp{
		Alerts:      alerts,
		HasMore:     s.HasMore,
		Page:        s.Page,
		UnreadIDs:   unread,
		UnreadCount: len(unread),
	}
}

type visibilityReq struct {
	Visible *bool `json:"visible" binding:"required"`
}

type readReq struct {
	AlertIDs []int64 `json:"alertIds"`
}

type friendRequestReq struct {
	AlertID int64 `json:"alertId" binding:"required"`
}

type friendRequestResp struct {
	RequestID       int64                 `json:"requestId"`
	Action          string                `json:"action"`
	ProcessedAction model.ProcessedAction `json:"processedAction,omitempty"`
}
