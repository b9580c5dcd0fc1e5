package friend

import (
	"notification-client/internal/model"
	"notification-client/pkg/locale"
)

// TopicFriendRequestProcessed is the broadcast topic name.
const TopicFriendRequestProcessed = "friendRequestProcessed"

// Action is the answer given to a friend request.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

func (a Action) Valid() bool {
	return a == ActionAccept || a == ActionReject
}

// FriendRequestProcessed is broadcast after a request was answered.
type FriendRequestProcessed struct {
	RequestID int64  `json:"requestId"`
	Action    Action `json:"action"`
}

// Labels are the processed-action markers written to the alert.
type Labels struct {
	Accepted model.ProcessedAction
	Rejected model.ProcessedAction
}

var localizedLabels = map[string]Labels{
	locale.EN: {Accepted: "accepted", Rejected: "rejected"},
	locale.VI: {Accepted: "đã chấp nhận", Rejected: "đã từ chối"},
	locale.JA: {Accepted: "承認済み", Rejected: "拒否済み"},
}

// DefaultLabels returns the English labels.
func DefaultLabels() Labels {
	return localizedLabels[locale.DefaultLang]
}

// LocalizedLabels returns the labels for lang, English when unsupported.
func LocalizedLabels(lang string) Labels {
	if l, ok := localizedLabels[locale.ParseLang(lang)]; ok {
		return l
	}
	return DefaultLabels()
}

// For returns the label recorded for action.
func (l Labels) For(a Action) model.ProcessedAction {
	if a == ActionAccept {
		return l.Accepted
	}
	return l.Rejected
}
