package models

// DirectMessage is one entry of a directed conversation log, keyed by
// (sender, recipient, timestamp). Timestamp doubles as the ordering key:
// fixed-width ISO-8601, so lexicographic order is chronological order.
type DirectMessage struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// GroupMessage is one entry of a group log, keyed by (group, timestamp).
type GroupMessage struct {
	From      string `json:"from"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// PeerSummary is one row of the last-message-per-peer aggregation. UID is
// the peer's username, or the raw user id when the account no longer
// exists.
type PeerSummary struct {
	UID         string `json:"uid"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
}
