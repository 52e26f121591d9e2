package chat

import (
	"encoding/json"
	"fmt"

	"chatkv/pkg/keys"
	"chatkv/pkg/logger"
	"chatkv/pkg/models"
)

// SendRequest describes one append. GroupName set targets a group log;
// otherwise RecipientUsername is resolved through the username index and
// the message lands in the sender's directed log for that recipient.
type SendRequest struct {
	UserID            string
	RecipientUsername string
	GroupName         string
	Message           string
}

// SendMessage appends a message to its log, evicting the single oldest
// entry first when the log is at the retention ceiling. Count, evict and
// append are independent operations: two concurrent appends to a full log
// can both evict the same entry and both append, leaving the log one off
// the ceiling until the next append. Accepted.
func (s *Service) SendMessage(req SendRequest) error {
	ts := s.timestamp()
	var key string
	var value any

	if req.GroupName != "" {
		key = keys.GroupMessage(req.GroupName, ts)
		value = models.GroupMessage{From: req.UserID, Message: req.Message, Timestamp: ts}
	} else {
		rec, ok, err := s.getUser(keys.UserByName(req.RecipientUsername))
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		key = keys.DirectMessage(req.UserID, rec.UserID, ts)
		value = models.DirectMessage{From: req.UserID, To: rec.UserID, Message: req.Message, Timestamp: ts}
	}

	prefix := key[:len(key)-len(ts)]
	existing, err := s.Store.ScanKeys(prefix)
	if err != nil {
		return err
	}
	if len(existing) >= RetentionCeiling {
		if err := s.Store.Delete(existing[0]); err != nil {
			return err
		}
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := s.Store.Set(key, b); err != nil {
		return err
	}
	logger.Debug("message_saved", "key", key)
	return nil
}

// ListDirectMessages returns one direction of a conversation, ascending by
// timestamp: the messages userID sent to recipientID, nothing else.
func (s *Service) ListDirectMessages(userID, recipientID string) ([]models.DirectMessage, error) {
	entries, err := s.Store.ScanPrefix(keys.DirectPrefix(userID, recipientID))
	if err != nil {
		return nil, err
	}
	out := make([]models.DirectMessage, 0, len(entries))
	for _, e := range entries {
		var m models.DirectMessage
		if err := json.Unmarshal(e.Value, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// ListGroupMessages returns a group's log ascending by timestamp.
func (s *Service) ListGroupMessages(groupName string) ([]models.GroupMessage, error) {
	entries, err := s.Store.ScanPrefix(keys.GroupMessagesPrefix(groupName))
	if err != nil {
		return nil, err
	}
	out := make([]models.GroupMessage, 0, len(entries))
	for _, e := range entries {
		var m models.GroupMessage
		if err := json.Unmarshal(e.Value, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// ListConversationPeers scans everything userID has sent and keeps, per
// recipient, the entry with the greatest timestamp (strictly greater
// replaces, so an equal timestamp keeps the earlier-scanned entry).
// Recipients appear in the order they were first encountered. Peers who
// only ever sent to userID never show up: the scan is over sent messages
// only, deliberately.
func (s *Service) ListConversationPeers(userID string) ([]models.PeerSummary, error) {
	entries, err := s.Store.ScanPrefix(keys.SentPrefix(userID))
	if err != nil {
		return nil, err
	}

	latest := make(map[string]models.DirectMessage)
	var order []string
	for _, e := range entries {
		var m models.DirectMessage
		if err := json.Unmarshal(e.Value, &m); err != nil {
			continue
		}
		cur, seen := latest[m.To]
		if !seen {
			order = append(order, m.To)
		}
		if !seen || m.Timestamp > cur.Timestamp {
			latest[m.To] = m
		}
	}

	out := make([]models.PeerSummary, 0, len(order))
	for _, rid := range order {
		m := latest[rid]
		uid := rid
		if u, ok, err := s.getUser(keys.UserByID(rid)); err != nil {
			return nil, err
		} else if ok {
			uid = u.Username
		}
		out = append(out, models.PeerSummary{UID: uid, LastMessage: m.Message, Timestamp: m.Timestamp})
	}
	return out, nil
}
