package chat

import (
	"encoding/json"
	"fmt"

	"chatkv/pkg/keys"
	"chatkv/pkg/logger"
	"chatkv/pkg/models"
)

// putUserIndexes writes the denormalized user record under all three index
// keys. Callers never write a subset: the id/username/email entries exist
// together or not at all (modulo a crash mid-sequence).
func (s *Service) putUserIndexes(u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	for _, k := range []string{
		keys.UserByID(u.UserID),
		keys.UserByName(u.Username),
		keys.UserByEmail(u.Email),
	} {
		if err := s.Store.Set(k, b); err != nil {
			return err
		}
	}
	return nil
}

// deleteUserIndexes removes all three index entries of a user.
func (s *Service) deleteUserIndexes(u models.User) error {
	for _, k := range []string{
		keys.UserByID(u.UserID),
		keys.UserByName(u.Username),
		keys.UserByEmail(u.Email),
	} {
		if err := s.Store.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) getUser(key string) (*models.User, bool, error) {
	v, ok, err := s.Store.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, false, fmt.Errorf("decode user at %s: %w", key, err)
	}
	return &u, true, nil
}

// RegisterUser creates an account unless the username or email is already
// indexed. The existence check and the three index writes are independent
// operations: two concurrent signups for the same name can both pass the
// check and the later writes win. Accepted.
func (s *Service) RegisterUser(username, email, password string) (*models.User, error) {
	_, byName, err := s.Store.Get(keys.UserByName(username))
	if err != nil {
		return nil, err
	}
	_, byEmail, err := s.Store.Get(keys.UserByEmail(email))
	if err != nil {
		return nil, err
	}
	if byName || byEmail {
		return nil, ErrConflict
	}

	u := models.User{
		UserID:   s.NewID(),
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.putUserIndexes(u); err != nil {
		return nil, err
	}
	logger.Info("user_registered", "user_id", u.UserID, "username", u.Username)
	return &u, nil
}

// Authenticate resolves a user by username when given, otherwise by email,
// and compares the stored password byte-exact. Any mismatch or miss is
// ErrUnauthorized; the caller cannot distinguish a wrong password from an
// unknown account.
func (s *Service) Authenticate(username, email, password string) (*models.User, error) {
	var key string
	switch {
	case username != "":
		key = keys.UserByName(username)
	case email != "":
		key = keys.UserByEmail(email)
	default:
		return nil, ErrUnauthorized
	}
	u, ok, err := s.getUser(key)
	if err != nil {
		return nil, err
	}
	if !ok || u.Password != password {
		return nil, ErrUnauthorized
	}
	return u, nil
}

// RemoveUser re-authenticates, then deletes every message the user
// authored and finally the three index entries. There is no authored-by
// index: the whole messages namespace is scanned and filtered on the
// stored "from" field, O(total messages). Messages the user merely
// received stay put, they belong to the peer's log.
func (s *Service) RemoveUser(username, email, password string) error {
	u, err := s.Authenticate(username, email, password)
	if err != nil {
		return err
	}

	entries, err := s.Store.ScanPrefix(keys.MessagesPrefix())
	if err != nil {
		return err
	}
	removed := 0
	for _, e := range entries {
		var m struct {
			From string `json:"from"`
		}
		if err := json.Unmarshal(e.Value, &m); err != nil {
			continue
		}
		if m.From != u.UserID {
			continue
		}
		if err := s.Store.Delete(e.Key); err != nil {
			return err
		}
		removed++
	}

	if err := s.deleteUserIndexes(*u); err != nil {
		return err
	}
	logger.Info("user_removed", "user_id", u.UserID, "messages_removed", removed)
	return nil
}
