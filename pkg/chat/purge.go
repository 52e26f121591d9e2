package chat

import (
	"chatkv/pkg/keys"
	"chatkv/pkg/logger"
)

// Purge scopes.
const (
	ScopeAccounts = "accounts"
	ScopeMessages = "messages"
)

// Purge deletes every entry of one top-level namespace: all user index
// entries for ScopeAccounts, all direct and group messages for
// ScopeMessages. Irreversible, no confirmation, no backup. Any other
// scope is ErrBadRequest. A failure partway leaves a partial purge; that
// crash-consistency gap is accepted, there is no checkpoint or replay.
func (s *Service) Purge(scope string) error {
	var prefix string
	switch scope {
	case ScopeAccounts:
		prefix = keys.UsersPrefix()
	case ScopeMessages:
		prefix = keys.MessagesPrefix()
	default:
		return ErrBadRequest
	}
	n, err := s.Store.DeletePrefix(prefix)
	if err != nil {
		return err
	}
	logger.Info("purged", "scope", scope, "entries", n)
	return nil
}
