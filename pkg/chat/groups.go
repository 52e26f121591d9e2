package chat

import (
	"encoding/json"
	"fmt"

	"chatkv/pkg/keys"
	"chatkv/pkg/logger"
	"chatkv/pkg/models"
)

// CreateGroup writes a group record unless one exists under that name.
// Members are stored as given; nothing validates that they are user ids.
func (s *Service) CreateGroup(name string, members []string) error {
	_, exists, err := s.Store.Get(keys.Group(name))
	if err != nil {
		return err
	}
	if exists {
		return ErrConflict
	}
	b, err := json.Marshal(models.Group{GroupName: name, Members: members})
	if err != nil {
		return fmt.Errorf("marshal group: %w", err)
	}
	if err := s.Store.Set(keys.Group(name), b); err != nil {
		return err
	}
	logger.Info("group_created", "group", name, "members", len(members))
	return nil
}

// DeleteGroup removes a group's messages and then the group record. The
// order keeps a crashed delete from leaving messages reachable under a
// still-present group; the two steps are not atomic.
func (s *Service) DeleteGroup(name string) error {
	_, exists, err := s.Store.Get(keys.Group(name))
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	n, err := s.Store.DeletePrefix(keys.GroupMessagesPrefix(name))
	if err != nil {
		return err
	}
	if err := s.Store.Delete(keys.Group(name)); err != nil {
		return err
	}
	logger.Info("group_deleted", "group", name, "messages_removed", n)
	return nil
}
