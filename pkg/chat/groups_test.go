package chat

import (
	"errors"
	"fmt"
	"testing"

	"chatkv/pkg/keys"
)

func TestCreateGroupConflict(t *testing.T) {
	svc := newTestService(t)

	if err := svc.CreateGroup("g1", []string{"a", "b"}); err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if err := svc.CreateGroup("g1", []string{"c"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestCreateGroupMembersUnvalidated(t *testing.T) {
	svc := newTestService(t)
	// members need not exist as users
	if err := svc.CreateGroup("g1", []string{"no-such-user"}); err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
}

func TestDeleteGroupCascades(t *testing.T) {
	svc := newTestService(t)
	uid := mustRegister(t, svc, "alice", "alice@example.com", "pw")

	if err := svc.CreateGroup("g1", []string{uid}); err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	for i := 0; i < 7; i++ {
		mustSendGroup(t, svc, uid, "g1", fmt.Sprintf("m%d", i))
	}

	if err := svc.DeleteGroup("g1"); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if msgs, _ := svc.ListGroupMessages("g1"); len(msgs) != 0 {
		t.Fatalf("messages survived group deletion: %v", msgs)
	}
	if _, ok, _ := svc.Store.Get(keys.Group("g1")); ok {
		t.Fatalf("group record survived deletion")
	}
	// the name is free again
	if err := svc.CreateGroup("g1", nil); err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
}

func TestDeleteGroupNotFound(t *testing.T) {
	svc := newTestService(t)
	if err := svc.DeleteGroup("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
