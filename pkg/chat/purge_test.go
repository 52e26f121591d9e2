package chat

import (
	"errors"
	"testing"
)

func TestPurgeAccountsLeavesMessages(t *testing.T) {
	svc := newTestService(t)
	aliceID := mustRegister(t, svc, "alice", "alice@example.com", "pw")
	bobID := mustRegister(t, svc, "bob", "bob@example.com", "pw")
	mustSendDirect(t, svc, aliceID, "bob", "hi")
	mustSendGroup(t, svc, aliceID, "g1", "hello group")

	if err := svc.Purge(ScopeAccounts); err != nil {
		t.Fatalf("Purge accounts: %v", err)
	}
	if _, err := svc.Authenticate("alice", "", "pw"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("account survived purge: %v", err)
	}
	if msgs, _ := svc.ListDirectMessages(aliceID, bobID); len(msgs) != 1 {
		t.Fatalf("direct messages touched by accounts purge")
	}
	if msgs, _ := svc.ListGroupMessages("g1"); len(msgs) != 1 {
		t.Fatalf("group messages touched by accounts purge")
	}
}

func TestPurgeMessagesLeavesAccounts(t *testing.T) {
	svc := newTestService(t)
	aliceID := mustRegister(t, svc, "alice", "alice@example.com", "pw")
	bobID := mustRegister(t, svc, "bob", "bob@example.com", "pw")
	mustSendDirect(t, svc, aliceID, "bob", "hi")
	mustSendGroup(t, svc, aliceID, "g1", "hello group")

	if err := svc.Purge(ScopeMessages); err != nil {
		t.Fatalf("Purge messages: %v", err)
	}
	if msgs, _ := svc.ListDirectMessages(aliceID, bobID); len(msgs) != 0 {
		t.Fatalf("direct messages survived purge")
	}
	if msgs, _ := svc.ListGroupMessages("g1"); len(msgs) != 0 {
		t.Fatalf("group messages survived purge")
	}
	if _, err := svc.Authenticate("alice", "", "pw"); err != nil {
		t.Fatalf("account lost in messages purge: %v", err)
	}
}

func TestPurgeUnknownScope(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Purge("everything"); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("got %v, want ErrBadRequest", err)
	}
}
