package chat

import (
	"fmt"
	"testing"
	"time"

	"chatkv/pkg/store"
)

// newTestService returns a Service over a fresh store with a deterministic
// clock (one millisecond per call) and sequential ids.
func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	svc := New(st)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ticks int
	svc.Now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Millisecond)
	}
	var ids int
	svc.NewID = func() string {
		ids++
		return fmt.Sprintf("id-%03d", ids)
	}
	return svc
}

func mustRegister(t *testing.T, svc *Service, username, email, password string) string {
	t.Helper()
	u, err := svc.RegisterUser(username, email, password)
	if err != nil {
		t.Fatalf("RegisterUser(%s): %v", username, err)
	}
	return u.UserID
}

func mustSendDirect(t *testing.T, svc *Service, from, toUsername, text string) {
	t.Helper()
	if err := svc.SendMessage(SendRequest{UserID: from, RecipientUsername: toUsername, Message: text}); err != nil {
		t.Fatalf("SendMessage(%s->%s): %v", from, toUsername, err)
	}
}

func mustSendGroup(t *testing.T, svc *Service, from, group, text string) {
	t.Helper()
	if err := svc.SendMessage(SendRequest{UserID: from, GroupName: group, Message: text}); err != nil {
		t.Fatalf("SendMessage(%s->group %s): %v", from, group, err)
	}
}
