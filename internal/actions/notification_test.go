package actions

import (
	"strings"
	"testing"

	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

func TestPublishNotificationsFanOut(t *testing.T) {
	a, st := newTestActions(store.State{
		Notifications: []models.Notification{
			{ID: "n-all", Title: "maintenance", Audience: models.AudienceAll},
			{ID: "n-admin", Title: "heads up", Audience: models.AudienceAdmin},
			{ID: "n-user", Title: "personal", Audience: models.AudienceUser, UserID: "u1"},
			{ID: "n-system", Title: "auto", Audience: models.AudienceAll, FromSystem: true},
			{ID: "n-skip", Title: "not selected", Audience: models.AudienceAll},
		},
	}, Services{})

	published := a.PublishNotifications([]string{"n-all", "n-admin", "n-user", "n-system"})
	if published != 4 {
		t.Fatalf("Expected 4 published, got %d", published)
	}

	snap := st.Snapshot()

	// 5 originals + receipts for n-all and n-admin only
	if len(snap.Notifications) != 7 {
		t.Fatalf("Expected 7 notifications after fan-out, got %d", len(snap.Notifications))
	}

	var receipts []models.Notification
	for _, n := range snap.Notifications {
		switch n.ID {
		case "n-all", "n-admin", "n-user", "n-system":
			if !n.IsPushSent {
				t.Errorf("Notification %s should be marked push-sent", n.ID)
			}
		case "n-skip":
			if n.IsPushSent {
				t.Error("Unselected notification must stay unsent")
			}
		default:
			receipts = append(receipts, n)
		}
	}

	if len(receipts) != 2 {
		t.Fatalf("Expected exactly 2 receipts, got %d", len(receipts))
	}
	for _, r := range receipts {
		if !r.FromSystem || !r.IsPushSent {
			t.Errorf("Receipt must be system-originated and push-sent: %+v", r)
		}
		if r.Audience != models.AudienceAdmin {
			t.Errorf("Receipt audience must be admin, got %s", r.Audience)
		}
		if !strings.HasPrefix(r.Title, "Notification sent: ") {
			t.Errorf("Unexpected receipt title: %q", r.Title)
		}
	}
}

func TestPublishNotificationsNoReceiptsForReceipts(t *testing.T) {
	a, st := newTestActions(store.State{
		Notifications: []models.Notification{
			{ID: "n1", Title: "one", Audience: models.AudienceAll},
		},
	}, Services{})

	a.PublishNotifications([]string{"n1"})

	// Publish the synthesized receipt: being system-originated it must
	// not fan out again.
	snap := st.Snapshot()
	var receiptID string
	for _, n := range snap.Notifications {
		if n.ID != "n1" {
			receiptID = n.ID
		}
	}
	if receiptID == "" {
		t.Fatal("Expected a receipt after first publish")
	}

	a.PublishNotifications([]string{receiptID})
	snap = st.Snapshot()
	if len(snap.Notifications) != 2 {
		t.Errorf("Publishing a receipt must not create another, got %d notifications", len(snap.Notifications))
	}
}

func TestCreateAndReadNotification(t *testing.T) {
	a, st := newTestActions(store.State{}, Services{})

	id := a.CreateNotification("welcome", "hello", models.AudienceUser, "u1")

	snap := st.Snapshot()
	if len(snap.Notifications) != 1 || snap.Notifications[0].ID != id {
		t.Fatalf("Expected created notification, got %+v", snap.Notifications)
	}
	if snap.Notifications[0].ReadAt != nil {
		t.Error("Fresh notification must be unread")
	}

	a.MarkNotificationRead(id)
	snap = st.Snapshot()
	if snap.Notifications[0].ReadAt == nil {
		t.Error("Expected read_at to be stamped")
	}
}

func TestPublishNotificationsEmptySelection(t *testing.T) {
	a, st := newTestActions(store.State{
		Notifications: []models.Notification{
			{ID: "n1", Audience: models.AudienceAll},
		},
	}, Services{})

	if got := a.PublishNotifications(nil); got != 0 {
		t.Errorf("Expected 0 published, got %d", got)
	}
	snap := st.Snapshot()
	if len(snap.AuditLog) != 0 {
		t.Error("Empty publish must not log an audit entry")
	}
}
