package actions

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lingohub/admind/internal/models"
)

// CreateNotification drafts a notification in the local store
func (a *Actions) CreateNotification(title, content, audience, userID string) string {
	id := uuid.NewString()
	a.store.UpdateNotifications(func(notifications []models.Notification) []models.Notification {
		return append(notifications, models.Notification{
			ID:        id,
			Title:     title,
			Content:   content,
			Audience:  audience,
			UserID:    userID,
			CreatedAt: a.now(),
		})
	})
	a.invalidate("notifications")
	return id
}

// MarkNotificationRead stamps a notification's read_at
func (a *Actions) MarkNotificationRead(id string) {
	now := a.now()
	a.store.UpdateNotifications(func(notifications []models.Notification) []models.Notification {
		for i := range notifications {
			if notifications[i].ID == id && notifications[i].ReadAt == nil {
				notifications[i].ReadAt = &now
				break
			}
		}
		return notifications
	})
	a.invalidate("notifications")
}

// PublishNotifications marks the given notifications push-sent. For
// each published notification that is not system-originated and whose
// audience is all or admin, exactly one system receipt is synthesized
// for the admin audience. Receipts are appended after the mutated
// originals in a single combined commit. User-audience and system
// notifications never get receipts, which keeps fan-out finite.
func (a *Actions) PublishNotifications(ids []string) int {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	published := 0
	a.store.UpdateNotifications(func(notifications []models.Notification) []models.Notification {
		var receipts []models.Notification
		for i := range notifications {
			if !idSet[notifications[i].ID] {
				continue
			}
			notifications[i].IsPushSent = true
			published++

			n := notifications[i]
			if n.FromSystem {
				continue
			}
			if n.Audience != models.AudienceAll && n.Audience != models.AudienceAdmin {
				continue
			}
			receipts = append(receipts, models.Notification{
				ID:         uuid.NewString(),
				Title:      fmt.Sprintf("Notification sent: %s", n.Title),
				Content:    n.Content,
				Audience:   models.AudienceAdmin,
				FromSystem: true,
				IsPushSent: true,
				CreatedAt:  a.now(),
			})
		}
		return append(notifications, receipts...)
	})

	if published > 0 {
		a.invalidate("notifications")
		a.audit(models.ActionPublishNotification,
			fmt.Sprintf("Published %d notifications", published))
	}
	return published
}
