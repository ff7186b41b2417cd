package actions

import (
	"github.com/google/uuid"

	"github.com/lingohub/admind/internal/models"
)

// ToggleLike flips the like row for a (post, user) pair: if the pair
// exists its row is removed by index, otherwise a fresh row is
// inserted. Pure local state, cannot fail.
func (a *Actions) ToggleLike(postID, userID string) {
	a.store.UpdatePostLikes(func(likes []models.PostLike) []models.PostLike {
		for i := range likes {
			if likes[i].PostID == postID && likes[i].UserID == userID {
				return append(likes[:i:i], likes[i+1:]...)
			}
		}
		return append(likes, models.PostLike{
			ID:        uuid.NewString(),
			PostID:    postID,
			UserID:    userID,
			CreatedAt: a.now(),
		})
	})
}

// ToggleView flips the view row for a (post, user) pair, same
// semantics as ToggleLike.
func (a *Actions) ToggleView(postID, userID string) {
	a.store.UpdatePostViews(func(views []models.PostView) []models.PostView {
		for i := range views {
			if views[i].PostID == postID && views[i].UserID == userID {
				return append(views[:i:i], views[i+1:]...)
			}
		}
		return append(views, models.PostView{
			ID:        uuid.NewString(),
			PostID:    postID,
			UserID:    userID,
			CreatedAt: a.now(),
		})
	})
}

// UpdateUser applies a partial update to a user in the store. Users
// are created by the platform itself; the dashboard only flags or
// adjusts them, never deletes.
func (a *Actions) UpdateUser(id string, fn func(models.User) models.User) {
	a.store.UpdateUsers(func(users []models.User) []models.User {
		for i := range users {
			if users[i].ID == id {
				users[i] = fn(users[i])
				break
			}
		}
		return users
	})
}

// SoftDeleteComment marks a comment deleted without removing the row
func (a *Actions) SoftDeleteComment(id string) {
	now := a.now()
	a.store.UpdateComments(func(comments []models.Comment) []models.Comment {
		for i := range comments {
			if comments[i].ID == id && comments[i].DeletedAt == nil {
				comments[i].DeletedAt = &now
				break
			}
		}
		return comments
	})
}

// RestoreComment clears a comment's soft-delete marker
func (a *Actions) RestoreComment(id string) {
	a.store.UpdateComments(func(comments []models.Comment) []models.Comment {
		for i := range comments {
			if comments[i].ID == id {
				comments[i].DeletedAt = nil
				break
			}
		}
		return comments
	})
}
