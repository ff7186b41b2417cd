// Package enrich joins raw store collections into the denormalized
// view models the dashboard renders. All functions are pure: they
// never mutate their inputs and never fail on dangling references —
// a missing relation degrades to a placeholder or an absent field.
package enrich

import (
	"sort"

	"github.com/lingohub/admind/internal/models"
)

// Post is a community post joined with its author, badge and
// engagement counts
type Post struct {
	models.Post
	User         models.User       `json:"user"`
	Badge        models.BadgeLevel `json:"badge"`
	LikeCount    int               `json:"like_count"`
	ViewCount    int               `json:"view_count"`
	CommentCount int               `json:"comment_count"`
}

// Posts joins raw posts with users, engagement rows and badge levels.
// Pinned posts sort first, then created_at descending; ordering between
// equal timestamps follows input order and is not guaranteed. The
// badges slice must be sorted ascending by min_points so the
// lowest-badge fallback is meaningful.
func Posts(posts []models.Post, users []models.User, comments []models.Comment, likes []models.PostLike, views []models.PostView, badges []models.BadgeLevel) []Post {
	userMap := make(map[string]*models.User, len(users))
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	likeCounts := make(map[string]int, len(likes))
	for _, l := range likes {
		likeCounts[l.PostID]++
	}

	viewCounts := make(map[string]int, len(views))
	for _, v := range views {
		viewCounts[v.PostID]++
	}

	// Only non-deleted comments count
	commentCounts := make(map[string]int, len(comments))
	for _, c := range comments {
		if c.DeletedAt == nil {
			commentCounts[c.PostID]++
		}
	}

	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		author := models.UnknownUser()
		if u, ok := userMap[p.UserID]; ok {
			author = *u
		}

		result = append(result, Post{
			Post:         p,
			User:         author,
			Badge:        ResolveBadge(author, badges),
			LikeCount:    likeCounts[p.ID],
			ViewCount:    viewCounts[p.ID],
			CommentCount: commentCounts[p.ID],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsPinned != result[j].IsPinned {
			return result[i].IsPinned
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

// ResolveBadge finds the badge matching the user's badge level,
// falling back to the lowest-ordered badge when no level matches.
// Returns the zero badge when the ladder is empty.
func ResolveBadge(user models.User, badges []models.BadgeLevel) models.BadgeLevel {
	for _, b := range badges {
		if b.Level == user.BadgeLevel {
			return b
		}
	}
	if len(badges) > 0 {
		return badges[0]
	}
	return models.BadgeLevel{}
}
