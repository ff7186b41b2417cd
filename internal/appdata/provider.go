// Package appdata assembles the read-mostly context the dashboard
// consumes: enriched collections derived from the store plus the
// user-scoped views. Mutations go through the action catalog, which
// the provider also carries.
package appdata

import (
	"sort"

	"github.com/lingohub/admind/internal/actions"
	"github.com/lingohub/admind/internal/enrich"
	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

// Provider exposes enriched read views over the store and the action
// catalog for mutations
type Provider struct {
	store   *store.Store
	Actions *actions.Actions
}

// New creates a provider over a store and its action catalog
func New(st *store.Store, acts *actions.Actions) *Provider {
	return &Provider{store: st, Actions: acts}
}

// Posts returns all posts enriched with authors, badges and counts
func (p *Provider) Posts() []enrich.Post {
	s := p.store.Snapshot()
	return enrich.Posts(s.Posts, s.Users, s.Comments, s.PostLikes, s.PostViews, s.BadgeLevels)
}

// Violations returns all violations enriched with users, targets and rules
func (p *Provider) Violations() []enrich.Violation {
	s := p.store.Snapshot()
	return enrich.Violations(s.Violations, s.Users, s.Posts, s.Comments, s.ViolationRules, s.CommunityRules)
}

// Appeals returns all appeals with their live or frozen violation views
func (p *Provider) Appeals() []enrich.Appeal {
	s := p.store.Snapshot()
	return enrich.Appeals(s.Appeals, s.Users, s.Violations, s.Posts, s.Comments, s.ViolationRules, s.CommunityRules)
}

// Snapshot returns the raw store state for screens that render
// unenriched collections (exams, plans, payments, audit log).
func (p *Provider) Snapshot() store.State {
	return p.store.Snapshot()
}

// LikedPostsByUser returns the enriched posts the user has liked
func (p *Provider) LikedPostsByUser(userID string) []enrich.Post {
	s := p.store.Snapshot()
	liked := make(map[string]bool)
	for _, l := range s.PostLikes {
		if l.UserID == userID {
			liked[l.PostID] = true
		}
	}
	return p.filterPosts(s, liked)
}

// CommentedPostsByUser returns the enriched posts the user has
// commented on (deleted comments included: the post was still engaged)
func (p *Provider) CommentedPostsByUser(userID string) []enrich.Post {
	s := p.store.Snapshot()
	commented := make(map[string]bool)
	for _, c := range s.Comments {
		if c.UserID == userID {
			commented[c.PostID] = true
		}
	}
	return p.filterPosts(s, commented)
}

// ViewedPostsByUser returns the enriched posts the user has viewed
func (p *Provider) ViewedPostsByUser(userID string) []enrich.Post {
	s := p.store.Snapshot()
	viewed := make(map[string]bool)
	for _, v := range s.PostViews {
		if v.UserID == userID {
			viewed[v.PostID] = true
		}
	}
	return p.filterPosts(s, viewed)
}

// RemovedCommentsByUser returns the user's soft-deleted comments,
// most recently removed first
func (p *Provider) RemovedCommentsByUser(userID string) []models.Comment {
	s := p.store.Snapshot()
	removed := make([]models.Comment, 0)
	for _, c := range s.Comments {
		if c.UserID == userID && c.DeletedAt != nil {
			removed = append(removed, c)
		}
	}
	sort.SliceStable(removed, func(i, j int) bool {
		return removed[i].DeletedAt.After(*removed[j].DeletedAt)
	})
	return removed
}

func (p *Provider) filterPosts(s store.State, include map[string]bool) []enrich.Post {
	if len(include) == 0 {
		return []enrich.Post{}
	}
	subset := make([]models.Post, 0, len(include))
	for _, post := range s.Posts {
		if include[post.ID] {
			subset = append(subset, post)
		}
	}
	return enrich.Posts(subset, s.Users, s.Comments, s.PostLikes, s.PostViews, s.BadgeLevels)
}
