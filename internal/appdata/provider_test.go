package appdata

import (
	"testing"
	"time"

	"github.com/lingohub/admind/internal/actions"
	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestProvider(state store.State) *Provider {
	st := store.NewWithClock(func() time.Time { return testNow })
	st.Seed(state)
	acts := actions.NewWithClock(st, nil, actions.Services{}, func() time.Time { return testNow })
	return New(st, acts)
}

func TestLikedPostsByUser(t *testing.T) {
	p := newTestProvider(store.State{
		Users: []models.User{{ID: "u1", Name: "Lan"}},
		Posts: []models.Post{
			{ID: "p1", UserID: "u1"},
			{ID: "p2", UserID: "u1"},
		},
		PostLikes: []models.PostLike{
			{ID: "l1", PostID: "p1", UserID: "u1"},
			{ID: "l2", PostID: "p2", UserID: "other"},
		},
	})

	liked := p.LikedPostsByUser("u1")
	if len(liked) != 1 || liked[0].ID != "p1" {
		t.Errorf("Expected only p1, got %+v", liked)
	}

	if got := p.LikedPostsByUser("nobody"); len(got) != 0 {
		t.Errorf("Expected empty slice for unknown user, got %d", len(got))
	}
}

func TestCommentedPostsIncludeDeletedComments(t *testing.T) {
	deleted := testNow
	p := newTestProvider(store.State{
		Posts: []models.Post{{ID: "p1"}},
		Comments: []models.Comment{
			{ID: "c1", PostID: "p1", UserID: "u1", DeletedAt: &deleted},
		},
	})

	commented := p.CommentedPostsByUser("u1")
	if len(commented) != 1 {
		t.Errorf("A deleted comment still marks the post as engaged, got %d posts", len(commented))
	}
}

func TestRemovedCommentsByUserOrdering(t *testing.T) {
	older := testNow.Add(-time.Hour)
	newer := testNow
	p := newTestProvider(store.State{
		Comments: []models.Comment{
			{ID: "c-old", UserID: "u1", DeletedAt: &older},
			{ID: "c-live", UserID: "u1"},
			{ID: "c-new", UserID: "u1", DeletedAt: &newer},
			{ID: "c-other", UserID: "u2", DeletedAt: &newer},
		},
	})

	removed := p.RemovedCommentsByUser("u1")
	if len(removed) != 2 {
		t.Fatalf("Expected 2 removed comments, got %d", len(removed))
	}
	if removed[0].ID != "c-new" || removed[1].ID != "c-old" {
		t.Errorf("Expected most recently removed first, got %s, %s", removed[0].ID, removed[1].ID)
	}
}

func TestViewedPostsByUser(t *testing.T) {
	p := newTestProvider(store.State{
		Posts: []models.Post{{ID: "p1"}, {ID: "p2"}},
		PostViews: []models.PostView{
			{ID: "v1", PostID: "p2", UserID: "u1"},
		},
	})

	viewed := p.ViewedPostsByUser("u1")
	if len(viewed) != 1 || viewed[0].ID != "p2" {
		t.Errorf("Expected only p2, got %+v", viewed)
	}
}

func TestPostsEnrichedView(t *testing.T) {
	p := newTestProvider(store.State{
		Users: []models.User{{ID: "u1", Name: "Lan", BadgeLevel: 1}},
		Posts: []models.Post{{ID: "p1", UserID: "u1"}},
		BadgeLevels: []models.BadgeLevel{
			{ID: "b0", Level: 0, MinPoints: 0},
			{ID: "b1", Level: 1, MinPoints: 100},
		},
		PostLikes: []models.PostLike{{ID: "l1", PostID: "p1", UserID: "x"}},
	})

	posts := p.Posts()
	if len(posts) != 1 {
		t.Fatalf("Expected 1 enriched post, got %d", len(posts))
	}
	if posts[0].User.Name != "Lan" {
		t.Errorf("Expected author join, got %q", posts[0].User.Name)
	}
	if posts[0].Badge.ID != "b1" {
		t.Errorf("Expected badge b1, got %q", posts[0].Badge.ID)
	}
	if posts[0].LikeCount != 1 {
		t.Errorf("Expected 1 like, got %d", posts[0].LikeCount)
	}
}
