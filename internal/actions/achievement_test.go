package actions

import (
	"errors"
	"testing"

	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

func TestGrantAchievement(t *testing.T) {
	a, st := newTestActions(store.State{
		Users: []models.User{{ID: "u1", Name: "Lan", AvatarURL: "https://cdn/lan.png"}},
		Achievements: []models.Achievement{
			{ID: "a1", Name: "Pioneer", IsActive: true,
				Criteria: models.Criteria{Type: "manual_only"}},
		},
	}, Services{})

	if err := a.GrantAchievement("u1", "a1"); err != nil {
		t.Fatalf("GrantAchievement failed: %v", err)
	}

	snap := st.Snapshot()
	if len(snap.UserAchievements) != 1 {
		t.Fatalf("Expected 1 grant, got %d", len(snap.UserAchievements))
	}
	g := snap.UserAchievements[0]
	if g.AchievementName != "Pioneer" || g.UserName != "Lan" || g.UserAvatar != "https://cdn/lan.png" {
		t.Errorf("Grant should snapshot names and avatar: %+v", g)
	}
}

func TestGrantAchievementAlreadyHeld(t *testing.T) {
	a, _ := newTestActions(store.State{
		Users:        []models.User{{ID: "u1"}},
		Achievements: []models.Achievement{{ID: "a1", Name: "Pioneer", IsActive: true, Criteria: models.Criteria{Type: "manual_only"}}},
		UserAchievements: []models.UserAchievement{
			{ID: "g1", UserID: "u1", AchievementID: "a1"},
		},
	}, Services{})

	if err := a.GrantAchievement("u1", "a1"); !errors.Is(err, ErrAchievementAlreadyHeld) {
		t.Errorf("Expected ErrAchievementAlreadyHeld, got %v", err)
	}
}

func TestGrantAchievementMissingRecords(t *testing.T) {
	a, _ := newTestActions(store.State{
		Users:        []models.User{{ID: "u1"}},
		Achievements: []models.Achievement{{ID: "a1", IsActive: true, Criteria: models.Criteria{Type: "manual_only"}}},
	}, Services{})

	if err := a.GrantAchievement("ghost", "a1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
	if err := a.GrantAchievement("u1", "ghost"); !errors.Is(err, ErrAchievementNotFound) {
		t.Errorf("Expected ErrAchievementNotFound, got %v", err)
	}
}
