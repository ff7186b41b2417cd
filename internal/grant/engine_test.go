package grant

import (
	"testing"
	"time"

	"github.com/lingohub/admind/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestEvaluateCriteriaTypes(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "rich", CommunityPoints: 500},
		{ID: "u2", Name: "poor", CommunityPoints: 10},
	}
	streaks := []models.UserStreak{
		{ID: "s1", UserID: "u1", CurrentStreak: 30},
	}
	usage := []models.UserUsage{
		{ID: "g1", UserID: "u2", Feature: "flashcards", DailyCount: 50},
	}

	tests := []struct {
		name        string
		achievement models.Achievement
		wantUsers   []string
	}{
		{
			name: "community points threshold",
			achievement: models.Achievement{
				ID: "a1", Name: "High Roller", IsActive: true,
				Criteria: models.Criteria{Type: models.CriteriaCommunityPoints, MinPoints: 100},
			},
			wantUsers: []string{"u1"},
		},
		{
			name: "login streak requires a streak record",
			achievement: models.Achievement{
				ID: "a2", Name: "Consistent", IsActive: true,
				Criteria: models.Criteria{Type: models.CriteriaLoginStreak, MinStreak: 7},
			},
			wantUsers: []string{"u1"},
		},
		{
			name: "usage keyed by feature",
			achievement: models.Achievement{
				ID: "a3", Name: "Flashcard Fan", IsActive: true,
				Criteria: models.Criteria{Type: models.CriteriaUsage, Feature: "flashcards", MinCount: 20},
			},
			wantUsers: []string{"u2"},
		},
		{
			name: "unknown criteria type never qualifies",
			achievement: models.Achievement{
				ID: "a4", Name: "Future", IsActive: true,
				Criteria: models.Criteria{Type: "quantum_entanglement"},
			},
			wantUsers: nil,
		},
		{
			name: "inactive achievement is skipped",
			achievement: models.Achievement{
				ID: "a5", Name: "Retired", IsActive: false,
				Criteria: models.Criteria{Type: models.CriteriaCommunityPoints, MinPoints: 0},
			},
			wantUsers: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := Evaluate(users, []models.Achievement{tt.achievement}, nil, streaks, usage, testNow)

			if len(batch) != len(tt.wantUsers) {
				t.Fatalf("Expected %d grants, got %d", len(tt.wantUsers), len(batch))
			}
			for i, want := range tt.wantUsers {
				if batch[i].UserID != want {
					t.Errorf("Grant %d: expected user %s, got %s", i, want, batch[i].UserID)
				}
			}
		})
	}
}

func TestEvaluateAtMostOnce(t *testing.T) {
	users := []models.User{{ID: "u1", CommunityPoints: 1000}}
	achievements := []models.Achievement{
		{ID: "a1", Name: "Veteran", IsActive: true,
			Criteria: models.Criteria{Type: models.CriteriaCommunityPoints, MinPoints: 100}},
	}

	first := Evaluate(users, achievements, nil, nil, nil, testNow)
	if len(first) != 1 {
		t.Fatalf("Expected 1 grant on first pass, got %d", len(first))
	}

	// Re-running with the first batch as existing grants must be a no-op
	second := Evaluate(users, achievements, first, nil, nil, testNow)
	if len(second) != 0 {
		t.Errorf("Expected no grants on second pass, got %d", len(second))
	}
}

func TestEvaluateDuplicateAchievementRow(t *testing.T) {
	users := []models.User{{ID: "u1", CommunityPoints: 1000}}
	dup := models.Achievement{ID: "a1", Name: "Veteran", IsActive: true,
		Criteria: models.Criteria{Type: models.CriteriaCommunityPoints, MinPoints: 100}}

	batch := Evaluate(users, []models.Achievement{dup, dup}, nil, nil, nil, testNow)
	if len(batch) != 1 {
		t.Errorf("Duplicate achievement rows must not double-grant, got %d", len(batch))
	}
}

func TestEvaluateAuditSnapshot(t *testing.T) {
	users := []models.User{{ID: "u1", Name: "Linh", AvatarURL: "https://cdn/a.png", CommunityPoints: 200}}
	achievements := []models.Achievement{
		{ID: "a1", Name: "Rising Star", IsActive: true,
			Criteria: models.Criteria{Type: models.CriteriaCommunityPoints, MinPoints: 100}},
	}

	batch := Evaluate(users, achievements, nil, nil, nil, testNow)
	if len(batch) != 1 {
		t.Fatalf("Expected 1 grant, got %d", len(batch))
	}

	g := batch[0]
	if g.ID == "" {
		t.Error("Grant should carry a fresh id")
	}
	if g.AchievementName != "Rising Star" || g.UserName != "Linh" || g.UserAvatar != "https://cdn/a.png" {
		t.Errorf("Grant should snapshot names and avatar: %+v", g)
	}
	if !g.GrantedAt.Equal(testNow) {
		t.Errorf("Expected granted_at %v, got %v", testNow, g.GrantedAt)
	}
}

func TestEvaluateBatchAcrossUsers(t *testing.T) {
	users := []models.User{
		{ID: "u1", CommunityPoints: 200},
		{ID: "u2", CommunityPoints: 300},
		{ID: "u3", CommunityPoints: 5},
	}
	achievements := []models.Achievement{
		{ID: "a1", Name: "Century", IsActive: true,
			Criteria: models.Criteria{Type: models.CriteriaCommunityPoints, MinPoints: 100}},
	}

	batch := Evaluate(users, achievements, nil, nil, nil, testNow)
	if len(batch) != 2 {
		t.Errorf("Expected 2 grants in one batch, got %d", len(batch))
	}
}
