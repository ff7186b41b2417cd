package actions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lingohub/admind/internal/models"
)

// CreateAchievement creates an achievement through the collaborator
func (a *Actions) CreateAchievement(ctx context.Context, payload AchievementPayload) (*models.Achievement, error) {
	created, err := a.svc.Achievements.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateAchievements(func(achievements []models.Achievement) []models.Achievement {
		return append(achievements, *created)
	})

	a.invalidate("achievements")
	a.audit(models.ActionCreateAchievement,
		fmt.Sprintf("Created achievement %q (%s)", created.Name, created.ID))
	return created, nil
}

// UpdateAchievement edits an achievement through the collaborator
func (a *Actions) UpdateAchievement(ctx context.Context, id string, payload AchievementPayload) (*models.Achievement, error) {
	updated, err := a.svc.Achievements.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateAchievements(func(achievements []models.Achievement) []models.Achievement {
		for i := range achievements {
			if achievements[i].ID == updated.ID {
				achievements[i] = *updated
				break
			}
		}
		return achievements
	})

	a.invalidate("achievements")
	a.audit(models.ActionUpdateAchievement,
		fmt.Sprintf("Updated achievement %q (%s)", updated.Name, updated.ID))
	return updated, nil
}

// DeleteAchievement removes an achievement through the collaborator
func (a *Actions) DeleteAchievement(ctx context.Context, id string) error {
	if err := a.svc.Achievements.Delete(ctx, id); err != nil {
		return err
	}

	a.store.UpdateAchievements(func(achievements []models.Achievement) []models.Achievement {
		kept := achievements[:0:0]
		for _, ach := range achievements {
			if ach.ID != id {
				kept = append(kept, ach)
			}
		}
		return kept
	})

	a.invalidate("achievements")
	a.audit(models.ActionDeleteAchievement, fmt.Sprintf("Deleted achievement %s", id))
	return nil
}

// GrantAchievement manually grants an achievement to a user. Granting
// an already-held achievement is a validation failure; the grant row
// carries the same audit snapshot fields the auto-grant engine writes.
func (a *Actions) GrantAchievement(userID, achievementID string) error {
	snap := a.store.Snapshot()

	for _, ua := range snap.UserAchievements {
		if ua.UserID == userID && ua.AchievementID == achievementID {
			return ErrAchievementAlreadyHeld
		}
	}

	var user *models.User
	for i := range snap.Users {
		if snap.Users[i].ID == userID {
			user = &snap.Users[i]
			break
		}
	}
	if user == nil {
		return ErrUserNotFound
	}

	var achievement *models.Achievement
	for i := range snap.Achievements {
		if snap.Achievements[i].ID == achievementID {
			achievement = &snap.Achievements[i]
			break
		}
	}
	if achievement == nil {
		return ErrAchievementNotFound
	}

	grantRow := models.UserAchievement{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		AchievementID:   achievement.ID,
		AchievementName: achievement.Name,
		UserName:        user.Name,
		UserAvatar:      user.AvatarURL,
		GrantedAt:       a.now(),
	}

	a.store.UpdateUserAchievements(func(grants []models.UserAchievement) []models.UserAchievement {
		// Re-check against the latest committed state; a concurrent
		// grant of the same pair makes this a no-op.
		for _, g := range grants {
			if g.UserID == userID && g.AchievementID == achievementID {
				return grants
			}
		}
		return append(grants, grantRow)
	})

	a.invalidate("achievements")
	a.audit(models.ActionGrantAchievement,
		fmt.Sprintf("Granted %q to %s", achievement.Name, user.Name))
	return nil
}
