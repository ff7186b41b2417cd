// Package grant implements the automatic achievement-granting engine.
// Evaluation is a pure synchronous recomputation over the latest
// committed state; at-most-once granting comes from re-checking the
// existing (user, achievement) pair set on every run, not from a lock.
package grant

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/pkg/logging"
)

// pairKey dedups (user, achievement) grants
type pairKey struct {
	userID        string
	achievementID string
}

// Evaluate scans every (user, active achievement) pair not yet granted
// and returns the batch of newly qualifying grants. It never fails: a
// missing streak or usage record and an unknown criteria type both
// degrade to "does not qualify". Grant records carry audit snapshots
// of the achievement name and the user's name and avatar as of grant
// time.
func Evaluate(users []models.User, achievements []models.Achievement, existing []models.UserAchievement, streaks []models.UserStreak, usage []models.UserUsage, now time.Time) []models.UserAchievement {
	active := make([]models.Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.IsActive {
			active = append(active, a)
		}
	}
	if len(active) == 0 {
		return nil
	}

	granted := make(map[pairKey]bool, len(existing))
	for _, ua := range existing {
		granted[pairKey{ua.UserID, ua.AchievementID}] = true
	}

	streakByUser := make(map[string]*models.UserStreak, len(streaks))
	for i := range streaks {
		streakByUser[streaks[i].UserID] = &streaks[i]
	}

	usageByKey := make(map[string]*models.UserUsage, len(usage))
	for i := range usage {
		usageByKey[usage[i].UserID+"\x00"+usage[i].Feature] = &usage[i]
	}

	var batch []models.UserAchievement
	for _, u := range users {
		for _, a := range active {
			key := pairKey{u.ID, a.ID}
			if granted[key] {
				continue
			}
			if !qualifies(u, a.Criteria, streakByUser, usageByKey) {
				continue
			}

			// Mark immediately so a duplicate achievement row in the
			// same pass cannot double-grant.
			granted[key] = true
			batch = append(batch, models.UserAchievement{
				ID:              uuid.NewString(),
				UserID:          u.ID,
				AchievementID:   a.ID,
				AchievementName: a.Name,
				UserName:        u.Name,
				UserAvatar:      u.AvatarURL,
				GrantedAt:       now,
			})
		}
	}

	if len(batch) > 0 {
		logging.GetLogger().Info("[GRANT]",
			zap.Int("new_grants", len(batch)),
			zap.Int("users", len(users)),
			zap.Int("active_achievements", len(active)))
	}

	return batch
}

// qualifies evaluates one criteria variant against a user's metrics
func qualifies(u models.User, c models.Criteria, streakByUser map[string]*models.UserStreak, usageByKey map[string]*models.UserUsage) bool {
	switch c.Type {
	case models.CriteriaCommunityPoints:
		return u.CommunityPoints >= c.MinPoints
	case models.CriteriaLoginStreak:
		s, ok := streakByUser[u.ID]
		return ok && s.CurrentStreak >= c.MinStreak
	case models.CriteriaUsage:
		rec, ok := usageByKey[u.ID+"\x00"+c.Feature]
		return ok && rec.DailyCount >= c.MinCount
	default:
		// Unknown criteria types never qualify; not an error.
		return false
	}
}
