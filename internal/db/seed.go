package db

import (
	"context"
	"fmt"

	"github.com/lingohub/admind/internal/store"
	"github.com/lingohub/admind/pkg/telemetry"
)

// LoadState hydrates a full store snapshot from the database. Used at
// startup to seed the in-memory collections the dashboard works over.
func (r *Repository) LoadState(ctx context.Context) (store.State, error) {
	ctx, span := telemetry.StartSpan(ctx, "db.load_state")
	defer span.End()

	var state store.State

	loads := []struct {
		name string
		dest interface{}
	}{
		{"users", &state.Users},
		{"user_streaks", &state.UserStreaks},
		{"user_usage", &state.UserUsage},
		{"posts", &state.Posts},
		{"comments", &state.Comments},
		{"post_likes", &state.PostLikes},
		{"post_views", &state.PostViews},
		{"violations", &state.Violations},
		{"violation_rules", &state.ViolationRules},
		{"community_rules", &state.CommunityRules},
		{"appeals", &state.Appeals},
		{"achievements", &state.Achievements},
		{"user_achievements", &state.UserAchievements},
		{"badge_levels", &state.BadgeLevels},
		{"notifications", &state.Notifications},
		{"exams", &state.Exams},
		{"subscriptions", &state.Subscriptions},
		{"user_subscriptions", &state.UserSubscriptions},
		{"payments", &state.Payments},
		{"refunds", &state.Refunds},
		{"audit_log", &state.AuditLog},
	}

	for _, l := range loads {
		if err := r.db.WithContext(ctx).Find(l.dest).Error; err != nil {
			return store.State{}, fmt.Errorf("failed to load %s: %w", l.name, err)
		}
	}

	return state, nil
}
