package actions

import (
	"context"
	"fmt"

	"github.com/lingohub/admind/internal/models"
)

// CreateBadge creates a badge level. Duplicate min_points is a named
// validation failure raised before the collaborator is called.
func (a *Actions) CreateBadge(ctx context.Context, payload BadgePayload) (*models.BadgeLevel, error) {
	if payload.MinPoints != nil {
		snap := a.store.Snapshot()
		for _, b := range snap.BadgeLevels {
			if b.MinPoints == *payload.MinPoints {
				return nil, ErrDuplicateBadgePoints
			}
		}
	}

	created, err := a.svc.Badges.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateBadgeLevels(func(badges []models.BadgeLevel) []models.BadgeLevel {
		return append(badges, *created)
	})

	a.invalidate("badges")
	a.audit(models.ActionCreateBadge,
		fmt.Sprintf("Created badge %q at level %d", created.Name, created.Level))
	return created, nil
}

// UpdateBadge edits a badge level. On reserved system badges (levels
// 0, 4, 5) any requested min_points or is_active change is silently
// dropped from the payload before persisting, not rejected; the rest
// of the payload still applies. Duplicate min_points against another
// badge is a validation failure.
func (a *Actions) UpdateBadge(ctx context.Context, id string, payload BadgePayload) (*models.BadgeLevel, error) {
	snap := a.store.Snapshot()

	var current *models.BadgeLevel
	for i := range snap.BadgeLevels {
		if snap.BadgeLevels[i].ID == id {
			current = &snap.BadgeLevels[i]
			break
		}
	}

	if current != nil && current.IsReserved() {
		payload.MinPoints = nil
		payload.IsActive = nil
		payload.Level = nil
	}

	if payload.MinPoints != nil {
		for _, b := range snap.BadgeLevels {
			if b.ID != id && b.MinPoints == *payload.MinPoints {
				return nil, ErrDuplicateBadgePoints
			}
		}
	}

	updated, err := a.svc.Badges.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateBadgeLevels(func(badges []models.BadgeLevel) []models.BadgeLevel {
		for i := range badges {
			if badges[i].ID == updated.ID {
				badges[i] = *updated
				break
			}
		}
		return badges
	})

	a.invalidate("badges")
	a.audit(models.ActionUpdateBadge,
		fmt.Sprintf("Updated badge %q (level %d)", updated.Name, updated.Level))
	return updated, nil
}

// DeleteBadge removes a badge level; reserved system badges cannot be
// deleted.
func (a *Actions) DeleteBadge(ctx context.Context, id string) error {
	snap := a.store.Snapshot()
	for _, b := range snap.BadgeLevels {
		if b.ID == id && b.IsReserved() {
			return ErrReservedBadge
		}
	}

	if err := a.svc.Badges.Delete(ctx, id); err != nil {
		return err
	}

	a.store.UpdateBadgeLevels(func(badges []models.BadgeLevel) []models.BadgeLevel {
		kept := badges[:0:0]
		for _, b := range badges {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		return kept
	})

	a.invalidate("badges")
	a.audit(models.ActionDeleteBadge, fmt.Sprintf("Deleted badge %s", id))
	return nil
}
