package actions

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/lingohub/admind/internal/enrich"
	"github.com/lingohub/admind/internal/models"
)

// AddViolation records a violation and its rule join rows in a single
// store pass. The violation id is returned so callers can reference
// the fresh record.
func (a *Actions) AddViolation(userID string, targetType models.TargetType, targetID, severity, reason string, ruleIDs []string) (string, error) {
	if !targetType.Valid() {
		return "", ErrInvalidTargetType
	}

	id := uuid.NewString()
	violation := models.Violation{
		ID:         id,
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		Severity:   severity,
		Reason:     reason,
		CreatedAt:  a.now(),
	}

	a.store.UpdateModeration(func(violations []models.Violation, joins []models.ViolationRule) ([]models.Violation, []models.ViolationRule) {
		violations = append(violations, violation)
		for _, ruleID := range ruleIDs {
			joins = append(joins, models.ViolationRule{
				ID:          uuid.NewString(),
				ViolationID: id,
				RuleID:      ruleID,
			})
		}
		return violations, joins
	})

	a.invalidate("posts")
	a.audit(models.ActionAddViolation,
		fmt.Sprintf("Recorded %s violation against %s %s (%d rules)", severity, targetType, targetID, len(ruleIDs)))
	return id, nil
}

// RemoveViolationByTarget deletes the violation pointing at the given
// target along with every rule join referencing it. The violation id
// is captured inside the update pass, before the collection is
// filtered, so the cascade never re-queries mutated state.
func (a *Actions) RemoveViolationByTarget(targetType models.TargetType, targetID string) bool {
	var removedID string
	a.store.UpdateModeration(func(violations []models.Violation, joins []models.ViolationRule) ([]models.Violation, []models.ViolationRule) {
		for _, v := range violations {
			if v.TargetType == targetType && v.TargetID == targetID {
				removedID = v.ID
				break
			}
		}
		if removedID == "" {
			return violations, joins
		}

		keptViolations := violations[:0:0]
		for _, v := range violations {
			if v.ID != removedID {
				keptViolations = append(keptViolations, v)
			}
		}
		keptJoins := joins[:0:0]
		for _, j := range joins {
			if j.ViolationID != removedID {
				keptJoins = append(keptJoins, j)
			}
		}
		return keptViolations, keptJoins
	})

	if removedID == "" {
		return false
	}
	a.invalidate("posts")
	a.audit(models.ActionRemoveViolation,
		fmt.Sprintf("Removed violation on %s %s", targetType, targetID))
	return true
}

// CreateAppeal records a user's appeal against a violation
func (a *Actions) CreateAppeal(violationID, userID, reason string) (string, error) {
	snap := a.store.Snapshot()
	found := false
	for _, v := range snap.Violations {
		if v.ID == violationID {
			found = true
			break
		}
	}
	if !found {
		return "", ErrViolationNotFound
	}

	id := uuid.NewString()
	a.store.UpdateAppeals(func(appeals []models.Appeal) []models.Appeal {
		return append(appeals, models.Appeal{
			ID:          id,
			ViolationID: violationID,
			UserID:      userID,
			Reason:      reason,
			Status:      models.AppealPending,
			CreatedAt:   a.now(),
		})
	})
	return id, nil
}

// ResolveAppeal applies an accept/reject decision. Acceptance freezes
// the enriched violation onto the appeal as a snapshot, deletes the
// live violation with its rule joins, and restores a post target to
// published with its soft-delete marker cleared. Rejection only sets
// resolution metadata.
func (a *Actions) ResolveAppeal(appealID string, resolution AppealResolution) error {
	snap := a.store.Snapshot()

	var appeal *models.Appeal
	for i := range snap.Appeals {
		if snap.Appeals[i].ID == appealID {
			appeal = &snap.Appeals[i]
			break
		}
	}
	if appeal == nil {
		return ErrAppealNotFound
	}
	if appeal.Status != models.AppealPending {
		return ErrAppealAlreadyResolved
	}

	now := a.now()

	if resolution.Status != models.AppealAccepted {
		a.store.UpdateAppeals(func(appeals []models.Appeal) []models.Appeal {
			for i := range appeals {
				if appeals[i].ID == appealID {
					appeals[i].Status = resolution.Status
					appeals[i].ResolvedBy = resolution.ResolvedBy
					appeals[i].ResolvedAt = &now
					break
				}
			}
			return appeals
		})
		a.audit(models.ActionResolveAppeal,
			fmt.Sprintf("Rejected appeal %s", appealID))
		return nil
	}

	var live *models.Violation
	for i := range snap.Violations {
		if snap.Violations[i].ID == appeal.ViolationID {
			live = &snap.Violations[i]
			break
		}
	}
	if live == nil {
		return ErrViolationNotFound
	}

	// Freeze the enriched violation as of this moment; the snapshot is
	// never re-synced afterwards.
	enriched := enrich.OneViolation(*live, snap.Users, snap.Posts, snap.Comments, snap.ViolationRules, snap.CommunityRules)
	frozen, err := json.Marshal(enriched)
	if err != nil {
		return fmt.Errorf("failed to freeze violation snapshot: %w", err)
	}

	a.store.UpdateAppeals(func(appeals []models.Appeal) []models.Appeal {
		for i := range appeals {
			if appeals[i].ID == appealID {
				appeals[i].Status = models.AppealAccepted
				appeals[i].ViolationSnapshot = frozen
				appeals[i].ResolvedBy = resolution.ResolvedBy
				appeals[i].ResolvedAt = &now
				break
			}
		}
		return appeals
	})

	removedID := live.ID
	a.store.UpdateModeration(func(violations []models.Violation, joins []models.ViolationRule) ([]models.Violation, []models.ViolationRule) {
		keptViolations := violations[:0:0]
		for _, v := range violations {
			if v.ID != removedID {
				keptViolations = append(keptViolations, v)
			}
		}
		keptJoins := joins[:0:0]
		for _, j := range joins {
			if j.ViolationID != removedID {
				keptJoins = append(keptJoins, j)
			}
		}
		return keptViolations, keptJoins
	})

	if live.TargetType == models.TargetPost {
		a.store.UpdatePosts(func(posts []models.Post) []models.Post {
			for i := range posts {
				if posts[i].ID == live.TargetID {
					posts[i].Status = models.PostStatusPublished
					posts[i].DeletedAt = nil
					break
				}
			}
			return posts
		})
	}

	a.invalidate("posts")
	a.audit(models.ActionResolveAppeal,
		fmt.Sprintf("Accepted appeal %s, violation %s overturned", appealID, removedID))
	return nil
}
