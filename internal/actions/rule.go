package actions

import (
	"context"
	"fmt"

	"github.com/lingohub/admind/internal/models"
)

// CreateRule creates a community rule through the collaborator
func (a *Actions) CreateRule(ctx context.Context, payload RulePayload) (*models.CommunityRule, error) {
	created, err := a.svc.Rules.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateCommunityRules(func(rules []models.CommunityRule) []models.CommunityRule {
		return append(rules, *created)
	})

	a.invalidate("rules")
	a.audit(models.ActionCreateRule,
		fmt.Sprintf("Created community rule %q", created.Title))
	return created, nil
}

// UpdateRule edits a community rule through the collaborator
func (a *Actions) UpdateRule(ctx context.Context, id string, payload RulePayload) (*models.CommunityRule, error) {
	updated, err := a.svc.Rules.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateCommunityRules(func(rules []models.CommunityRule) []models.CommunityRule {
		for i := range rules {
			if rules[i].ID == updated.ID {
				rules[i] = *updated
				break
			}
		}
		return rules
	})

	a.invalidate("rules")
	a.audit(models.ActionUpdateRule,
		fmt.Sprintf("Updated community rule %q", updated.Title))
	return updated, nil
}

// DeleteRule removes a community rule through the collaborator. Join
// rows on existing violations keep their rule id; enrichment simply
// stops resolving them.
func (a *Actions) DeleteRule(ctx context.Context, id string) error {
	if err := a.svc.Rules.Delete(ctx, id); err != nil {
		return err
	}

	a.store.UpdateCommunityRules(func(rules []models.CommunityRule) []models.CommunityRule {
		kept := rules[:0:0]
		for _, r := range rules {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		return kept
	})

	a.invalidate("rules")
	a.audit(models.ActionDeleteRule, fmt.Sprintf("Deleted community rule %s", id))
	return nil
}
