package enrich

import (
	"encoding/json"

	"github.com/lingohub/admind/internal/models"
)

// Appeal is an appeal joined with its appellant and the violation it
// contests. For accepted appeals the violation comes from the frozen
// snapshot captured at acceptance time; the live violation may no
// longer exist and is never consulted.
type Appeal struct {
	models.Appeal
	User      models.User `json:"user"`
	Violation *Violation  `json:"violation,omitempty"`
}

// Appeals enriches every raw appeal
func Appeals(raw []models.Appeal, users []models.User, violations []models.Violation, posts []models.Post, comments []models.Comment, violationRules []models.ViolationRule, rules []models.CommunityRule) []Appeal {
	result := make([]Appeal, 0, len(raw))
	for _, a := range raw {
		result = append(result, OneAppeal(a, users, violations, posts, comments, violationRules, rules))
	}
	return result
}

// OneAppeal joins a single appeal with its user and violation view.
func OneAppeal(a models.Appeal, users []models.User, violations []models.Violation, posts []models.Post, comments []models.Comment, violationRules []models.ViolationRule, rules []models.CommunityRule) Appeal {
	appellant := models.UnknownUser()
	for i := range users {
		if users[i].ID == a.UserID {
			appellant = users[i]
			break
		}
	}

	enriched := Appeal{
		Appeal: a,
		User:   appellant,
	}

	// Frozen-at-acceptance semantics: an accepted appeal with a
	// snapshot never re-queries live violations.
	if a.Status == models.AppealAccepted && len(a.ViolationSnapshot) > 0 {
		var snap Violation
		if err := json.Unmarshal(a.ViolationSnapshot, &snap); err == nil {
			enriched.Violation = &snap
		}
		return enriched
	}

	for _, v := range violations {
		if v.ID == a.ViolationID {
			live := OneViolation(v, users, posts, comments, violationRules, rules)
			enriched.Violation = &live
			break
		}
	}

	return enriched
}
