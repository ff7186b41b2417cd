package enrich

import (
	"github.com/lingohub/admind/internal/models"
)

// Target is the resolved content a violation points at. Exactly one
// of the pointer fields is set, selected by Type.
type Target struct {
	Type    models.TargetType `json:"type"`
	Post    *models.Post      `json:"post,omitempty"`
	Comment *models.Comment   `json:"comment,omitempty"`
	User    *models.User      `json:"user,omitempty"`
}

// Violation is a violation joined with its offending user, resolved
// target content and the community rules it broke
type Violation struct {
	models.Violation
	User   models.User            `json:"user"`
	Target Target                 `json:"target"`
	Rules  []models.CommunityRule `json:"rules"`
}

// Violations enriches every raw violation
func Violations(raw []models.Violation, users []models.User, posts []models.Post, comments []models.Comment, violationRules []models.ViolationRule, rules []models.CommunityRule) []Violation {
	result := make([]Violation, 0, len(raw))
	for _, v := range raw {
		result = append(result, OneViolation(v, users, posts, comments, violationRules, rules))
	}
	return result
}

// OneViolation joins a single violation with its user, target and
// rules. The target lookup dispatches on the target type tag; exactly
// one lookup runs. Dangling references leave the placeholder user or
// a nil target rather than failing.
func OneViolation(v models.Violation, users []models.User, posts []models.Post, comments []models.Comment, violationRules []models.ViolationRule, rules []models.CommunityRule) Violation {
	offender := models.UnknownUser()
	for i := range users {
		if users[i].ID == v.UserID {
			offender = users[i]
			break
		}
	}

	target := Target{Type: v.TargetType}
	switch v.TargetType {
	case models.TargetPost:
		for i := range posts {
			if posts[i].ID == v.TargetID {
				target.Post = &posts[i]
				break
			}
		}
	case models.TargetComment:
		for i := range comments {
			if comments[i].ID == v.TargetID {
				target.Comment = &comments[i]
				break
			}
		}
	case models.TargetUser:
		for i := range users {
			if users[i].ID == v.TargetID {
				target.User = &users[i]
				break
			}
		}
	}

	ruleMap := make(map[string]*models.CommunityRule, len(rules))
	for i := range rules {
		ruleMap[rules[i].ID] = &rules[i]
	}

	matched := make([]models.CommunityRule, 0)
	for _, vr := range violationRules {
		if vr.ViolationID != v.ID {
			continue
		}
		if r, ok := ruleMap[vr.RuleID]; ok {
			matched = append(matched, *r)
		}
	}

	return Violation{
		Violation: v,
		User:      offender,
		Target:    target,
		Rules:     matched,
	}
}
