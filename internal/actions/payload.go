package actions

import (
	"github.com/lingohub/admind/internal/models"
)

// Payload fields are pointers so "absent" and "present but zero" stay
// distinguishable: a nil field is not part of the request, a non-nil
// pointer to a zero value is an explicit clear.

// ExamPayload is a partial exam update. IsPublished presence (not the
// resulting entity value) decides whether the action logs as a
// publish/unpublish rather than a plain update.
type ExamPayload struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Language    *string            `json:"language,omitempty"`
	Level       *string            `json:"level,omitempty"`
	IsPublished *bool              `json:"is_published,omitempty"`
	Questions   *[]models.Question `json:"questions,omitempty"`
}

// RulePayload is a partial community-rule update
type RulePayload struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	SeverityDefault *string `json:"severity_default,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// AchievementPayload is a partial achievement update
type AchievementPayload struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Icon        *string          `json:"icon,omitempty"`
	Criteria    *models.Criteria `json:"criteria,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// BadgePayload is a partial badge-level update
type BadgePayload struct {
	Level     *int    `json:"level,omitempty"`
	Name      *string `json:"name,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	MinPoints *int    `json:"min_points,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// SubscriptionPayload is a partial plan update
type SubscriptionPayload struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// UserSubscriptionPayload is a partial user-subscription update
type UserSubscriptionPayload struct {
	UserID *string `json:"user_id,omitempty"`
	PlanID *string `json:"plan_id,omitempty"`
	Status *string `json:"status,omitempty"`
}

// PaymentPayload is a partial payment update
type PaymentPayload struct {
	UserID *string  `json:"user_id,omitempty"`
	PlanID *string  `json:"plan_id,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Method *string  `json:"method,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// RefundPayload is a partial refund update
type RefundPayload struct {
	PaymentID *string  `json:"payment_id,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
	Status    *string  `json:"status,omitempty"`
}

// AppealResolution carries an appeal decision
type AppealResolution struct {
	Status     string `json:"status"`
	ResolvedBy string `json:"resolved_by,omitempty"`
}
