package models

import (
	"time"
)

// Audit action type constants
const (
	ActionCreateExam          = "CREATE_EXAM"
	ActionUpdateExam          = "UPDATE_EXAM"
	ActionPublishExam         = "PUBLISH_EXAM"
	ActionUnpublishExam       = "UNPUBLISH_EXAM"
	ActionDeleteExam          = "DELETE_EXAM"
	ActionCreateRule          = "CREATE_RULE"
	ActionUpdateRule          = "UPDATE_RULE"
	ActionDeleteRule          = "DELETE_RULE"
	ActionCreateAchievement   = "CREATE_ACHIEVEMENT"
	ActionUpdateAchievement   = "UPDATE_ACHIEVEMENT"
	ActionDeleteAchievement   = "DELETE_ACHIEVEMENT"
	ActionGrantAchievement    = "GRANT_ACHIEVEMENT"
	ActionCreateBadge         = "CREATE_BADGE"
	ActionUpdateBadge         = "UPDATE_BADGE"
	ActionDeleteBadge         = "DELETE_BADGE"
	ActionCreateSubscription  = "CREATE_SUBSCRIPTION"
	ActionUpdateSubscription  = "UPDATE_SUBSCRIPTION"
	ActionDeleteSubscription  = "DELETE_SUBSCRIPTION"
	ActionAssignSubscription  = "ASSIGN_SUBSCRIPTION"
	ActionUpdateUserSub       = "UPDATE_USER_SUBSCRIPTION"
	ActionCreatePayment       = "CREATE_PAYMENT"
	ActionUpdatePayment       = "UPDATE_PAYMENT"
	ActionRefundPayment       = "REFUND_PAYMENT"
	ActionUpdateRefund        = "UPDATE_REFUND"
	ActionAddViolation        = "ADD_VIOLATION"
	ActionRemoveViolation     = "REMOVE_VIOLATION"
	ActionResolveAppeal       = "RESOLVE_APPEAL"
	ActionPublishNotification = "PUBLISH_NOTIFICATION"
)

// AuditEntry is one human-readable line in the admin action log
type AuditEntry struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Action      string    `gorm:"type:varchar(50);not null;column:action" json:"action"`
	Description string    `gorm:"type:text;not null;column:description" json:"description"`
	ActorID     string    `gorm:"type:uuid;column:actor_id" json:"actor_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for AuditEntry
func (AuditEntry) TableName() string {
	return "audit_log"
}
