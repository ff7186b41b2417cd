package models

import (
	"encoding/json"
	"time"
)

// TargetType discriminates what kind of content a violation points at
type TargetType string

// Violation target type constants
const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
	TargetUser    TargetType = "user"
)

// Valid reports whether t is a known target type
func (t TargetType) Valid() bool {
	switch t {
	case TargetPost, TargetComment, TargetUser:
		return true
	}
	return false
}

// Violation records a moderation infraction against a post, comment or user
type Violation struct {
	ID         string     `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	TargetType TargetType `gorm:"type:varchar(20);not null;column:target_type" json:"target_type"`
	TargetID   string     `gorm:"type:uuid;not null;index;column:target_id" json:"target_id"`
	Severity   string     `gorm:"type:varchar(20);not null;default:'low';column:severity" json:"severity"`
	Reason     string     `gorm:"type:text;column:reason" json:"reason"`
	Handled    bool       `gorm:"not null;default:false;column:handled" json:"handled"`
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Violation
func (Violation) TableName() string {
	return "violations"
}

// ViolationRule joins a violation to the community rules it broke
type ViolationRule struct {
	ID          string `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ViolationID string `gorm:"type:uuid;not null;index;column:violation_id" json:"violation_id"`
	RuleID      string `gorm:"type:uuid;not null;index;column:rule_id" json:"rule_id"`
}

// TableName specifies the table name for ViolationRule
func (ViolationRule) TableName() string {
	return "violation_rules"
}

// CommunityRule is a moderation rule definition
type CommunityRule struct {
	ID              string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Description     string    `gorm:"type:text;column:description" json:"description"`
	SeverityDefault string    `gorm:"type:varchar(20);not null;default:'low';column:severity_default" json:"severity_default"`
	IsActive        bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt       time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for CommunityRule
func (CommunityRule) TableName() string {
	return "community_rules"
}

// Appeal status constants
const (
	AppealPending  = "pending"
	AppealAccepted = "accepted"
	AppealRejected = "rejected"
)

// Appeal is a user's request to overturn a violation. When accepted, a
// frozen snapshot of the enriched violation is stored and the live
// violation is deleted; the snapshot is never re-synced afterwards.
type Appeal struct {
	ID                string          `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ViolationID       string          `gorm:"type:uuid;not null;index;column:violation_id" json:"violation_id"`
	UserID            string          `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Reason            string          `gorm:"type:text;column:reason" json:"reason"`
	Status            string          `gorm:"type:varchar(20);not null;default:'pending';column:status" json:"status"`
	ViolationSnapshot json.RawMessage `gorm:"type:jsonb;column:violation_snapshot" json:"violation_snapshot,omitempty"`
	ResolvedBy        string          `gorm:"type:uuid;column:resolved_by" json:"resolved_by,omitempty"`
	ResolvedAt        *time.Time      `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Appeal
func (Appeal) TableName() string {
	return "appeals"
}
