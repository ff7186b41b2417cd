package models

import (
	"time"
)

// CriteriaType tags the kind of metric an achievement is granted on
type CriteriaType string

// Achievement criteria type constants
const (
	CriteriaCommunityPoints CriteriaType = "community_points"
	CriteriaLoginStreak     CriteriaType = "login_streak"
	CriteriaUsage           CriteriaType = "usage"
)

// Criteria is the tagged variant describing when an achievement is
// granted. Only the fields relevant to Type are meaningful; unknown
// types never qualify (forward-compatible no-op).
type Criteria struct {
	Type      CriteriaType `json:"type"`
	MinPoints int          `json:"min_points,omitempty"`
	MinStreak int          `json:"min_streak,omitempty"`
	Feature   string       `json:"feature,omitempty"`
	MinCount  int          `json:"min_count,omitempty"`
}

// Achievement represents a grantable achievement definition
type Achievement struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	Icon        string    `gorm:"type:varchar(50);column:icon" json:"icon"`
	Criteria    Criteria  `gorm:"type:jsonb;serializer:json;column:criteria" json:"criteria"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Achievement
func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement is a grant join row, unique per (user, achievement)
// pair. Name and avatar fields are audit snapshots captured at grant
// time and are intentionally never re-synced with the source records.
type UserAchievement struct {
	ID              string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;uniqueIndex:user_achievements_ux1;column:user_id" json:"user_id"`
	AchievementID   string    `gorm:"type:uuid;not null;uniqueIndex:user_achievements_ux1;column:achievement_id" json:"achievement_id"`
	AchievementName string    `gorm:"type:varchar(100);not null;column:achievement_name" json:"achievement_name"`
	UserName        string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserAvatar      string    `gorm:"type:varchar(1024);column:user_avatar" json:"user_avatar"`
	GrantedAt       time.Time `gorm:"not null;column:granted_at" json:"granted_at"`
}

// TableName specifies the table name for UserAchievement
func (UserAchievement) TableName() string {
	return "user_achievements"
}
