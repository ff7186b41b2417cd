package models

import (
	"time"
)

// User represents a platform member as seen by the admin dashboard
type User struct {
	ID              string     `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name            string     `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;column:email" json:"email"`
	AvatarURL       string     `gorm:"type:varchar(1024);not null;default:'';column:avatar_url" json:"avatar_url"`
	Role            string     `gorm:"type:varchar(20);not null;default:'user';column:role" json:"role"`
	CommunityPoints int        `gorm:"not null;default:0;column:community_points" json:"community_points"`
	BadgeLevel      int        `gorm:"not null;default:0;column:badge_level" json:"badge_level"`
	IsActive        bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt       time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	DeactivatedAt   *time.Time `gorm:"column:deactivated_at" json:"deactivated_at,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// User role constants
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super admin"
)

// UnknownUserID is the placeholder id substituted when an author lookup
// finds no matching user.
const UnknownUserID = "unknown"

// UnknownUser returns the placeholder user substituted for dangling
// author references during enrichment.
func UnknownUser() User {
	return User{
		ID:   UnknownUserID,
		Name: "Người dùng không xác định",
	}
}

// UserStreak tracks a user's consecutive-day login streak
type UserStreak struct {
	ID            string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	CurrentStreak int       `gorm:"not null;default:0;column:current_streak" json:"current_streak"`
	LongestStreak int       `gorm:"not null;default:0;column:longest_streak" json:"longest_streak"`
	LastLoginAt   time.Time `gorm:"column:last_login_at" json:"last_login_at"`
}

// TableName specifies the table name for UserStreak
func (UserStreak) TableName() string {
	return "user_streaks"
}

// UserUsage tracks per-feature daily usage counts for a user
type UserUsage struct {
	ID         string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Feature    string    `gorm:"type:varchar(50);not null;column:feature" json:"feature"`
	DailyCount int       `gorm:"not null;default:0;column:daily_count" json:"daily_count"`
	RecordedAt time.Time `gorm:"column:recorded_at" json:"recorded_at"`
}

// TableName specifies the table name for UserUsage
func (UserUsage) TableName() string {
	return "user_usage"
}
