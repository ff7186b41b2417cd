package models

import (
	"time"
)

// Notification audience constants
const (
	AudienceAll   = "all"
	AudienceUser  = "user"
	AudienceAdmin = "admin"
)

// Notification represents a dashboard or push notification
type Notification struct {
	ID         string     `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title      string     `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Content    string     `gorm:"type:text;column:content" json:"content"`
	Audience   string     `gorm:"type:varchar(20);not null;default:'all';column:audience" json:"audience"`
	UserID     string     `gorm:"type:uuid;column:user_id" json:"user_id,omitempty"`
	FromSystem bool       `gorm:"not null;default:false;column:from_system" json:"from_system"`
	IsPushSent bool       `gorm:"not null;default:false;column:is_push_sent" json:"is_push_sent"`
	ReadAt     *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
