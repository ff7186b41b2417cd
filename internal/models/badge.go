package models

import (
	"time"
)

// BadgeLevel is one rung of the community-points badge ladder. Levels
// 0, 4 and 5 are reserved system badges (new member, admin, super
// admin): their min_points are immutable and they can be neither
// deactivated nor deleted.
type BadgeLevel struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Level     int       `gorm:"not null;uniqueIndex;column:level" json:"level"`
	Name      string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Icon      string    `gorm:"type:varchar(50);column:icon" json:"icon"`
	MinPoints int       `gorm:"not null;default:0;column:min_points" json:"min_points"`
	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for BadgeLevel
func (BadgeLevel) TableName() string {
	return "badge_levels"
}

// Reserved system badge levels
const (
	BadgeLevelNew        = 0
	BadgeLevelAdmin      = 4
	BadgeLevelSuperAdmin = 5
)

// IsReserved reports whether the badge is one of the immutable system levels
func (b BadgeLevel) IsReserved() bool {
	switch b.Level {
	case BadgeLevelNew, BadgeLevelAdmin, BadgeLevelSuperAdmin:
		return true
	}
	return false
}
