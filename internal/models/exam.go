package models

import (
	"time"
)

// Question is one question within an exam section. Explanation is a
// tri-state field: nil means no explanation, a pointer to "" means an
// explanation slot exists but is empty, a pointer to text means it is
// filled. The distinction drives the authoring UI's add/remove
// explanation contract and must not be collapsed.
type Question struct {
	ID          string  `json:"id"`
	Prompt      string  `json:"prompt"`
	Answer      string  `json:"answer"`
	Explanation *string `json:"explanation,omitempty"`
	Position    int     `json:"position"`
}

// Exam represents a language exam definition. When an exam with
// existing attempts is edited, the backend forks it: the old version
// is archived in place and a new entity is created.
type Exam struct {
	ID           string     `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title        string     `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Description  string     `gorm:"type:text;column:description" json:"description"`
	Language     string     `gorm:"type:varchar(20);not null;column:language" json:"language"`
	Level        string     `gorm:"type:varchar(20);column:level" json:"level"`
	IsPublished  bool       `gorm:"not null;default:false;column:is_published" json:"is_published"`
	AttemptCount int        `gorm:"not null;default:0;column:attempt_count" json:"attempt_count"`
	Version      int        `gorm:"not null;default:1;column:version" json:"version"`
	Questions    []Question `gorm:"type:jsonb;serializer:json;column:questions" json:"questions"`
	CreatedAt    time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Exam
func (Exam) TableName() string {
	return "exams"
}
