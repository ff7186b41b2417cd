package models

import (
	"time"
)

// Post represents a community post
type Post struct {
	ID        string     `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title     string     `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Content   string     `gorm:"type:text;column:content" json:"content"`
	Status    string     `gorm:"type:varchar(20);not null;default:'published';column:status" json:"status"`
	IsPinned  bool       `gorm:"not null;default:false;column:is_pinned" json:"is_pinned"`
	CreatedAt time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index;column:deleted_at" json:"deleted_at,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// Post status constants
const (
	PostStatusPublished = "published"
	PostStatusHidden    = "hidden"
	PostStatusRemoved   = "removed"
)

// Comment represents a comment on a post
type Comment struct {
	ID        string     `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	PostID    string     `gorm:"type:uuid;not null;index;column:post_id" json:"post_id"`
	UserID    string     `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Content   string     `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	DeletedAt *time.Time `gorm:"index;column:deleted_at" json:"deleted_at,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// PostLike is a like join row, unique per (post, user) pair
type PostLike struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:post_likes_ux1;column:post_id" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:post_likes_ux1;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for PostLike
func (PostLike) TableName() string {
	return "post_likes"
}

// PostView is a view join row, unique per (post, user) pair
type PostView struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:post_views_ux1;column:post_id" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:post_views_ux1;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for PostView
func (PostView) TableName() string {
	return "post_views"
}
