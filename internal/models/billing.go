package models

import (
	"time"
)

// Subscription is a purchasable subscription plan
type Subscription struct {
	ID           string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description  string    `gorm:"type:text;column:description" json:"description"`
	Price        float64   `gorm:"type:decimal(10,2);not null;column:price" json:"price"`
	DurationDays int       `gorm:"not null;column:duration_days" json:"duration_days"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// UserSubscription links a user to a plan they hold
type UserSubscription struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	PlanID    string    `gorm:"type:uuid;not null;index;column:plan_id" json:"plan_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';column:status" json:"status"`
	StartsAt  time.Time `gorm:"not null;column:starts_at" json:"starts_at"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for UserSubscription
func (UserSubscription) TableName() string {
	return "user_subscriptions"
}

// Payment records a subscription purchase
type Payment struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	PlanID    string    `gorm:"type:uuid;column:plan_id" json:"plan_id,omitempty"`
	Amount    float64   `gorm:"type:decimal(10,2);not null;column:amount" json:"amount"`
	Method    string    `gorm:"type:varchar(30);column:method" json:"method"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';column:status" json:"status"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Refund records a refund issued against a payment
type Refund struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	PaymentID string    `gorm:"type:uuid;not null;index;column:payment_id" json:"payment_id"`
	Amount    float64   `gorm:"type:decimal(10,2);not null;column:amount" json:"amount"`
	Reason    string    `gorm:"type:text;column:reason" json:"reason"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';column:status" json:"status"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Refund
func (Refund) TableName() string {
	return "refunds"
}
