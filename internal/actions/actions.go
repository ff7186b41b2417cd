// Package actions is the mutation catalog behind the admin dashboard.
// Local-only entities (likes, views, moderation, notifications) commit
// optimistically to the store; backend-backed entities call their
// collaborator first and commit only the server's returned shape, then
// invalidate the matching cache namespace and append an audit entry.
package actions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lingohub/admind/internal/cache"
	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
	"github.com/lingohub/admind/pkg/logging"
)

// ListParams carries pagination and search for fetch calls
type ListParams struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Search  string `json:"search,omitempty"`
}

// ListMeta describes a fetched page
type ListMeta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// ListResult is the {data, meta} shape every fetch collaborator returns
type ListResult[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// ExamService is the backend collaborator for exams. Update returns
// one element for a plain edit, or [old, new] when the backend forks
// an exam that already has attempts.
type ExamService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.Exam], error)
	Create(ctx context.Context, payload ExamPayload) (*models.Exam, error)
	Update(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error)
	Delete(ctx context.Context, id string) error
}

// RuleService is the backend collaborator for community rules
type RuleService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.CommunityRule], error)
	Create(ctx context.Context, payload RulePayload) (*models.CommunityRule, error)
	Update(ctx context.Context, id string, payload RulePayload) (*models.CommunityRule, error)
	Delete(ctx context.Context, id string) error
}

// AchievementService is the backend collaborator for achievements
type AchievementService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.Achievement], error)
	Create(ctx context.Context, payload AchievementPayload) (*models.Achievement, error)
	Update(ctx context.Context, id string, payload AchievementPayload) (*models.Achievement, error)
	Delete(ctx context.Context, id string) error
}

// BadgeService is the backend collaborator for badge levels
type BadgeService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.BadgeLevel], error)
	Create(ctx context.Context, payload BadgePayload) (*models.BadgeLevel, error)
	Update(ctx context.Context, id string, payload BadgePayload) (*models.BadgeLevel, error)
	Delete(ctx context.Context, id string) error
}

// SubscriptionService is the backend collaborator for subscription plans
type SubscriptionService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.Subscription], error)
	Create(ctx context.Context, payload SubscriptionPayload) (*models.Subscription, error)
	Update(ctx context.Context, id string, payload SubscriptionPayload) (*models.Subscription, error)
	Delete(ctx context.Context, id string) error
}

// UserSubscriptionService is the backend collaborator for user subscriptions
type UserSubscriptionService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.UserSubscription], error)
	Create(ctx context.Context, payload UserSubscriptionPayload) (*models.UserSubscription, error)
	Update(ctx context.Context, id string, payload UserSubscriptionPayload) (*models.UserSubscription, error)
	Delete(ctx context.Context, id string) error
}

// PaymentService is the backend collaborator for payments
type PaymentService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.Payment], error)
	Create(ctx context.Context, payload PaymentPayload) (*models.Payment, error)
	Update(ctx context.Context, id string, payload PaymentPayload) (*models.Payment, error)
}

// RefundService is the backend collaborator for refunds
type RefundService interface {
	Fetch(ctx context.Context, params ListParams) (ListResult[models.Refund], error)
	Create(ctx context.Context, payload RefundPayload) (*models.Refund, error)
	Update(ctx context.Context, id string, payload RefundPayload) (*models.Refund, error)
}

// Services bundles every backend collaborator
type Services struct {
	Exams             ExamService
	Rules             RuleService
	Achievements      AchievementService
	Badges            BadgeService
	Subscriptions     SubscriptionService
	UserSubscriptions UserSubscriptionService
	Payments          PaymentService
	Refunds           RefundService
}

// Actions is the dispatch catalog
type Actions struct {
	store  *store.Store
	cache  *cache.Cache
	svc    Services
	logger *zap.Logger
	now    func() time.Time
}

// New creates the action catalog over a store, cache and collaborators
func New(st *store.Store, c *cache.Cache, svc Services) *Actions {
	return &Actions{
		store:  st,
		cache:  c,
		svc:    svc,
		logger: logging.GetLogger().With(zap.String("component", "actions")),
		now:    time.Now,
	}
}

// NewWithClock creates the catalog with a fixed clock, for tests
func NewWithClock(st *store.Store, c *cache.Cache, svc Services, now func() time.Time) *Actions {
	a := New(st, c, svc)
	a.now = now
	return a
}

// Store exposes the underlying store for read paths
func (a *Actions) Store() *store.Store {
	return a.store
}

// audit appends a human-readable entry to the admin action log
func (a *Actions) audit(action, description string) {
	a.store.AppendAudit(models.AuditEntry{
		ID:          uuid.NewString(),
		Action:      action,
		Description: description,
		CreatedAt:   a.now(),
	})
	a.logger.Info("[AUDIT]",
		zap.String("action", action),
		zap.String("description", description))
}

// invalidate clears a cache namespace, logging rather than failing on
// cache errors: a stale read is recoverable, a failed action is not.
func (a *Actions) invalidate(namespace string) {
	if err := a.cache.Invalidate(namespace); err != nil {
		a.logger.Warn("cache invalidation failed",
			zap.String("namespace", namespace),
			zap.Error(err))
	}
}
