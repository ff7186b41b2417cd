package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lingohub/admind/internal/actions"
	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/pkg/telemetry"
)

// Repository provides database access methods
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Services returns the full collaborator bundle backed by this repository
func (r *Repository) Services() actions.Services {
	return actions.Services{
		Exams:             &ExamRepository{Repository: r},
		Rules:             &RuleRepository{Repository: r},
		Achievements:      &AchievementRepository{Repository: r},
		Badges:            &BadgeRepository{Repository: r},
		Subscriptions:     &SubscriptionRepository{Repository: r},
		UserSubscriptions: &UserSubscriptionRepository{Repository: r},
		Payments:          &PaymentRepository{Repository: r},
		Refunds:           &RefundRepository{Repository: r},
	}
}

// fetchPage runs the shared pagination query for a collection
func fetchPage[T any](ctx context.Context, db *gorm.DB, params actions.ListParams, search func(*gorm.DB, string) *gorm.DB) (actions.ListResult[T], error) {
	ctx, span := telemetry.StartSpan(ctx, "db.fetch_page")
	defer span.End()

	var result actions.ListResult[T]

	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = 50
	}

	var model T
	q := db.WithContext(ctx).Model(&model)
	if params.Search != "" && search != nil {
		q = search(q, params.Search)
	}

	if err := q.Count(&result.Meta.Total).Error; err != nil {
		return result, err
	}
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Find(&result.Data).Error; err != nil {
		return result, err
	}

	result.Meta.Page = page
	result.Meta.PerPage = perPage
	return result, nil
}

// ExamRepository implements the exam collaborator
type ExamRepository struct {
	*Repository
}

// Fetch returns a page of exams
func (r *ExamRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.Exam], error) {
	return fetchPage[models.Exam](ctx, r.db, params, func(q *gorm.DB, s string) *gorm.DB {
		return q.Where("title ILIKE ?", "%"+s+"%")
	})
}

// Create persists a new exam and returns the canonical shape
func (r *ExamRepository) Create(ctx context.Context, payload actions.ExamPayload) (*models.Exam, error) {
	now := r.now()
	exam := models.Exam{
		ID:        uuid.NewString(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyExamPayload(&exam, payload)

	if err := r.db.WithContext(ctx).Create(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// Update edits an exam. An exam that already has attempts is forked:
// the stored entity is archived unpublished and the edits land on a
// fresh entity with a bumped version; both are returned as [old, new].
// Exams without attempts are updated in place and returned alone.
func (r *ExamRepository) Update(ctx context.Context, id string, payload actions.ExamPayload) ([]models.Exam, error) {
	ctx, span := telemetry.StartSpan(ctx, "db.update_exam")
	defer span.End()

	var exam models.Exam
	if err := r.db.WithContext(ctx).First(&exam, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("exam %s not found", id)
		}
		return nil, err
	}

	if exam.AttemptCount == 0 {
		applyExamPayload(&exam, payload)
		exam.UpdatedAt = r.now()
		if err := r.db.WithContext(ctx).Save(&exam).Error; err != nil {
			return nil, err
		}
		return []models.Exam{exam}, nil
	}

	// Fork on edit after attempts exist
	now := r.now()
	fresh := exam
	fresh.ID = uuid.NewString()
	fresh.AttemptCount = 0
	fresh.Version = exam.Version + 1
	fresh.CreatedAt = now
	fresh.UpdatedAt = now
	applyExamPayload(&fresh, payload)

	exam.IsPublished = false
	exam.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&exam).Error; err != nil {
			return err
		}
		return tx.Create(&fresh).Error
	})
	if err != nil {
		return nil, err
	}
	return []models.Exam{exam, fresh}, nil
}

// Delete removes an exam
func (r *ExamRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Exam{}, "id = ?", id).Error
}

func applyExamPayload(exam *models.Exam, p actions.ExamPayload) {
	if p.Title != nil {
		exam.Title = *p.Title
	}
	if p.Description != nil {
		exam.Description = *p.Description
	}
	if p.Language != nil {
		exam.Language = *p.Language
	}
	if p.Level != nil {
		exam.Level = *p.Level
	}
	if p.IsPublished != nil {
		exam.IsPublished = *p.IsPublished
	}
	if p.Questions != nil {
		exam.Questions = *p.Questions
	}
}

// RuleRepository implements the community-rule collaborator
type RuleRepository struct {
	*Repository
}

// Fetch returns a page of community rules
func (r *RuleRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.CommunityRule], error) {
	return fetchPage[models.CommunityRule](ctx, r.db, params, func(q *gorm.DB, s string) *gorm.DB {
		return q.Where("title ILIKE ?", "%"+s+"%")
	})
}

// Create persists a new rule
func (r *RuleRepository) Create(ctx context.Context, payload actions.RulePayload) (*models.CommunityRule, error) {
	rule := models.CommunityRule{
		ID:              uuid.NewString(),
		SeverityDefault: "low",
		IsActive:        true,
		CreatedAt:       r.now(),
	}
	applyRulePayload(&rule, payload)

	if err := r.db.WithContext(ctx).Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// Update edits a rule
func (r *RuleRepository) Update(ctx context.Context, id string, payload actions.RulePayload) (*models.CommunityRule, error) {
	var rule models.CommunityRule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	applyRulePayload(&rule, payload)
	if err := r.db.WithContext(ctx).Save(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// Delete removes a rule
func (r *RuleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CommunityRule{}, "id = ?", id).Error
}

func applyRulePayload(rule *models.CommunityRule, p actions.RulePayload) {
	if p.Title != nil {
		rule.Title = *p.Title
	}
	if p.Description != nil {
		rule.Description = *p.Description
	}
	if p.SeverityDefault != nil {
		rule.SeverityDefault = *p.SeverityDefault
	}
	if p.IsActive != nil {
		rule.IsActive = *p.IsActive
	}
}

// AchievementRepository implements the achievement collaborator
type AchievementRepository struct {
	*Repository
}

// Fetch returns a page of achievements
func (r *AchievementRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.Achievement], error) {
	return fetchPage[models.Achievement](ctx, r.db, params, func(q *gorm.DB, s string) *gorm.DB {
		return q.Where("name ILIKE ?", "%"+s+"%")
	})
}

// Create persists a new achievement
func (r *AchievementRepository) Create(ctx context.Context, payload actions.AchievementPayload) (*models.Achievement, error) {
	achievement := models.Achievement{
		ID:        uuid.NewString(),
		IsActive:  true,
		CreatedAt: r.now(),
	}
	applyAchievementPayload(&achievement, payload)

	if err := r.db.WithContext(ctx).Create(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Update edits an achievement
func (r *AchievementRepository) Update(ctx context.Context, id string, payload actions.AchievementPayload) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := r.db.WithContext(ctx).First(&achievement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	applyAchievementPayload(&achievement, payload)
	if err := r.db.WithContext(ctx).Save(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Delete removes an achievement
func (r *AchievementRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Achievement{}, "id = ?", id).Error
}

func applyAchievementPayload(a *models.Achievement, p actions.AchievementPayload) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Icon != nil {
		a.Icon = *p.Icon
	}
	if p.Criteria != nil {
		a.Criteria = *p.Criteria
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}

// BadgeRepository implements the badge-level collaborator
type BadgeRepository struct {
	*Repository
}

// Fetch returns the badge ladder ordered ascending by min_points
func (r *BadgeRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.BadgeLevel], error) {
	var result actions.ListResult[models.BadgeLevel]
	if err := r.db.WithContext(ctx).Order("min_points ASC").Find(&result.Data).Error; err != nil {
		return result, err
	}
	result.Meta.Total = int64(len(result.Data))
	result.Meta.Page = 1
	result.Meta.PerPage = len(result.Data)
	return result, nil
}

// Create persists a new badge level
func (r *BadgeRepository) Create(ctx context.Context, payload actions.BadgePayload) (*models.BadgeLevel, error) {
	badge := models.BadgeLevel{
		ID:        uuid.NewString(),
		IsActive:  true,
		CreatedAt: r.now(),
	}
	applyBadgePayload(&badge, payload)

	if err := r.db.WithContext(ctx).Create(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

// Update edits a badge level
func (r *BadgeRepository) Update(ctx context.Context, id string, payload actions.BadgePayload) (*models.BadgeLevel, error) {
	var badge models.BadgeLevel
	if err := r.db.WithContext(ctx).First(&badge, "id = ?", id).Error; err != nil {
		return nil, err
	}
	applyBadgePayload(&badge, payload)
	if err := r.db.WithContext(ctx).Save(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

// Delete removes a badge level
func (r *BadgeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.BadgeLevel{}, "id = ?", id).Error
}

func applyBadgePayload(b *models.BadgeLevel, p actions.BadgePayload) {
	if p.Level != nil {
		b.Level = *p.Level
	}
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.MinPoints != nil {
		b.MinPoints = *p.MinPoints
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}

// SubscriptionRepository implements the plan collaborator
type SubscriptionRepository struct {
	*Repository
}

// Fetch returns a page of plans
func (r *SubscriptionRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.Subscription], error) {
	return fetchPage[models.Subscription](ctx, r.db, params, func(q *gorm.DB, s string) *gorm.DB {
		return q.Where("name ILIKE ?", "%"+s+"%")
	})
}

// Create persists a new plan
func (r *SubscriptionRepository) Create(ctx context.Context, payload actions.SubscriptionPayload) (*models.Subscription, error) {
	plan := models.Subscription{
		ID:        uuid.NewString(),
		IsActive:  true,
		CreatedAt: r.now(),
	}
	applySubscriptionPayload(&plan, payload)

	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update edits a plan
func (r *SubscriptionRepository) Update(ctx context.Context, id string, payload actions.SubscriptionPayload) (*models.Subscription, error) {
	var plan models.Subscription
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	applySubscriptionPayload(&plan, payload)
	if err := r.db.WithContext(ctx).Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// Delete removes a plan
func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Subscription{}, "id = ?", id).Error
}

func applySubscriptionPayload(s *models.Subscription, p actions.SubscriptionPayload) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.DurationDays != nil {
		s.DurationDays = *p.DurationDays
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}

// UserSubscriptionRepository implements the user-subscription collaborator
type UserSubscriptionRepository struct {
	*Repository
}

// Fetch returns a page of user subscriptions
func (r *UserSubscriptionRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.UserSubscription], error) {
	return fetchPage[models.UserSubscription](ctx, r.db, params, nil)
}

// Create assigns a plan to a user; the window is derived from the plan
func (r *UserSubscriptionRepository) Create(ctx context.Context, payload actions.UserSubscriptionPayload) (*models.UserSubscription, error) {
	if payload.UserID == nil || payload.PlanID == nil {
		return nil, fmt.Errorf("user_id and plan_id are required")
	}

	var plan models.Subscription
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", *payload.PlanID).Error; err != nil {
		return nil, fmt.Errorf("plan %s not found: %w", *payload.PlanID, err)
	}

	now := r.now()
	sub := models.UserSubscription{
		ID:        uuid.NewString(),
		UserID:    *payload.UserID,
		PlanID:    plan.ID,
		Status:    "active",
		StartsAt:  now,
		ExpiresAt: now.AddDate(0, 0, plan.DurationDays),
		CreatedAt: now,
	}
	if payload.Status != nil {
		sub.Status = *payload.Status
	}

	if err := r.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update edits a user subscription
func (r *UserSubscriptionRepository) Update(ctx context.Context, id string, payload actions.UserSubscriptionPayload) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if payload.Status != nil {
		sub.Status = *payload.Status
	}
	if err := r.db.WithContext(ctx).Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Delete cancels a user subscription
func (r *UserSubscriptionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.UserSubscription{}, "id = ?", id).Error
}

// PaymentRepository implements the payment collaborator
type PaymentRepository struct {
	*Repository
}

// Fetch returns a page of payments
func (r *PaymentRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.Payment], error) {
	return fetchPage[models.Payment](ctx, r.db, params, nil)
}

// Create records a payment
func (r *PaymentRepository) Create(ctx context.Context, payload actions.PaymentPayload) (*models.Payment, error) {
	payment := models.Payment{
		ID:        uuid.NewString(),
		Status:    "pending",
		CreatedAt: r.now(),
	}
	if payload.UserID != nil {
		payment.UserID = *payload.UserID
	}
	if payload.PlanID != nil {
		payment.PlanID = *payload.PlanID
	}
	if payload.Amount != nil {
		payment.Amount = *payload.Amount
	}
	if payload.Method != nil {
		payment.Method = *payload.Method
	}
	if payload.Status != nil {
		payment.Status = *payload.Status
	}

	if err := r.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update edits a payment's status
func (r *PaymentRepository) Update(ctx context.Context, id string, payload actions.PaymentPayload) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if payload.Status != nil {
		payment.Status = *payload.Status
	}
	if err := r.db.WithContext(ctx).Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// RefundRepository implements the refund collaborator
type RefundRepository struct {
	*Repository
}

// Fetch returns a page of refunds
func (r *RefundRepository) Fetch(ctx context.Context, params actions.ListParams) (actions.ListResult[models.Refund], error) {
	return fetchPage[models.Refund](ctx, r.db, params, nil)
}

// Create issues a refund against a payment
func (r *RefundRepository) Create(ctx context.Context, payload actions.RefundPayload) (*models.Refund, error) {
	if payload.PaymentID == nil {
		return nil, fmt.Errorf("payment_id is required")
	}

	refund := models.Refund{
		ID:        uuid.NewString(),
		PaymentID: *payload.PaymentID,
		Status:    "pending",
		CreatedAt: r.now(),
	}
	if payload.Amount != nil {
		refund.Amount = *payload.Amount
	}
	if payload.Reason != nil {
		refund.Reason = *payload.Reason
	}
	if payload.Status != nil {
		refund.Status = *payload.Status
	}

	if err := r.db.WithContext(ctx).Create(&refund).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}

// Update edits a refund's status
func (r *RefundRepository) Update(ctx context.Context, id string, payload actions.RefundPayload) (*models.Refund, error) {
	var refund models.Refund
	if err := r.db.WithContext(ctx).First(&refund, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if payload.Status != nil {
		refund.Status = *payload.Status
	}
	if err := r.db.WithContext(ctx).Save(&refund).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}
