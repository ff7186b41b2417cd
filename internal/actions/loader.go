package actions

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/lingohub/admind/internal/cache"
	"github.com/lingohub/admind/internal/models"
)

// loadCached reads a collection through the namespace cache: a fresh
// cached entry is served as-is, otherwise the collaborator is fetched
// and the result written back under the versioned envelope. Cache
// write failures are logged, never fatal.
func loadCached[T any](a *Actions, key string, fetch func() ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := a.cache.GetJSON(key, &cached)
	if err != nil {
		a.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := a.cache.SetJSON(key, data); err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
		a.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return data, nil
}

// LoadExams fetches exams through the cache and replaces the local list
func (a *Actions) LoadExams(ctx context.Context, params ListParams) ([]models.Exam, error) {
	data, err := loadCached(a, cache.KeyExams, func() ([]models.Exam, error) {
		res, err := a.svc.Exams.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateExams(func([]models.Exam) []models.Exam { return data })
	return data, nil
}

// LoadRules fetches community rules through the cache
func (a *Actions) LoadRules(ctx context.Context, params ListParams) ([]models.CommunityRule, error) {
	data, err := loadCached(a, cache.KeyRules, func() ([]models.CommunityRule, error) {
		res, err := a.svc.Rules.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateCommunityRules(func([]models.CommunityRule) []models.CommunityRule { return data })
	return data, nil
}

// LoadAchievements fetches achievements through the cache
func (a *Actions) LoadAchievements(ctx context.Context, params ListParams) ([]models.Achievement, error) {
	data, err := loadCached(a, cache.KeyAchievements, func() ([]models.Achievement, error) {
		res, err := a.svc.Achievements.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateAchievements(func([]models.Achievement) []models.Achievement { return data })
	return data, nil
}

// LoadBadges fetches the badge ladder through the cache
func (a *Actions) LoadBadges(ctx context.Context, params ListParams) ([]models.BadgeLevel, error) {
	data, err := loadCached(a, cache.KeyBadges, func() ([]models.BadgeLevel, error) {
		res, err := a.svc.Badges.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateBadgeLevels(func([]models.BadgeLevel) []models.BadgeLevel { return data })
	return data, nil
}

// LoadSubscriptions fetches plans through the cache
func (a *Actions) LoadSubscriptions(ctx context.Context, params ListParams) ([]models.Subscription, error) {
	data, err := loadCached(a, cache.KeySubscriptions, func() ([]models.Subscription, error) {
		res, err := a.svc.Subscriptions.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateSubscriptions(func([]models.Subscription) []models.Subscription { return data })
	return data, nil
}

// LoadUserSubscriptions fetches user subscriptions through the cache
func (a *Actions) LoadUserSubscriptions(ctx context.Context, params ListParams) ([]models.UserSubscription, error) {
	data, err := loadCached(a, cache.KeyUserSubscriptions, func() ([]models.UserSubscription, error) {
		res, err := a.svc.UserSubscriptions.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateUserSubscriptions(func([]models.UserSubscription) []models.UserSubscription { return data })
	return data, nil
}

// LoadPayments fetches payments through the cache
func (a *Actions) LoadPayments(ctx context.Context, params ListParams) ([]models.Payment, error) {
	data, err := loadCached(a, cache.KeyPayments, func() ([]models.Payment, error) {
		res, err := a.svc.Payments.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdatePayments(func([]models.Payment) []models.Payment { return data })
	return data, nil
}

// LoadRefunds fetches refunds through the cache
func (a *Actions) LoadRefunds(ctx context.Context, params ListParams) ([]models.Refund, error) {
	data, err := loadCached(a, cache.KeyRefunds, func() ([]models.Refund, error) {
		res, err := a.svc.Refunds.Fetch(ctx, params)
		return res.Data, err
	})
	if err != nil {
		return nil, err
	}
	a.store.UpdateRefunds(func([]models.Refund) []models.Refund { return data })
	return data, nil
}
