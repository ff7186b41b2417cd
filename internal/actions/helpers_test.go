package actions

import (
	"context"
	"time"

	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// newTestActions builds a catalog over a seeded store, a disabled
// cache and the given collaborator fakes.
func newTestActions(state store.State, svc Services) (*Actions, *store.Store) {
	st := store.NewWithClock(fixedClock)
	st.Seed(state)
	return NewWithClock(st, nil, svc, fixedClock), st
}

type fakeExamService struct {
	update func(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error)
	create func(ctx context.Context, payload ExamPayload) (*models.Exam, error)
}

func (f *fakeExamService) Fetch(ctx context.Context, params ListParams) (ListResult[models.Exam], error) {
	return ListResult[models.Exam]{}, nil
}

func (f *fakeExamService) Create(ctx context.Context, payload ExamPayload) (*models.Exam, error) {
	if f.create != nil {
		return f.create(ctx, payload)
	}
	return &models.Exam{ID: "created"}, nil
}

func (f *fakeExamService) Update(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error) {
	return f.update(ctx, id, payload)
}

func (f *fakeExamService) Delete(ctx context.Context, id string) error { return nil }

type fakeBadgeService struct {
	lastCreate *BadgePayload
	lastUpdate *BadgePayload
	result     models.BadgeLevel
}

func (f *fakeBadgeService) Fetch(ctx context.Context, params ListParams) (ListResult[models.BadgeLevel], error) {
	return ListResult[models.BadgeLevel]{}, nil
}

func (f *fakeBadgeService) Create(ctx context.Context, payload BadgePayload) (*models.BadgeLevel, error) {
	f.lastCreate = &payload
	out := f.result
	return &out, nil
}

func (f *fakeBadgeService) Update(ctx context.Context, id string, payload BadgePayload) (*models.BadgeLevel, error) {
	f.lastUpdate = &payload
	out := f.result
	out.ID = id
	return &out, nil
}

func (f *fakeBadgeService) Delete(ctx context.Context, id string) error { return nil }
