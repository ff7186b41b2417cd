package actions

import (
	"context"
	"fmt"

	"github.com/lingohub/admind/internal/models"
)

// CreateExam creates an exam through the collaborator and prepends the
// persisted shape to the local list.
func (a *Actions) CreateExam(ctx context.Context, payload ExamPayload) (*models.Exam, error) {
	created, err := a.svc.Exams.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateExams(func(exams []models.Exam) []models.Exam {
		return append([]models.Exam{*created}, exams...)
	})

	a.invalidate("exams")
	a.audit(models.ActionCreateExam,
		fmt.Sprintf("Created exam %q (%s)", created.Title, created.ID))
	return created, nil
}

// UpdateExam edits an exam through the collaborator. The backend may
// fork: when the exam already has attempts it returns [old, new], the
// archived old version plus a fresh entity. The old entity is replaced
// in place; the new one is prepended only if its id is not already
// present, so replaying the same response is idempotent. The audit
// action type follows whether the request asked to change
// is_published, not what the entity ended up as.
func (a *Actions) UpdateExam(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error) {
	result, err := a.svc.Exams.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("exam collaborator returned no entities for %s", id)
	}

	forked := false
	a.store.UpdateExams(func(exams []models.Exam) []models.Exam {
		updated := result[0]
		for i := range exams {
			if exams[i].ID == updated.ID {
				exams[i] = updated
				break
			}
		}

		if len(result) > 1 {
			fresh := result[1]
			present := false
			for i := range exams {
				if exams[i].ID == fresh.ID {
					present = true
					break
				}
			}
			if !present {
				exams = append([]models.Exam{fresh}, exams...)
				forked = true
			}
		}
		return exams
	})

	a.invalidate("exams")

	action := models.ActionUpdateExam
	if payload.IsPublished != nil {
		if *payload.IsPublished {
			action = models.ActionPublishExam
		} else {
			action = models.ActionUnpublishExam
		}
	}

	desc := fmt.Sprintf("Updated exam %s", id)
	if forked {
		desc = fmt.Sprintf("Updated exam %s, duplicated as %s (existing attempts)", id, result[1].ID)
	}
	a.audit(action, desc)

	return result, nil
}

// DeleteExam removes an exam through the collaborator, then locally
func (a *Actions) DeleteExam(ctx context.Context, id string) error {
	if err := a.svc.Exams.Delete(ctx, id); err != nil {
		return err
	}

	a.store.UpdateExams(func(exams []models.Exam) []models.Exam {
		kept := exams[:0:0]
		for _, e := range exams {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		return kept
	})

	a.invalidate("exams")
	a.audit(models.ActionDeleteExam, fmt.Sprintf("Deleted exam %s", id))
	return nil
}
