package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

func TestUpdateExamPlainEdit(t *testing.T) {
	svc := Services{Exams: &fakeExamService{
		update: func(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error) {
			return []models.Exam{{ID: id, Title: "edited", Version: 1}}, nil
		},
	}}
	a, st := newTestActions(store.State{
		Exams: []models.Exam{{ID: "e1", Title: "original"}},
	}, svc)

	result, err := a.UpdateExam(context.Background(), "e1", ExamPayload{})
	if err != nil {
		t.Fatalf("UpdateExam failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected 1 entity for a plain edit, got %d", len(result))
	}

	snap := st.Snapshot()
	if len(snap.Exams) != 1 || snap.Exams[0].Title != "edited" {
		t.Errorf("Expected in-place replacement, got %+v", snap.Exams)
	}
}

func TestUpdateExamFork(t *testing.T) {
	forked := []models.Exam{
		{ID: "e1", Title: "old", IsPublished: false, Version: 1},
		{ID: "e2", Title: "new", Version: 2},
	}
	svc := Services{Exams: &fakeExamService{
		update: func(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error) {
			return forked, nil
		},
	}}
	a, st := newTestActions(store.State{
		Exams: []models.Exam{
			{ID: "e1", Title: "original", IsPublished: true, AttemptCount: 3},
			{ID: "e0", Title: "unrelated"},
		},
	}, svc)

	if _, err := a.UpdateExam(context.Background(), "e1", ExamPayload{}); err != nil {
		t.Fatalf("UpdateExam failed: %v", err)
	}

	snap := st.Snapshot()
	if len(snap.Exams) != 3 {
		t.Fatalf("Expected 3 exams after fork, got %d", len(snap.Exams))
	}
	if snap.Exams[0].ID != "e2" {
		t.Errorf("Fresh fork should be prepended, got %s first", snap.Exams[0].ID)
	}

	// Replaying the same collaborator response must not duplicate e2
	if _, err := a.UpdateExam(context.Background(), "e1", ExamPayload{}); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	snap = st.Snapshot()
	if len(snap.Exams) != 3 {
		t.Errorf("Replay must be idempotent, got %d exams", len(snap.Exams))
	}

	forkNote := false
	for _, e := range snap.AuditLog {
		if strings.Contains(e.Description, "duplicated as e2") {
			forkNote = true
		}
	}
	if !forkNote {
		t.Error("Fork should be noted in the audit description")
	}
}

func TestUpdateExamAuditActionFollowsPayload(t *testing.T) {
	tr := true
	fa := false

	tests := []struct {
		name       string
		payload    ExamPayload
		wantAction string
	}{
		{"no publish field", ExamPayload{}, models.ActionUpdateExam},
		{"publish requested", ExamPayload{IsPublished: &tr}, models.ActionPublishExam},
		{"unpublish requested", ExamPayload{IsPublished: &fa}, models.ActionUnpublishExam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := Services{Exams: &fakeExamService{
				update: func(ctx context.Context, id string, payload ExamPayload) ([]models.Exam, error) {
					return []models.Exam{{ID: id}}, nil
				},
			}}
			a, st := newTestActions(store.State{
				Exams: []models.Exam{{ID: "e1"}},
			}, svc)

			if _, err := a.UpdateExam(context.Background(), "e1", tt.payload); err != nil {
				t.Fatalf("UpdateExam failed: %v", err)
			}

			snap := st.Snapshot()
			if len(snap.AuditLog) != 1 {
				t.Fatalf("Expected 1 audit entry, got %d", len(snap.AuditLog))
			}
			if snap.AuditLog[0].Action != tt.wantAction {
				t.Errorf("Expected action %s, got %s", tt.wantAction, snap.AuditLog[0].Action)
			}
		})
	}
}

func TestCreateExamPrepends(t *testing.T) {
	svc := Services{Exams: &fakeExamService{
		create: func(ctx context.Context, payload ExamPayload) (*models.Exam, error) {
			return &models.Exam{ID: "fresh", Title: "new exam"}, nil
		},
	}}
	a, st := newTestActions(store.State{
		Exams: []models.Exam{{ID: "existing"}},
	}, svc)

	created, err := a.CreateExam(context.Background(), ExamPayload{})
	if err != nil {
		t.Fatalf("CreateExam failed: %v", err)
	}
	if created.ID != "fresh" {
		t.Errorf("Expected collaborator shape returned, got %+v", created)
	}

	snap := st.Snapshot()
	if snap.Exams[0].ID != "fresh" {
		t.Errorf("Created exam should be prepended, got %s first", snap.Exams[0].ID)
	}
}

func TestDeleteExam(t *testing.T) {
	svc := Services{Exams: &fakeExamService{}}
	a, st := newTestActions(store.State{
		Exams: []models.Exam{{ID: "e1"}, {ID: "e2"}},
	}, svc)

	if err := a.DeleteExam(context.Background(), "e1"); err != nil {
		t.Fatalf("DeleteExam failed: %v", err)
	}

	snap := st.Snapshot()
	if len(snap.Exams) != 1 || snap.Exams[0].ID != "e2" {
		t.Errorf("Expected only e2 to remain, got %+v", snap.Exams)
	}
}
