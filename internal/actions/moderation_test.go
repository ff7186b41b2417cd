package actions

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lingohub/admind/internal/enrich"
	"github.com/lingohub/admind/internal/models"
	"github.com/lingohub/admind/internal/store"
)

func TestAddViolationWithRuleJoins(t *testing.T) {
	a, st := newTestActions(store.State{}, Services{})

	id, err := a.AddViolation("u1", models.TargetPost, "p1", "high", "spam", []string{"r1", "r2"})
	if err != nil {
		t.Fatalf("AddViolation failed: %v", err)
	}

	snap := st.Snapshot()
	if len(snap.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(snap.Violations))
	}
	if snap.Violations[0].ID != id {
		t.Errorf("Returned id %s does not match stored %s", id, snap.Violations[0].ID)
	}
	if len(snap.ViolationRules) != 2 {
		t.Errorf("Expected 2 rule joins, got %d", len(snap.ViolationRules))
	}
	for _, j := range snap.ViolationRules {
		if j.ViolationID != id {
			t.Errorf("Join %s points at %s, want %s", j.ID, j.ViolationID, id)
		}
	}
}

func TestAddViolationInvalidTarget(t *testing.T) {
	a, _ := newTestActions(store.State{}, Services{})

	if _, err := a.AddViolation("u1", "thread", "x", "low", "", nil); !errors.Is(err, ErrInvalidTargetType) {
		t.Errorf("Expected ErrInvalidTargetType, got %v", err)
	}
}

func TestRemoveViolationByTargetCascades(t *testing.T) {
	a, st := newTestActions(store.State{
		Violations: []models.Violation{
			{ID: "v1", TargetType: models.TargetPost, TargetID: "p1"},
			{ID: "v2", TargetType: models.TargetPost, TargetID: "p2"},
		},
		ViolationRules: []models.ViolationRule{
			{ID: "j1", ViolationID: "v1", RuleID: "r1"},
			{ID: "j2", ViolationID: "v1", RuleID: "r2"},
			{ID: "j3", ViolationID: "v2", RuleID: "r1"},
		},
	}, Services{})

	if !a.RemoveViolationByTarget(models.TargetPost, "p1") {
		t.Fatal("Expected removal to report success")
	}

	snap := st.Snapshot()
	if len(snap.Violations) != 1 || snap.Violations[0].ID != "v2" {
		t.Errorf("Expected only v2 to survive, got %+v", snap.Violations)
	}
	if len(snap.ViolationRules) != 1 || snap.ViolationRules[0].ID != "j3" {
		t.Errorf("Expected only j3 to survive, got %+v", snap.ViolationRules)
	}

	if a.RemoveViolationByTarget(models.TargetPost, "p1") {
		t.Error("Second removal of the same target should report false")
	}
}

func TestCreateAppealRequiresViolation(t *testing.T) {
	a, _ := newTestActions(store.State{}, Services{})

	if _, err := a.CreateAppeal("missing", "u1", "unfair"); !errors.Is(err, ErrViolationNotFound) {
		t.Errorf("Expected ErrViolationNotFound, got %v", err)
	}
}

func TestResolveAppealRejection(t *testing.T) {
	a, st := newTestActions(store.State{
		Violations: []models.Violation{{ID: "v1", TargetType: models.TargetPost, TargetID: "p1"}},
		Appeals: []models.Appeal{
			{ID: "ap1", ViolationID: "v1", UserID: "u1", Status: models.AppealPending},
		},
	}, Services{})

	err := a.ResolveAppeal("ap1", AppealResolution{Status: models.AppealRejected, ResolvedBy: "admin1"})
	if err != nil {
		t.Fatalf("ResolveAppeal failed: %v", err)
	}

	snap := st.Snapshot()
	appeal := snap.Appeals[0]
	if appeal.Status != models.AppealRejected {
		t.Errorf("Expected rejected status, got %s", appeal.Status)
	}
	if appeal.ResolvedBy != "admin1" || appeal.ResolvedAt == nil {
		t.Errorf("Expected resolution metadata, got %+v", appeal)
	}
	if len(appeal.ViolationSnapshot) != 0 {
		t.Error("Rejection must not freeze a snapshot")
	}
	if len(snap.Violations) != 1 {
		t.Error("Rejection must keep the live violation")
	}
}

func TestResolveAppealAcceptance(t *testing.T) {
	deleted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	a, st := newTestActions(store.State{
		Users: []models.User{{ID: "u1", Name: "Minh"}},
		Posts: []models.Post{
			{ID: "p1", UserID: "u1", Status: models.PostStatusHidden, DeletedAt: &deleted},
		},
		Violations: []models.Violation{
			{ID: "v1", UserID: "u1", TargetType: models.TargetPost, TargetID: "p1", Severity: "high"},
		},
		ViolationRules: []models.ViolationRule{
			{ID: "j1", ViolationID: "v1", RuleID: "r1"},
		},
		CommunityRules: []models.CommunityRule{{ID: "r1", Title: "no spam"}},
		Appeals: []models.Appeal{
			{ID: "ap1", ViolationID: "v1", UserID: "u1", Status: models.AppealPending},
		},
	}, Services{})

	err := a.ResolveAppeal("ap1", AppealResolution{Status: models.AppealAccepted, ResolvedBy: "admin1"})
	if err != nil {
		t.Fatalf("ResolveAppeal failed: %v", err)
	}

	snap := st.Snapshot()

	// Violation and its joins are gone
	if len(snap.Violations) != 0 {
		t.Errorf("Expected violation deleted, got %+v", snap.Violations)
	}
	if len(snap.ViolationRules) != 0 {
		t.Errorf("Expected rule joins deleted, got %+v", snap.ViolationRules)
	}

	// Post target restored
	post := snap.Posts[0]
	if post.Status != models.PostStatusPublished {
		t.Errorf("Expected post restored to published, got %s", post.Status)
	}
	if post.DeletedAt != nil {
		t.Error("Expected post soft-delete marker cleared")
	}

	// Appeal carries the frozen enriched violation
	appeal := snap.Appeals[0]
	if appeal.Status != models.AppealAccepted {
		t.Fatalf("Expected accepted status, got %s", appeal.Status)
	}
	var frozen enrich.Violation
	if err := json.Unmarshal(appeal.ViolationSnapshot, &frozen); err != nil {
		t.Fatalf("Snapshot is not an enriched violation: %v", err)
	}
	if frozen.ID != "v1" || frozen.Severity != "high" {
		t.Errorf("Unexpected frozen violation: %+v", frozen.Violation)
	}
	if frozen.User.Name != "Minh" {
		t.Errorf("Snapshot should capture the offender at acceptance, got %q", frozen.User.Name)
	}
	if len(frozen.Rules) != 1 || frozen.Rules[0].Title != "no spam" {
		t.Errorf("Snapshot should capture resolved rules, got %+v", frozen.Rules)
	}
}

func TestResolveAppealAlreadyResolved(t *testing.T) {
	a, _ := newTestActions(store.State{
		Appeals: []models.Appeal{
			{ID: "ap1", ViolationID: "v1", Status: models.AppealRejected},
		},
	}, Services{})

	err := a.ResolveAppeal("ap1", AppealResolution{Status: models.AppealAccepted})
	if !errors.Is(err, ErrAppealAlreadyResolved) {
		t.Errorf("Expected ErrAppealAlreadyResolved, got %v", err)
	}
}

func TestResolveAppealNotFound(t *testing.T) {
	a, _ := newTestActions(store.State{}, Services{})

	err := a.ResolveAppeal("missing", AppealResolution{Status: models.AppealAccepted})
	if !errors.Is(err, ErrAppealNotFound) {
		t.Errorf("Expected ErrAppealNotFound, got %v", err)
	}
}
