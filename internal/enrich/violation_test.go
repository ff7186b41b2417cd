package enrich

import (
	"testing"

	"github.com/lingohub/admind/internal/models"
)

func TestOneViolationTargetDispatch(t *testing.T) {
	users := []models.User{{ID: "u1", Name: "offender"}, {ID: "u2", Name: "target"}}
	posts := []models.Post{{ID: "p1", Title: "a post"}}
	comments := []models.Comment{{ID: "c1", Content: "a comment"}}

	tests := []struct {
		name      string
		violation models.Violation
		checkPost bool
		checkCmt  bool
		checkUser bool
	}{
		{
			name:      "post target",
			violation: models.Violation{ID: "v1", UserID: "u1", TargetType: models.TargetPost, TargetID: "p1"},
			checkPost: true,
		},
		{
			name:      "comment target",
			violation: models.Violation{ID: "v2", UserID: "u1", TargetType: models.TargetComment, TargetID: "c1"},
			checkCmt:  true,
		},
		{
			name:      "user target",
			violation: models.Violation{ID: "v3", UserID: "u1", TargetType: models.TargetUser, TargetID: "u2"},
			checkUser: true,
		},
		{
			name:      "dangling target",
			violation: models.Violation{ID: "v4", UserID: "u1", TargetType: models.TargetPost, TargetID: "missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OneViolation(tt.violation, users, posts, comments, nil, nil)

			if got.Target.Type != tt.violation.TargetType {
				t.Errorf("Expected target type %s, got %s", tt.violation.TargetType, got.Target.Type)
			}
			if (got.Target.Post != nil) != tt.checkPost {
				t.Errorf("Post presence = %v, want %v", got.Target.Post != nil, tt.checkPost)
			}
			if (got.Target.Comment != nil) != tt.checkCmt {
				t.Errorf("Comment presence = %v, want %v", got.Target.Comment != nil, tt.checkCmt)
			}
			if (got.Target.User != nil) != tt.checkUser {
				t.Errorf("User presence = %v, want %v", got.Target.User != nil, tt.checkUser)
			}
			if got.User.Name != "offender" {
				t.Errorf("Expected offender join, got %q", got.User.Name)
			}
		})
	}
}

func TestOneViolationRuleJoins(t *testing.T) {
	rules := []models.CommunityRule{
		{ID: "r1", Title: "no spam"},
		{ID: "r2", Title: "be kind"},
	}
	joins := []models.ViolationRule{
		{ID: "j1", ViolationID: "v1", RuleID: "r1"},
		{ID: "j2", ViolationID: "v1", RuleID: "r2"},
		{ID: "j3", ViolationID: "v1", RuleID: "deleted-rule"},
		{ID: "j4", ViolationID: "other", RuleID: "r1"},
	}

	v := models.Violation{ID: "v1", UserID: "ghost", TargetType: models.TargetUser}
	got := OneViolation(v, nil, nil, nil, joins, rules)

	if len(got.Rules) != 2 {
		t.Fatalf("Expected 2 resolved rules, got %d", len(got.Rules))
	}
	if got.User.ID != models.UnknownUserID {
		t.Errorf("Dangling offender should degrade to placeholder, got %q", got.User.ID)
	}
}
