package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"jobtrail/internal/domain/user"
)

func TestProfileService_Get_AbsentIsNilNotError(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	p, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile, got %+v", p)
	}
}

func TestProfileService_Upsert_CreatesOnFirstWrite(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	userID := uuid.New()

	exp := "3 years backend"
	p, err := svc.Upsert(context.Background(), userID, user.ProfilePatch{
		Experience: &exp,
		Skills:     []string{"Go"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.UserID != userID {
		t.Fatalf("profile bound to wrong user")
	}
	if p.Experience == nil || *p.Experience != exp {
		t.Fatalf("experience not stored")
	}

	got, err := svc.Get(context.Background(), userID)
	if err != nil || got == nil {
		t.Fatalf("expected profile after upsert, got %v / %v", got, err)
	}
}

func TestProfileService_Upsert_PatchesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	userID := uuid.New()

	exp := "3 years backend"
	edu := "BSc CS"
	if _, err := svc.Upsert(context.Background(), userID, user.ProfilePatch{
		Experience: &exp,
		Education:  &edu,
		Skills:     []string{"Go"},
	}); err != nil {
		t.Fatalf("seed upsert: %v", err)
	}

	newExp := "4 years backend"
	p, err := svc.Upsert(context.Background(), userID, user.ProfilePatch{Experience: &newExp})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Experience == nil || *p.Experience != newExp {
		t.Fatalf("experience not patched")
	}
	if p.Education == nil || *p.Education != edu {
		t.Fatalf("education must survive a partial patch")
	}
	if len(p.Skills) != 1 || p.Skills[0] != "Go" {
		t.Fatalf("skills must survive a partial patch")
	}
}

func TestProfileService_Upsert_NilSkillsBecomesEmptyList(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	p, err := svc.Upsert(context.Background(), uuid.New(), user.ProfilePatch{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Skills == nil {
		t.Fatalf("skills must serialize as [], not null")
	}
}
