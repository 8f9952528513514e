package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"jobtrail/internal/domain/application"
	"jobtrail/internal/domain/document"
	"jobtrail/internal/domain/user"
	"jobtrail/internal/usecase/docgen"
)

func docFixture() (*fakeAppRepo, *fakeDocRepo, *fakeProfileRepo, user.User, application.Application) {
	apps := newFakeAppRepo()
	docs := &fakeDocRepo{}
	profiles := newFakeProfileRepo()

	usr := user.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane Doe"}
	app := application.Application{
		ID:       uuid.New(),
		UserID:   usr.ID,
		Company:  "Acme",
		Position: "Backend Engineer",
		Status:   application.StatusInterested,
	}
	apps.items[app.ID] = app
	return apps, docs, profiles, usr, app
}

func TestDocumentService_Generate_PersistsLLMOutput(t *testing.T) {
	apps, docs, profiles, usr, app := docFixture()
	client := &fakeLLM{reply: "Dear hiring manager, ..."}
	svc := NewDocumentService(apps, docs, profiles, client)

	doc, err := svc.Generate(context.Background(), usr, DocumentGenerateInput{
		ApplicationID: app.ID,
		Type:          document.TypeCoverLetter,
		Tone:          "professional",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc.Content != "Dear hiring manager, ..." {
		t.Fatalf("unexpected content %q", doc.Content)
	}
	if doc.ApplicationID != app.ID || doc.UserID != usr.ID {
		t.Fatalf("document bound to wrong owner")
	}
	if len(docs.created) != 1 {
		t.Fatalf("expected 1 stored document, got %d", len(docs.created))
	}
	if client.lastSys != docgen.SystemPrompt {
		t.Fatalf("wrong system prompt sent")
	}
	if !strings.Contains(client.lastMsg, "Acme") || !strings.Contains(client.lastMsg, "Backend Engineer") {
		t.Fatalf("prompt missing application fields: %q", client.lastMsg)
	}
}

func TestDocumentService_Generate_InvalidTypeDoesNotTouchLLMOrStore(t *testing.T) {
	apps, docs, profiles, usr, app := docFixture()
	client := &fakeLLM{reply: "should never be used"}
	svc := NewDocumentService(apps, docs, profiles, client)

	_, err := svc.Generate(context.Background(), usr, DocumentGenerateInput{
		ApplicationID: app.ID,
		Type:          "invalid_type",
	})
	if !errors.Is(err, document.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("LLM must not be called for an invalid type")
	}
	if len(docs.created) != 0 {
		t.Fatalf("no document may be stored for an invalid type")
	}
}

func TestDocumentService_Generate_UnknownApplication(t *testing.T) {
	apps, docs, profiles, usr, _ := docFixture()
	svc := NewDocumentService(apps, docs, profiles, &fakeLLM{})

	_, err := svc.Generate(context.Background(), usr, DocumentGenerateInput{
		ApplicationID: uuid.New(),
		Type:          document.TypeCoverLetter,
	})
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentService_Generate_LLMFailureSurfacesCause(t *testing.T) {
	apps, docs, profiles, usr, app := docFixture()
	client := &fakeLLM{err: errBoom}
	svc := NewDocumentService(apps, docs, profiles, client)

	_, err := svc.Generate(context.Background(), usr, DocumentGenerateInput{
		ApplicationID: app.ID,
		Type:          document.TypeColdMessage,
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if !errors.Is(genErr.Cause, errBoom) {
		t.Fatalf("expected cause to be preserved, got %v", genErr.Cause)
	}
	if len(docs.created) != 0 {
		t.Fatalf("nothing may be stored when the provider fails")
	}
}

func TestDocumentService_Generate_NoAPIKeyConfigured(t *testing.T) {
	apps, docs, profiles, usr, app := docFixture()
	svc := NewDocumentService(apps, docs, profiles, nil)

	_, err := svc.Generate(context.Background(), usr, DocumentGenerateInput{
		ApplicationID: app.ID,
		Type:          document.TypeCoverLetter,
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if !strings.Contains(genErr.Cause.Error(), "not configured") {
		t.Fatalf("expected configuration cause, got %v", genErr.Cause)
	}
}

func TestDocumentService_Generate_ProfileFieldsReachPrompt(t *testing.T) {
	apps, docs, profiles, usr, app := docFixture()
	exp := "5 years of Go"
	profiles.profiles[usr.ID] = user.Profile{
		ID:         uuid.New(),
		UserID:     usr.ID,
		Experience: &exp,
		Skills:     []string{"Go", "PostgreSQL"},
	}
	client := &fakeLLM{reply: "ok"}
	svc := NewDocumentService(apps, docs, profiles, client)

	if _, err := svc.Generate(context.Background(), usr, DocumentGenerateInput{
		ApplicationID: app.ID,
		Type:          document.TypeCoverLetter,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(client.lastMsg, "Go, PostgreSQL") {
		t.Fatalf("expected comma-joined skills in prompt: %q", client.lastMsg)
	}
	if !strings.Contains(client.lastMsg, exp) {
		t.Fatalf("expected experience in prompt")
	}
}

func TestDocumentService_List_EmptyIsNotAnError(t *testing.T) {
	apps, docs, profiles, usr, app := docFixture()
	svc := NewDocumentService(apps, docs, profiles, &fakeLLM{})

	got, err := svc.List(context.Background(), usr.ID, app.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
