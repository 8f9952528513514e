package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobtrail/internal/domain/application"
	"jobtrail/internal/domain/document"
	"jobtrail/internal/domain/user"
	"jobtrail/internal/infrastructure/llm"
	"jobtrail/internal/usecase/docgen"
)

const listDocumentsLimit = 100

// GenerationError wraps whatever broke between prompt dispatch and
// persistence; the cause text is surfaced to the caller.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	if e == nil || e.Cause == nil {
		return "generation failed"
	}
	return "generation failed: " + e.Cause.Error()
}

func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type DocumentGenerateInput struct {
	ApplicationID  uuid.UUID
	Type           string
	JobDescription string
	Tone           string
}

type DocumentUsecase interface {
	Generate(ctx context.Context, usr user.User, in DocumentGenerateInput) (document.Document, error)
	List(ctx context.Context, userID, applicationID uuid.UUID) ([]document.Document, error)
}

type DocumentService struct {
	apps     application.Repository
	docs     document.Repository
	profiles user.ProfileRepository
	llm      llm.Client

	now func() time.Time
}

func NewDocumentService(apps application.Repository, docs document.Repository, profiles user.ProfileRepository, client llm.Client) *DocumentService {
	return &DocumentService{
		apps:     apps,
		docs:     docs,
		profiles: profiles,
		llm:      client,
		now:      time.Now,
	}
}

// Generate builds the prompt from stored fields, makes one synchronous
// provider call and persists the result. No retries, no timeout: a slow or
// failing provider fails this request and nothing is written.
func (s *DocumentService) Generate(ctx context.Context, usr user.User, in DocumentGenerateInput) (document.Document, error) {
	app, err := s.apps.GetByID(ctx, in.ApplicationID, usr.ID)
	if err != nil {
		return document.Document{}, err
	}

	var profile *user.Profile
	p, err := s.profiles.GetByUserID(ctx, usr.ID)
	if err == nil {
		profile = &p
	} else if !errors.Is(err, user.ErrProfileNotFound) {
		return document.Document{}, err
	}

	if !document.ValidType(in.Type) {
		return document.Document{}, document.ErrInvalidType
	}

	prompt, err := docgen.Build(in.Type, app, usr, profile, in.JobDescription, in.Tone)
	if err != nil {
		return document.Document{}, err
	}

	if s.llm == nil {
		return document.Document{}, &GenerationError{Cause: errors.New("LLM API key not configured")}
	}

	content, err := s.llm.Complete(ctx, docgen.SystemPrompt, prompt)
	if err != nil {
		return document.Document{}, &GenerationError{Cause: err}
	}

	doc := document.Document{
		ID:            uuid.New(),
		ApplicationID: in.ApplicationID,
		UserID:        usr.ID,
		Type:          in.Type,
		Content:       content,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return document.Document{}, &GenerationError{Cause: err}
	}
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, userID, applicationID uuid.UUID) ([]document.Document, error) {
	return s.docs.ListByApplication(ctx, applicationID, userID, listDocumentsLimit)
}

var _ DocumentUsecase = (*DocumentService)(nil)
