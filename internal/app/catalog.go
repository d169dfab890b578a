package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/weatherrecap/weatherrecap/internal/constants"
	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/logger"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

// CatalogService manages ideas, prompts, wizards and video records.
type CatalogService struct {
	Repo *store.DB
}

func NewCatalogService(repo *store.DB) *CatalogService {
	return &CatalogService{Repo: repo}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (s *CatalogService) CreateIdea(ctx context.Context, name, description, ideaType string) (*domain.Idea, error) {
	if blank(name) || blank(description) || blank(ideaType) {
		return nil, domain.NewValidationError(msgIdeaMissingFields)
	}

	idea := &domain.Idea{Name: name, Description: description, Type: ideaType}
	if err := s.Repo.CreateIdea(ctx, idea); err != nil {
		logger.FromContext(ctx).Error("Failed to save idea", "error", err)
		return nil, domain.NewDatabaseError(msgIdeaSaveFailed, err)
	}
	logger.FromContext(ctx).Info("Idea created", "idea_id", idea.ID)
	return idea, nil
}

func (s *CatalogService) ListIdeas(ctx context.Context) ([]*domain.Idea, error) {
	ideas, err := s.Repo.ListIdeas(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError(msgIdeaFetchFailed, err)
	}
	return ideas, nil
}

func (s *CatalogService) GetIdea(ctx context.Context, id int64) (*domain.Idea, error) {
	idea, err := s.Repo.GetIdea(ctx, id)
	if err != nil {
		return nil, domain.NewDatabaseError(msgIdeaFetchFailed, err)
	}
	if idea == nil {
		return nil, domain.NewNotFoundError(msgIdeaNotFound)
	}
	return idea, nil
}

func (s *CatalogService) CreatePrompt(ctx context.Context, p *domain.Prompt) error {
	if blank(p.Name) || blank(p.Language) || blank(p.Type) || blank(p.Content) {
		return domain.NewValidationError(msgPromptMissingFields)
	}

	if err := s.Repo.CreatePrompt(ctx, p); err != nil {
		logger.FromContext(ctx).Error("Failed to create prompt", "error", err)
		return domain.NewDatabaseError(msgPromptCreateFailed, err)
	}
	logger.FromContext(ctx).Info("Prompt created", "prompt_id", p.ID)
	return nil
}

func (s *CatalogService) ListPrompts(ctx context.Context) ([]*domain.Prompt, error) {
	prompts, err := s.Repo.ListPrompts(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError(msgPromptsFetchFailed, err)
	}
	return prompts, nil
}

func (s *CatalogService) GetPrompt(ctx context.Context, id int64) (*domain.Prompt, error) {
	p, err := s.Repo.GetPrompt(ctx, id)
	if err != nil {
		return nil, domain.NewDatabaseError(msgPromptFetchFailed, err)
	}
	if p == nil {
		return nil, domain.NewNotFoundError(msgPromptNotFound)
	}
	return p, nil
}

func (s *CatalogService) LikePrompt(ctx context.Context, id int64) error {
	found, err := s.Repo.LikePrompt(ctx, id)
	if err != nil {
		return domain.NewDatabaseError(msgPromptLikeFailed, err)
	}
	if !found {
		return domain.NewNotFoundError(msgPromptNotFound)
	}
	return nil
}

func (s *CatalogService) DislikePrompt(ctx context.Context, id int64) error {
	found, err := s.Repo.DislikePrompt(ctx, id)
	if err != nil {
		return domain.NewDatabaseError(msgPromptDislikeFailed, err)
	}
	if !found {
		return domain.NewNotFoundError(msgPromptNotFound)
	}
	return nil
}

func (s *CatalogService) CreateWizard(ctx context.Context, ideaID, promptID int64) (*domain.Wizard, error) {
	if ideaID == 0 || promptID == 0 {
		return nil, domain.NewValidationError(msgWizardMissingFields)
	}

	w := &domain.Wizard{IdeaID: ideaID, PromptID: promptID, Status: constants.WizardStatusPending}
	if err := s.Repo.CreateWizard(ctx, w); err != nil {
		logger.FromContext(ctx).Error("Failed to save wizard", "error", err)
		return nil, domain.NewDatabaseError(msgWizardSaveFailed, err)
	}
	logger.FromContext(ctx).WithWizard(w.ID).Info("Wizard created", "idea_id", ideaID, "prompt_id", promptID)
	return w, nil
}

func (s *CatalogService) ListWizards(ctx context.Context) ([]*domain.Wizard, error) {
	wizards, err := s.Repo.ListWizards(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError(msgWizardsFetchFailed, err)
	}
	return wizards, nil
}

// GetWizard resolves the wizard's idea and prompt. Dangling references
// come back as nil rather than an error.
func (s *CatalogService) GetWizard(ctx context.Context, id int64) (*domain.WizardDetail, error) {
	w, err := s.Repo.GetWizard(ctx, id)
	if err != nil {
		return nil, domain.NewDatabaseError(msgWizardFetchFailed, err)
	}
	if w == nil {
		return nil, domain.NewNotFoundError(msgWizardNotFound)
	}

	idea, err := s.Repo.GetIdea(ctx, w.IdeaID)
	if err != nil {
		return nil, domain.NewDatabaseError(msgWizardFetchFailed, err)
	}
	prompt, err := s.Repo.GetPrompt(ctx, w.PromptID)
	if err != nil {
		return nil, domain.NewDatabaseError(msgWizardFetchFailed, err)
	}

	return &domain.WizardDetail{Wizard: *w, Idea: idea, Prompt: prompt}, nil
}

func (s *CatalogService) CreateVideo(ctx context.Context, v *domain.Video) error {
	if v.WizardID == nil || *v.WizardID == 0 || blank(v.Title) || blank(v.Status) {
		return domain.NewValidationError(msgVideoMissingFields)
	}

	if err := s.Repo.CreateVideo(ctx, v); err != nil {
		logger.FromContext(ctx).Error("Failed to add video record", "error", err)
		return domain.NewDatabaseError(msgVideoCreateFailed, err)
	}
	return nil
}

func (s *CatalogService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	videos, err := s.Repo.ListVideos(ctx)
	if err != nil {
		dbErr := domain.NewDatabaseError(msgVideosFetchFailed, err)
		dbErr.Details = err.Error()
		return nil, dbErr
	}
	return videos, nil
}

func (s *CatalogService) ListVideosByWizard(ctx context.Context, wizardID int64) ([]*domain.Video, error) {
	videos, err := s.Repo.ListVideosByWizard(ctx, wizardID)
	if err != nil {
		return nil, domain.NewDatabaseError(msgWizardVideosFailed, err)
	}
	if len(videos) == 0 {
		return nil, domain.NewNotFoundError(msgWizardVideosNotFound)
	}
	return videos, nil
}

// ListTables backs the database connectivity check.
func (s *CatalogService) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.Repo.ListTables(ctx)
	if err != nil {
		dbErr := domain.NewDatabaseError(msgTablesFetchFailed, fmt.Errorf("list tables: %w", err))
		dbErr.Details = err.Error()
		return nil, dbErr
	}
	return tables, nil
}
