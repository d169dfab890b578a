package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/weatherrecap/weatherrecap/internal/constants"
	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/llm"
	"github.com/weatherrecap/weatherrecap/internal/logger"
	"github.com/weatherrecap/weatherrecap/internal/store"
	"github.com/weatherrecap/weatherrecap/internal/weather"
)

const weatherQuerySystemPrompt = "You are a helpful assistant generating weather queries."

const weatherQueryPromptTemplate = `
You are an assistant generating a weather query.
Based on the following details:

- Idea Name: %s
- Description: %s
- Type: %s
- Prompt Content: %s

Generate a detailed weather query in JSON format.
Only output valid JSON without any extra characters, comments, or explanations.
`

// WeatherService turns a wizard into a weather query and serves recorded weather data.
type WeatherService struct {
	Repo    *store.DB
	LLM     llm.Completer
	DataDir string
}

func NewWeatherService(repo *store.DB, completer llm.Completer, dataDir string) *WeatherService {
	return &WeatherService{Repo: repo, LLM: completer, DataDir: dataDir}
}

// BuildWeatherQueryPrompt renders the instruction sent to the model.
func BuildWeatherQueryPrompt(req domain.WeatherQueryRequest) string {
	return fmt.Sprintf(weatherQueryPromptTemplate, req.IdeaName, req.Description, req.Type, req.PromptContent)
}

// GenerateQuery asks the model for a weather query and stores it. Malformed
// model output is not retried and nothing is stored.
func (s *WeatherService) GenerateQuery(ctx context.Context, wizardID int64) (*domain.WeatherQuery, error) {
	if wizardID == 0 {
		return nil, domain.NewValidationError(msgWeatherMissingWizard)
	}
	log := logger.FromContext(ctx).WithWizard(wizardID)

	wizard, err := s.Repo.GetWizard(ctx, wizardID)
	if err != nil {
		return nil, generateFailed(err)
	}
	if wizard == nil {
		return nil, domain.NewNotFoundError(msgWizardNotFound)
	}

	idea, err := s.Repo.GetIdea(ctx, wizard.IdeaID)
	if err != nil {
		return nil, generateFailed(err)
	}
	prompt, err := s.Repo.GetPrompt(ctx, wizard.PromptID)
	if err != nil {
		return nil, generateFailed(err)
	}
	if idea == nil || prompt == nil {
		return nil, domain.NewNotFoundError(msgIdeaOrPromptNotFound)
	}

	req := domain.WeatherQueryRequest{
		IdeaName:      idea.Name,
		Description:   idea.Description,
		Type:          idea.Type,
		PromptContent: prompt.Content,
	}

	raw, err := s.LLM.Complete(ctx, weatherQuerySystemPrompt, BuildWeatherQueryPrompt(req))
	if err != nil {
		log.Error("Weather query generation failed", "error", err)
		return nil, generateFailed(err)
	}

	var parsed json.RawMessage
	if err := llm.ParseJSON(raw, &parsed); err != nil {
		log.Error("GPT response is not valid JSON", "response", raw)
		return nil, domain.NewUpstreamParseError(msgWeatherInvalidJSON, err)
	}

	query := &domain.WeatherQuery{
		WizardID: wizardID,
		Status:   constants.WeatherQueryStatusDone,
		Request:  domain.MustJSON(req),
		Response: compactJSON(parsed),
	}
	if err := s.Repo.CreateWeatherQuery(ctx, query); err != nil {
		log.Error("Failed to store weather query", "error", err)
		return nil, generateFailed(err)
	}

	log.Info("Weather query generated", "weather_query_id", query.ID)
	return query, nil
}

func generateFailed(err error) error {
	return domain.NewInternalError(msgWeatherGenerateFailed+err.Error(), err)
}

func (s *WeatherService) LatestQuery(ctx context.Context, wizardID int64) (*domain.WeatherQuery, error) {
	q, err := s.Repo.GetLatestWeatherQuery(ctx, wizardID)
	if err != nil {
		return nil, domain.NewDatabaseError(msgWeatherFetchFailed, err)
	}
	if q == nil {
		return nil, domain.NewNotFoundError(msgWeatherQueryNotFound)
	}
	return q, nil
}

// SimulatedData returns the recorded weather samples sorted by time.
func (s *WeatherService) SimulatedData(ctx context.Context) ([]weather.Entry, error) {
	entries, err := weather.LoadSimulated(s.DataDir)
	if errors.Is(err, weather.ErrNoDataFiles) {
		return nil, domain.NewNotFoundError(msgSimulatedNoFiles)
	}
	if err != nil {
		logger.FromContext(ctx).Error("Error processing simulated weather data", "dir", s.DataDir, "error", err)
		return nil, domain.NewInternalError(msgSimulatedFailed, err)
	}

	logger.FromContext(ctx).Info("Simulated weather data processed and sorted", "entries", len(entries))
	return entries, nil
}

func compactJSON(raw []byte) domain.JSON {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return domain.JSON(raw)
	}
	return domain.JSON(buf.Bytes())
}
