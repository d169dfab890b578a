package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

// ID accepts a JSON number or a numeric string; null and "" decode to 0.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	*id = ID(n)
	return nil
}

type CreateIdeaRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type CreatePromptRequest struct {
	IdeaID   *ID    `json:"idea_id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}

func (r *CreatePromptRequest) ToPrompt() *domain.Prompt {
	p := &domain.Prompt{Name: r.Name, Language: r.Language, Type: r.Type, Content: r.Content}
	if r.IdeaID != nil && *r.IdeaID != 0 {
		id := int64(*r.IdeaID)
		p.IdeaID = &id
	}
	return p
}

type CreateWizardRequest struct {
	IdeaID   ID `json:"idea_id"`
	PromptID ID `json:"prompt_id"`
}

type WeatherQueryRequest struct {
	WizardID ID `json:"wizard_id"`
}

type CreateScenesRequest struct {
	WeatherQuery json.RawMessage `json:"weather_query"`
	WeatherData  json.RawMessage `json:"weather_data"`
	WizardID     ID              `json:"wizard_id"`
}

type EnqueueRenderRequest struct {
	Type     string `json:"type"`
	WizardID ID     `json:"wizard_id"`
}

type CreateVideoRequest struct {
	WizardID    ID   `json:"wizard_id"`
	RenderJobID ID   `json:"render_job_id"`
	Async       bool `json:"async"`
}

type CreateVideoRecordRequest struct {
	FilePath *string  `json:"file_path"`
	Duration *float64 `json:"duration"`
	Format   *string  `json:"format"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	WizardID ID       `json:"wizard_id"`
}

func (r *CreateVideoRecordRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateDuration(r.Duration)...)
	errs = append(errs, validateFilePath(r.FilePath)...)
	errs = append(errs, validateFormat(r.Format)...)
	return errs
}

// ToVideo maps empty optional values to NULL.
func (r *CreateVideoRecordRequest) ToVideo() *domain.Video {
	v := &domain.Video{Title: r.Title, Status: r.Status}
	if r.WizardID != 0 {
		id := int64(r.WizardID)
		v.WizardID = &id
	}
	if r.FilePath != nil && *r.FilePath != "" {
		v.FilePath = r.FilePath
	}
	if r.Duration != nil && *r.Duration != 0 {
		v.Duration = r.Duration
	}
	if r.Format != nil && *r.Format != "" {
		v.Format = r.Format
	}
	return v
}
