package domain

import (
	"encoding/json"
	"time"
)

type RenderStatus string

const (
	RenderStatusPending   RenderStatus = "pending"
	RenderStatusCompleted RenderStatus = "completed"
	RenderStatusFailed    RenderStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s RenderStatus) IsTerminal() bool {
	return s == RenderStatusCompleted || s == RenderStatusFailed
}

// CanTransition reports whether a job in status s may move to next.
// Only pending jobs move, and only to a terminal status.
func (s RenderStatus) CanTransition(next RenderStatus) bool {
	return s == RenderStatusPending && next.IsTerminal()
}

type Idea struct {
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"`
	ID          int64     `json:"id" db:"id"`
}

type Prompt struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	IdeaID    *int64    `json:"idea_id" db:"idea_id"`
	IdeaName  *string   `json:"idea_name" db:"idea_name"`
	Name      string    `json:"name" db:"name"`
	Language  string    `json:"language" db:"language"`
	Type      string    `json:"type" db:"type"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	Likes     int       `json:"likes" db:"likes"`
	Dislikes  int       `json:"dislikes" db:"dislikes"`
}

// Wizard links one idea and one prompt and roots the render pipeline.
type Wizard struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Status    string    `json:"status" db:"status"`
	ID        int64     `json:"id" db:"id"`
	IdeaID    int64     `json:"idea_id" db:"idea_id"`
	PromptID  int64     `json:"prompt_id" db:"prompt_id"`
}

// WizardDetail is a wizard with its idea and prompt resolved.
type WizardDetail struct {
	Idea   *Idea   `json:"idea"`
	Prompt *Prompt `json:"prompt"`
	Wizard
}

type WeatherQuery struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Status    string    `json:"status" db:"status"`
	Request   JSON      `json:"request" db:"request"`
	Response  JSON      `json:"response" db:"response"`
	ID        int64     `json:"id" db:"id"`
	WizardID  int64     `json:"wizard_id" db:"wizard_id"`
}

// WeatherQueryRequest is the context sent to the model for a weather query.
type WeatherQueryRequest struct {
	IdeaName      string `json:"idea_name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	PromptContent string `json:"prompt_content"`
}

// Scene is one renderable segment; Data holds the model's scene object verbatim.
type Scene struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Type      string    `json:"type" db:"type"`
	Data      JSON      `json:"data" db:"data"`
	ID        int64     `json:"id" db:"id"`
	WizardID  int64     `json:"wizard_id" db:"wizard_id"`
}

// Duration returns data.duration when it is present and numeric.
func (s *Scene) Duration() (float64, bool) {
	if s.Data.IsNull() {
		return 0, false
	}
	var payload struct {
		Duration *float64 `json:"duration"`
	}
	if err := json.Unmarshal(s.Data, &payload); err != nil || payload.Duration == nil {
		return 0, false
	}
	return *payload.Duration, true
}

// HasChart reports whether data carries a chart object.
func (s *Scene) HasChart() bool {
	if s.Data.IsNull() {
		return false
	}
	var payload struct {
		Chart json.RawMessage `json:"chart"`
	}
	if err := json.Unmarshal(s.Data, &payload); err != nil {
		return false
	}
	return len(payload.Chart) > 0 && string(payload.Chart) != "null"
}

type RenderJob struct {
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	Error     *string      `json:"error,omitempty" db:"error"`
	Type      string       `json:"type" db:"type"`
	Status    RenderStatus `json:"status" db:"status"`
	ID        int64        `json:"id" db:"id"`
	WizardID  int64        `json:"wizard_id" db:"wizard_id"`
}

type Video struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	WizardID  *int64    `json:"wizard_id" db:"wizard_id"`
	FilePath  *string   `json:"file_path" db:"file_path"`
	Duration  *float64  `json:"duration" db:"duration"`
	Format    *string   `json:"format" db:"format"`
	Title     string    `json:"title" db:"title"`
	Status    string    `json:"status" db:"status"`
	ID        int64     `json:"id" db:"id"`
}
