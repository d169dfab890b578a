package dto

import (
	"encoding/json"

	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/weather"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id"`
}

type RenderJobResponse struct {
	RenderJob *domain.RenderJob `json:"renderJob"`
}

type ScenesResponse struct {
	Message string            `json:"message,omitempty"`
	Scenes  []json.RawMessage `json:"scenes"`
}

type StoredScenesResponse struct {
	Scenes []*domain.Scene `json:"scenes"`
}

type VideosResponse struct {
	Videos []*domain.Video `json:"videos"`
}

type CreateVideoResponse struct {
	Message     string `json:"message"`
	FilePath    string `json:"file_path,omitempty"`
	Status      string `json:"status,omitempty"`
	RenderJobID int64  `json:"render_job_id,omitempty"`
}

type SimulatedWeatherResponse struct {
	Message string          `json:"message"`
	Results []weather.Entry `json:"results"`
}
