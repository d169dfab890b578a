package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/llm"
	"github.com/weatherrecap/weatherrecap/internal/logger"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

const sceneSystemPrompt = "You are a helpful assistant generating video scenes."

// SceneScript is the document the model must return.
type SceneScript struct {
	Scenes []SceneSpec `json:"scenes" jsonschema_description:"An intro scene followed by one chart scene per month of weather data."`
}

type SceneSpec struct {
	Chart    *ChartSpec   `json:"chart,omitempty"`
	Summary  *SummarySpec `json:"summary,omitempty"`
	Type     string       `json:"type" jsonschema:"enum=intro,enum=chart"`
	Text     string       `json:"text,omitempty" jsonschema_description:"Intro title naming the period or location, e.g. Weather Recap for September and October 2024."`
	Duration float64      `json:"duration,omitempty" jsonschema_description:"Scene length. Intro scenes are brief."`
}

type ChartSpec struct {
	Title      string         `json:"title" jsonschema_description:"Month and year, e.g. Weather Data for September 2024."`
	Categories []CategorySpec `json:"categories"`
}

type CategorySpec struct {
	Label string `json:"label"`
	Key   string `json:"key" jsonschema:"enum=temperature,enum=humidity,enum=rainfall,enum=air_pollution"`
	Color string `json:"color"`
}

type SummarySpec struct {
	HottestDay   DayValue `json:"hottest_day"`
	ColdestDay   DayValue `json:"coldest_day"`
	MostRainyDay DayValue `json:"most_rainy_day"`
	Details      string   `json:"details" jsonschema_description:"At least three sentences on trends, anomalies and their likely causes."`
}

type DayValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

var sceneScriptSchema = llm.GenerateSchema[SceneScript]()

const scenePromptTemplate = `
Based on the provided weather query and weather data, generate a structured JSON object representing the video creation flow. Ensure the response adheres to the following:

1. **Intro Scene**:
    - **type**: "intro"
    - **duration**: A brief introduction (e.g., 5 seconds).
    - **text**: Incorporate the time period or location dynamically from the weather query. Example: "Weather Recap for September and October 2024".

2. **Data Visualization Scenes**:
    - Each scene represents one month of weather data.
    - **type**: "chart"
    - **chart**:
        - **title**: The title of the chart dynamically set to the month and year (e.g., "Weather Data for September 2024").
        - **categories**: Include the following categories, each with a label, key for referencing in React, and a fixed placeholder color:
            - { "label": "Temperature", "key": "temperature", "color": "#FF5733" }
            - { "label": "Humidity", "key": "humidity", "color": "#33A1FD" }
            - { "label": "Rainfall", "key": "rainfall", "color": "#33A32F" }
            - { "label": "Air Pollution", "key": "air_pollution", "color": "#A333FD" }
    - **summary**:
        - Include:
          - Hottest day (date and value).
          - Coldest day (date and value).
          - Most rainy day (date and value).
          - A detailed analysis of notable trends or anomalies in the data for the month.

3. **Structure**:
    - Include a scene for each month in the weather data. Dynamically generate the titles and summaries based on the provided data.

4. **Output Schema**:
The JSON object must validate against this JSON Schema:

%s

**Requirements**:
- Dynamically generate titles, summaries, and placeholders based on the input data.
- Ensure each scene is distinct and corresponds to a unique month of data.
- Ensure that summary is at least 3 or 4 sentences long.
- Search for anomalies in the data, try to find their cause and include it in the summary.
- DONT FORGET TO ADD KEYS TO ALL CHARTS TYPES

**Input**:
- Weather Query: %s
- Weather Data: %s

**Output**:
- Return a valid JSON object that matches the structure above.
`

// BuildScenePrompt embeds both payloads and the output schema in the instruction.
func BuildScenePrompt(weatherQuery, weatherData json.RawMessage) string {
	return fmt.Sprintf(scenePromptTemplate, sceneScriptSchema, compactJSON(weatherQuery), compactJSON(weatherData))
}

var errNoScenes = errors.New("completion has no scenes")

// SceneService generates scenes with the model and reads them back.
type SceneService struct {
	Repo *store.DB
	LLM  llm.Completer
}

func NewSceneService(repo *store.DB, completer llm.Completer) *SceneService {
	return &SceneService{Repo: repo, LLM: completer}
}

// Generate asks the model for a scene script and stores every scene it can.
// A script that does not parse stores nothing. A single failed insert is
// logged and skipped, so a successful call may have stored a subset, but
// never an empty one.
func (s *SceneService) Generate(ctx context.Context, wizardID int64, weatherQuery, weatherData json.RawMessage) ([]json.RawMessage, error) {
	if wizardID == 0 || isAbsent(weatherQuery) || isAbsent(weatherData) {
		return nil, domain.NewValidationError(msgSceneMissingFields)
	}
	log := logger.FromContext(ctx).WithWizard(wizardID)

	raw, err := s.LLM.Complete(ctx, sceneSystemPrompt, BuildScenePrompt(weatherQuery, weatherData))
	if err != nil {
		log.Error("Error generating scenes", "error", err)
		return nil, domain.NewInternalError(msgSceneGenerateFailed, err)
	}

	var script struct {
		Scenes []json.RawMessage `json:"scenes"`
	}
	if err := llm.ParseJSON(raw, &script); err != nil {
		log.Error("Error parsing GPT response", "response", raw, "error", err)
		return nil, domain.NewUpstreamParseError(msgSceneParseFailed, err)
	}
	if len(script.Scenes) == 0 {
		log.Error("GPT response has no scenes", "response", raw)
		return nil, domain.NewUpstreamParseError(msgSceneParseFailed, errNoScenes)
	}

	saved, objects := 0, 0
	var lastErr error
	for i, elem := range script.Scenes {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(elem, &head); err != nil {
			log.Warn("Skipping scene that is not an object", "index", i, "error", err)
			continue
		}
		objects++

		scene := &domain.Scene{WizardID: wizardID, Type: head.Type, Data: compactJSON(elem)}
		if err := s.Repo.CreateScene(ctx, scene); err != nil {
			log.Error("Database error saving scene", "index", i, "type", head.Type, "error", err)
			lastErr = err
			continue
		}
		saved++
	}

	if saved == 0 {
		if objects == 0 {
			log.Error("GPT response has no scene objects", "response", raw)
			return nil, domain.NewUpstreamParseError(msgSceneParseFailed, errNoScenes)
		}
		return nil, domain.NewDatabaseError(msgSceneGenerateFailed, lastErr)
	}

	log.Info("Scenes generated", "returned", len(script.Scenes), "saved", saved)
	return script.Scenes, nil
}

func (s *SceneService) ListScenes(ctx context.Context, wizardID int64) ([]*domain.Scene, error) {
	scenes, err := s.Repo.ListScenesByWizard(ctx, wizardID)
	if err != nil {
		return nil, domain.NewDatabaseError(msgScenesFetchFailed, err)
	}
	if len(scenes) == 0 {
		return nil, domain.NewNotFoundError(msgScenesNotFound)
	}
	return scenes, nil
}

// Composition returns the frame layout for a wizard's scenes.
func (s *SceneService) Composition(ctx context.Context, wizardID int64) (*Composition, error) {
	scenes, err := s.ListScenes(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	return BuildComposition(ctx, scenes), nil
}

// isAbsent treats null, false, 0 and "" as a missing required field.
func isAbsent(raw json.RawMessage) bool {
	if domain.JSON(raw).IsNull() {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}
