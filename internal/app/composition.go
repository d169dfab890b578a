package app

import (
	"context"

	"github.com/weatherrecap/weatherrecap/internal/constants"
	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/logger"
)

// Composition is the static frame layout the renderer plays back.
type Composition struct {
	ID               string     `json:"id"`
	Sequences        []Sequence `json:"sequences"`
	FPS              int        `json:"fps"`
	Width            int        `json:"width"`
	Height           int        `json:"height"`
	DurationInFrames int        `json:"duration_in_frames"`
}

// Sequence places one scene on the timeline.
type Sequence struct {
	Type             string      `json:"type"`
	Data             domain.JSON `json:"data"`
	SceneID          int64       `json:"scene_id"`
	From             int         `json:"from"`
	DurationInFrames int         `json:"duration_in_frames"`
}

// BuildComposition lays scenes out back to back. A scene's data.duration is
// its length in frames; without one intro scenes get 150 frames and chart
// scenes 300. Chart scenes without chart data and unknown types are skipped.
func BuildComposition(ctx context.Context, scenes []*domain.Scene) *Composition {
	log := logger.FromContext(ctx)

	comp := &Composition{
		ID:        constants.CompositionID,
		FPS:       constants.CompositionFPS,
		Width:     constants.CompositionWidth,
		Height:    constants.CompositionHeight,
		Sequences: []Sequence{},
	}

	from := 0
	for _, scene := range scenes {
		var fallback int
		switch scene.Type {
		case constants.SceneTypeIntro:
			fallback = constants.DefaultIntroFrames
		case constants.SceneTypeChart:
			if !scene.HasChart() {
				log.Warn("Skipping chart scene without chart data", "scene_id", scene.ID)
				continue
			}
			fallback = constants.DefaultChartFrames
		default:
			log.Warn("Unknown scene type", "scene_id", scene.ID, "type", scene.Type)
			continue
		}

		frames := fallback
		if d, ok := scene.Duration(); ok && d > 0 {
			frames = int(d)
		}

		comp.Sequences = append(comp.Sequences, Sequence{
			SceneID:          scene.ID,
			Type:             scene.Type,
			From:             from,
			DurationInFrames: frames,
			Data:             scene.Data,
		})
		from += frames
	}

	comp.DurationInFrames = from
	return comp
}

// totalSceneDuration sums data.duration across scenes, counting absent values as 0.
func totalSceneDuration(scenes []*domain.Scene) float64 {
	var total float64
	for _, s := range scenes {
		if d, ok := s.Duration(); ok {
			total += d
		}
	}
	return total
}
