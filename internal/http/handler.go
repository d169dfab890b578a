package httpapp

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/weatherrecap/weatherrecap/internal/app"
	"github.com/weatherrecap/weatherrecap/internal/constants"
	"github.com/weatherrecap/weatherrecap/internal/logger"
)

type Handler struct {
	Catalog     *app.CatalogService
	Weather     *app.WeatherService
	Scenes      *app.SceneService
	Render      *app.RenderService
	Logger      *logger.Logger
	VideosDir   string
	CORSOrigins []string
}

func NewHandler(catalog *app.CatalogService, weather *app.WeatherService, scenes *app.SceneService, render *app.RenderService, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		Catalog: catalog,
		Weather: weather,
		Scenes:  scenes,
		Render:  render,
		Logger:  log.WithComponent("http"),
	}
}

// Router builds the full HTTP surface with middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.Logger))
	r.Use(middleware.Recoverer)

	origins := h.CORSOrigins
	if len(origins) == 0 {
		origins = []string{constants.DefaultCORSOrigins}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Route("/api", h.RegisterRoutes)

	if h.VideosDir != "" {
		files := http.StripPrefix(constants.StaticVideosRoute, http.FileServer(http.Dir(filepath.Clean(h.VideosDir))))
		r.Handle(constants.StaticVideosRoute+"/*", files)
	}

	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/test", h.Ping)
	r.Get("/test2", h.ListTables)

	r.Post("/ideas", h.CreateIdea)
	r.Get("/ideas", h.ListIdeas)
	r.Get("/ideas/{id}", h.GetIdea)

	r.Post("/prompts", h.CreatePrompt)
	r.Get("/prompts", h.ListPrompts)
	r.Get("/prompts/{id}", h.GetPrompt)
	r.Patch("/prompts/{id}/like", h.LikePrompt)
	r.Patch("/prompts/{id}/dislike", h.DislikePrompt)

	r.Post("/wizards", h.CreateWizard)
	r.Get("/wizards", h.ListWizards)
	r.Get("/wizards/{id}", h.GetWizard)

	r.Post("/weather-query", h.GenerateWeatherQuery)
	r.Get("/weather-queries/{wizardID}", h.LatestWeatherQuery)
	r.Post("/process-weather-simulated", h.ProcessWeatherSimulated)

	r.Post("/scenes", h.GenerateScenes)
	r.Get("/scenes/{wizardID}", h.ListScenes)
	r.Get("/compositions/{wizardID}", h.GetComposition)

	r.Post("/render-queue", h.EnqueueRender)
	r.Get("/render-queue", h.ListRenderJobs)
	r.Get("/render-queue/pending", h.PendingRender)
	r.Get("/render-queue/{id}", h.GetRenderJob)
	r.Post("/create-video", h.CreateVideo)

	r.Post("/videos", h.CreateVideoRecord)
	r.Get("/videos", h.ListVideos)
	r.Get("/videos/{wizardID}", h.ListWizardVideos)
}
