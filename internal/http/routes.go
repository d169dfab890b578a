package httpapp

import (
	"net/http"
	"strconv"

	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/http/dto"
)

const defaultRenderJobsLimit = 50

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "API is working"})
}

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Catalog.ListTables(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIdeaRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	idea, err := h.Catalog.CreateIdea(r.Context(), req.Name, req.Description, req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Nápad uložený úspešne!", ID: idea.ID})
}

func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.Catalog.ListIdeas(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideas)
}

func (h *Handler) GetIdea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	idea, err := h.Catalog.GetIdea(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idea)
}

func (h *Handler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromptRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	p := req.ToPrompt()
	if err := h.Catalog.CreatePrompt(r.Context(), p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Prompt created successfully", ID: p.ID})
}

func (h *Handler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.Catalog.ListPrompts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

func (h *Handler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.Catalog.GetPrompt(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) LikePrompt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Catalog.LikePrompt(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Like added successfully"})
}

func (h *Handler) DislikePrompt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DislikePrompt(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Dislike added successfully"})
}

func (h *Handler) CreateWizard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWizardRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	wizard, err := h.Catalog.CreateWizard(r.Context(), int64(req.IdeaID), int64(req.PromptID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{ID: wizard.ID})
}

func (h *Handler) ListWizards(w http.ResponseWriter, r *http.Request) {
	wizards, err := h.Catalog.ListWizards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wizards)
}

func (h *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.Catalog.GetWizard(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) GenerateWeatherQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.WeatherQueryRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	q, err := h.Weather.GenerateQuery(r.Context(), int64(req.WizardID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) LatestWeatherQuery(w http.ResponseWriter, r *http.Request) {
	wizardID, ok := pathID(w, r, "wizardID")
	if !ok {
		return
	}
	q, err := h.Weather.LatestQuery(r.Context(), wizardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) ProcessWeatherSimulated(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Weather.SimulatedData(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SimulatedWeatherResponse{
		Message: "Simulated weather data processed and sorted successfully.",
		Results: entries,
	})
}

func (h *Handler) GenerateScenes(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScenesRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	scenes, err := h.Scenes.Generate(r.Context(), int64(req.WizardID), req.WeatherQuery, req.WeatherData)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ScenesResponse{Message: "Scenes generated and saved successfully.", Scenes: scenes})
}

func (h *Handler) ListScenes(w http.ResponseWriter, r *http.Request) {
	wizardID, ok := pathID(w, r, "wizardID")
	if !ok {
		return
	}
	scenes, err := h.Scenes.ListScenes(r.Context(), wizardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.StoredScenesResponse{Scenes: scenes})
}

func (h *Handler) GetComposition(w http.ResponseWriter, r *http.Request) {
	wizardID, ok := pathID(w, r, "wizardID")
	if !ok {
		return
	}
	comp, err := h.Scenes.Composition(r.Context(), wizardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comp)
}

func (h *Handler) EnqueueRender(w http.ResponseWriter, r *http.Request) {
	var req dto.EnqueueRenderRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	job, err := h.Render.Enqueue(r.Context(), int64(req.WizardID), req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Render job added to queue.", ID: job.ID})
}

func (h *Handler) ListRenderJobs(w http.ResponseWriter, r *http.Request) {
	limit := defaultRenderJobsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeValidationErrors(w, []dto.ValidationError{{Field: "limit", Message: "must be a positive integer"}})
			return
		}
		limit = n
	}

	jobs, err := h.Render.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *Handler) PendingRender(w http.ResponseWriter, r *http.Request) {
	job, err := h.Render.Pending(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.RenderJobResponse{RenderJob: job})
}

func (h *Handler) GetRenderJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	job, err := h.Render.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.RenderJobResponse{RenderJob: job})
}

func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVideoRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}
	async := req.Async
	if q := r.URL.Query().Get("async"); q != "" {
		async, _ = strconv.ParseBool(q)
	}

	outcome, err := h.Render.CreateVideo(r.Context(), int64(req.WizardID), int64(req.RenderJobID), async)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if outcome.Async {
		writeJSON(w, http.StatusAccepted, dto.CreateVideoResponse{
			Message:     "Render started.",
			RenderJobID: outcome.RenderJobID,
			Status:      string(domain.RenderStatusPending),
		})
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreateVideoResponse{Message: "Video successfully rendered!", FilePath: outcome.FilePath})
}

func (h *Handler) CreateVideoRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVideoRecordRequest
	if errs := dto.Decode(w, r, &req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	v := req.ToVideo()
	if err := h.Catalog.CreateVideo(r.Context(), v); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Video record added successfully.", ID: v.ID})
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Catalog.ListVideos(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *Handler) ListWizardVideos(w http.ResponseWriter, r *http.Request) {
	wizardID, ok := pathID(w, r, "wizardID")
	if !ok {
		return
	}
	videos, err := h.Catalog.ListVideosByWizard(r.Context(), wizardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.VideosResponse{Videos: videos})
}
