package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/weatherrecap/weatherrecap/internal/constants"
	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/logger"
	"github.com/weatherrecap/weatherrecap/internal/render"
	"github.com/weatherrecap/weatherrecap/internal/storage"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

// RenderOutcome is the result of a create-video request.
type RenderOutcome struct {
	FilePath    string
	Status      domain.RenderStatus
	RenderJobID int64
	Async       bool
}

// RenderService owns the render queue and drives the external renderer.
type RenderService struct {
	Repo       *store.DB
	Runner     render.Runner
	Worker     *render.Worker
	RenderDir  string
	OutputPath string
}

func NewRenderService(repo *store.DB, runner render.Runner, worker *render.Worker, renderDir, outputPath string) *RenderService {
	return &RenderService{
		Repo:       repo,
		Runner:     runner,
		Worker:     worker,
		RenderDir:  renderDir,
		OutputPath: outputPath,
	}
}

func (s *RenderService) Enqueue(ctx context.Context, wizardID int64, jobType string) (*domain.RenderJob, error) {
	if wizardID == 0 || blank(jobType) {
		return nil, domain.NewValidationError(msgRenderMissingFields)
	}

	job := &domain.RenderJob{WizardID: wizardID, Type: jobType, Status: domain.RenderStatusPending}
	if err := s.Repo.CreateRenderJob(ctx, job); err != nil {
		logger.FromContext(ctx).Error("Error adding render job", "error", err)
		return nil, domain.NewDatabaseError(msgRenderEnqueueFailed, err)
	}
	logger.FromContext(ctx).WithRenderJob(job.ID, wizardID).Info("Render job enqueued", "type", jobType)
	return job, nil
}

// Pending returns the oldest job still waiting to render.
func (s *RenderService) Pending(ctx context.Context) (*domain.RenderJob, error) {
	job, err := s.Repo.GetOldestPendingRenderJob(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError(msgRenderPendingFailed, err)
	}
	if job == nil {
		return nil, domain.NewNotFoundError(msgRenderNoPending)
	}
	return job, nil
}

func (s *RenderService) Get(ctx context.Context, id int64) (*domain.RenderJob, error) {
	job, err := s.Repo.GetRenderJob(ctx, id)
	if err != nil {
		return nil, domain.NewDatabaseError(msgRenderJobFetchFailed, err)
	}
	if job == nil {
		return nil, domain.NewNotFoundError(msgRenderJobNotFound)
	}
	return job, nil
}

func (s *RenderService) List(ctx context.Context, limit int) ([]*domain.RenderJob, error) {
	jobs, err := s.Repo.ListRenderJobs(ctx, limit)
	if err != nil {
		return nil, domain.NewDatabaseError(msgRenderJobFetchFailed, err)
	}
	return jobs, nil
}

// CreateVideo renders a wizard's scenes for a queued job. The render runs
// on the worker so it is bounded by the worker's timeout and survives the
// caller giving up. When async is false CreateVideo waits for the outcome.
func (s *RenderService) CreateVideo(ctx context.Context, wizardID, renderJobID int64, async bool) (*RenderOutcome, error) {
	if wizardID == 0 || renderJobID == 0 {
		return nil, domain.NewValidationError(msgCreateVideoMissing)
	}
	log := logger.FromContext(ctx).WithRenderJob(renderJobID, wizardID)

	// A job that does not exist is still rendered; its status update is a no-op.
	job, err := s.Repo.GetRenderJob(ctx, renderJobID)
	if err != nil {
		log.Error("Failed to load render job", "error", err)
		return nil, renderVideoFailed(err)
	}
	if job != nil && job.Status.IsTerminal() {
		log.Warn("Render job already settled", "status", job.Status)
		return nil, renderJobSettled(job.Status)
	}

	scenes, err := s.Repo.ListScenesByWizard(ctx, wizardID)
	if err != nil {
		s.markFailed(ctx, log, renderJobID, err.Error())
		return nil, renderVideoFailed(err)
	}
	if len(scenes) == 0 {
		log.Error("No scenes found for wizard")
		return nil, domain.NewNotFoundError(msgScenesNotFound)
	}
	log.Info("Scenes fetched for rendering", "scenes", len(scenes))

	var outcome RenderOutcome
	done, err := s.Worker.Submit(renderJobID, wizardID, func(taskCtx context.Context) error {
		path, err := s.render(taskCtx, wizardID, renderJobID, scenes)
		outcome.FilePath = path
		return err
	})
	if err != nil {
		s.markFailed(ctx, log, renderJobID, err.Error())
		return nil, renderVideoFailed(err)
	}

	if async {
		return &RenderOutcome{RenderJobID: renderJobID, Status: domain.RenderStatusPending, Async: true}, nil
	}

	select {
	case err := <-done:
		var appErr *domain.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		if err != nil {
			// dropped before start or panicked; the job never settled
			s.markFailed(ctx, log, renderJobID, err.Error())
			return nil, renderVideoFailed(err)
		}
		outcome.RenderJobID = renderJobID
		outcome.Status = domain.RenderStatusCompleted
		return &outcome, nil
	case <-ctx.Done():
		log.Warn("Caller left before render finished", "error", ctx.Err())
		return nil, renderVideoFailed(ctx.Err())
	}
}

// render runs the renderer, records the video and settles the job. It
// returns the stored file path.
func (s *RenderService) render(ctx context.Context, wizardID, renderJobID int64, scenes []*domain.Scene) (string, error) {
	log := logger.FromContext(ctx)
	log.Info("Running render command", "dir", s.RenderDir)

	res, err := s.Runner.Run(ctx)
	if err != nil {
		var exitErr *render.ExitError
		details := err.Error()
		if errors.As(err, &exitErr) && exitErr.Result != nil {
			details = exitErr.Result.Stderr
			log.Error("Rendering failed", "stderr", exitErr.Result.Stderr, "stdout", exitErr.Result.Stdout)
		}
		s.markFailed(ctx, log, renderJobID, details)
		return "", domain.NewSubprocessError(msgRenderingFailed, details, err)
	}
	log.Info("Rendering complete", "duration", res.Duration, "stdout", res.Stdout)

	if size, err := storage.FileSize(filepath.Join(s.RenderDir, s.OutputPath)); err != nil {
		log.Warn("Rendered file not found", "path", s.OutputPath, "error", err)
	} else {
		log.Info("Rendered file written", "path", s.OutputPath, "bytes", size)
	}

	duration := totalSceneDuration(scenes)
	filePath := s.OutputPath
	format := constants.DefaultVideoFormat
	video := &domain.Video{
		WizardID: &wizardID,
		Title:    fmt.Sprintf(constants.VideoTitleTemplate, wizardID),
		Status:   constants.VideoStatusCompleted,
		FilePath: &filePath,
		Duration: &duration,
		Format:   &format,
	}
	ok, err := s.Repo.CompleteRenderJob(ctx, renderJobID, video)
	if errors.Is(err, store.ErrRenderJobSettled) {
		// another render settled the job while this one ran
		log.Warn("Render job settled by a concurrent render; video discarded")
		return "", domain.NewValidationError(msgRenderJobSettled)
	}
	if err != nil {
		log.Error("Failed to save video metadata", "error", err)
		s.markFailed(ctx, log, renderJobID, err.Error())
		return "", renderVideoFailed(err)
	}
	if !ok {
		log.Warn("Render job was missing or no longer pending")
	}
	log.Info("Video metadata saved", "video_id", video.ID, "duration", duration)
	return filePath, nil
}

// markFailed settles the job as failed. The job may not exist; that is
// logged and otherwise ignored.
func (s *RenderService) markFailed(ctx context.Context, log *logger.Logger, renderJobID int64, reason string) {
	// The render context may already be cancelled; the status write must still land.
	ctx = context.WithoutCancel(ctx)

	var errMsg *string
	if reason != "" {
		errMsg = &reason
	}
	ok, err := s.Repo.TransitionRenderJob(ctx, renderJobID, domain.RenderStatusFailed, errMsg)
	if err != nil {
		log.Error("Failed to mark render job failed", "error", err)
		return
	}
	if !ok {
		log.Warn("Render job was missing or no longer pending")
	}
}

func renderJobSettled(status domain.RenderStatus) *domain.Error {
	e := domain.NewValidationError(msgRenderJobSettled)
	e.Details = "status: " + string(status)
	return e
}

func renderVideoFailed(err error) *domain.Error {
	e := domain.NewInternalError(msgRenderVideoFailed, err)
	e.Details = err.Error()
	return e
}
