package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/logger"
	"github.com/weatherrecap/weatherrecap/internal/render"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

func setupRenderService(t *testing.T, runner render.Runner) (*RenderService, *store.DB) {
	t.Helper()
	db := setupTestDB(t)
	worker := render.NewWorker(1, 5*time.Second, logger.Discard())
	worker.Start()
	t.Cleanup(worker.Stop)
	return NewRenderService(db, runner, worker, t.TempDir(), "out/video.mp4"), db
}

func seedScenes(t *testing.T, db *store.DB, wizardID int64, data ...string) {
	t.Helper()
	for _, d := range data {
		s := &domain.Scene{WizardID: wizardID, Type: "chart", Data: domain.JSON(d)}
		if err := db.CreateScene(context.Background(), s); err != nil {
			t.Fatalf("CreateScene failed: %v", err)
		}
	}
}

func TestRenderService_EnqueueAndPending(t *testing.T) {
	svc, _ := setupRenderService(t, &fakeRunner{})
	ctx := context.Background()

	_, err := svc.Pending(ctx)
	assertKind(t, err, domain.KindNotFound, "No pending render jobs.")

	_, err = svc.Enqueue(ctx, 0, "video")
	assertKind(t, err, domain.KindValidation, "wizard_id and type are required.")
	_, err = svc.Enqueue(ctx, 1, "")
	assertKind(t, err, domain.KindValidation, "wizard_id and type are required.")

	first, err := svc.Enqueue(ctx, 1, "video")
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if _, err := svc.Enqueue(ctx, 2, "video"); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	pending, err := svc.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if pending.ID != first.ID || pending.Status != domain.RenderStatusPending {
		t.Errorf("expected oldest pending job %d, got %+v", first.ID, pending)
	}

	_, err = svc.Get(ctx, 999)
	assertKind(t, err, domain.KindNotFound, "Render job not found.")
}

func TestRenderService_CreateVideoSuccess(t *testing.T) {
	runner := &fakeRunner{}
	svc, db := setupRenderService(t, runner)
	ctx := context.Background()

	seedScenes(t, db, 3, `{"type":"intro","duration":5}`, `{"type":"chart","duration":10}`, `{"type":"chart"}`)
	job, err := svc.Enqueue(ctx, 3, "video")
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.CreateVideo(ctx, 3, job.ID, false)
	if err != nil {
		t.Fatalf("CreateVideo failed: %v", err)
	}
	if outcome.FilePath != "out/video.mp4" {
		t.Errorf("unexpected file path %q", outcome.FilePath)
	}

	got, _ := svc.Get(ctx, job.ID)
	if got.Status != domain.RenderStatusCompleted {
		t.Errorf("expected completed job, got %s", got.Status)
	}

	videos, err := db.ListVideosByWizard(ctx, 3)
	if err != nil || len(videos) != 1 {
		t.Fatalf("expected 1 video, got %d err=%v", len(videos), err)
	}
	v := videos[0]
	if v.Title != "Video for Wizard 3" || v.Status != "completed" || *v.Format != "mp4" || *v.Duration != 15 {
		t.Errorf("unexpected video %+v", v)
	}
}

func TestRenderService_CreateVideoRenderFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1"), stderr: "remotion: composition not found"}
	svc, db := setupRenderService(t, runner)
	ctx := context.Background()

	seedScenes(t, db, 4, `{"type":"intro"}`)
	job, _ := svc.Enqueue(ctx, 4, "video")

	_, err := svc.CreateVideo(ctx, 4, job.ID, false)
	assertKind(t, err, domain.KindSubprocess, "Rendering failed.")
	var appErr *domain.Error
	if errors.As(err, &appErr) && appErr.Details != "remotion: composition not found" {
		t.Errorf("expected stderr as details, got %q", appErr.Details)
	}

	got, _ := svc.Get(ctx, job.ID)
	if got.Status != domain.RenderStatusFailed {
		t.Errorf("expected failed job, got %s", got.Status)
	}
	if videos, _ := db.ListVideosByWizard(ctx, 4); len(videos) != 0 {
		t.Errorf("expected no video row, got %d", len(videos))
	}
}

func TestRenderService_CreateVideoNoScenes(t *testing.T) {
	runner := &fakeRunner{}
	svc, _ := setupRenderService(t, runner)
	ctx := context.Background()

	job, _ := svc.Enqueue(ctx, 5, "video")
	_, err := svc.CreateVideo(ctx, 5, job.ID, false)
	assertKind(t, err, domain.KindNotFound, "No scenes found for this wizard.")

	if runner.calls != 0 {
		t.Errorf("renderer should not run, ran %d times", runner.calls)
	}
	got, _ := svc.Get(ctx, job.ID)
	if got.Status != domain.RenderStatusPending {
		t.Errorf("expected job to stay pending, got %s", got.Status)
	}
}

func TestRenderService_CreateVideoValidation(t *testing.T) {
	svc, _ := setupRenderService(t, &fakeRunner{})

	_, err := svc.CreateVideo(context.Background(), 1, 0, false)
	assertKind(t, err, domain.KindValidation, "wizard_id and render_job_id are required.")
}

func TestRenderService_CreateVideoAsync(t *testing.T) {
	svc, db := setupRenderService(t, &fakeRunner{})
	ctx := context.Background()

	seedScenes(t, db, 6, `{"type":"intro"}`)
	job, _ := svc.Enqueue(ctx, 6, "video")

	outcome, err := svc.CreateVideo(ctx, 6, job.ID, true)
	if err != nil {
		t.Fatalf("CreateVideo failed: %v", err)
	}
	if !outcome.Async || outcome.Status != domain.RenderStatusPending || outcome.RenderJobID != job.ID {
		t.Errorf("unexpected outcome %+v", outcome)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		got, err := svc.Get(ctx, job.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Status.IsTerminal() {
			if got.Status != domain.RenderStatusCompleted {
				t.Errorf("expected completed, got %s", got.Status)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("render job never left pending")
}

func TestRenderService_TerminalJobIsNotRenderedAgain(t *testing.T) {
	tests := []struct {
		name       string
		firstErr   error
		wantStatus domain.RenderStatus
		wantVideos int
	}{
		{"failed job", errors.New("exit status 1"), domain.RenderStatusFailed, 0},
		{"completed job", nil, domain.RenderStatusCompleted, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{err: tt.firstErr}
			svc, db := setupRenderService(t, runner)
			ctx := context.Background()

			seedScenes(t, db, 7, `{"type":"intro"}`)
			job, _ := svc.Enqueue(ctx, 7, "video")
			_, _ = svc.CreateVideo(ctx, 7, job.ID, false)

			runner.mu.Lock()
			runner.err = nil
			runner.mu.Unlock()

			_, err := svc.CreateVideo(ctx, 7, job.ID, false)
			assertKind(t, err, domain.KindValidation, "Render job has already finished.")

			runner.mu.Lock()
			calls := runner.calls
			runner.mu.Unlock()
			if calls != 1 {
				t.Errorf("expected renderer to run once, ran %d times", calls)
			}

			got, _ := svc.Get(ctx, job.ID)
			if got.Status != tt.wantStatus {
				t.Errorf("expected job to stay %s, got %s", tt.wantStatus, got.Status)
			}

			videos, _ := db.ListVideos(ctx)
			if len(videos) != tt.wantVideos {
				t.Errorf("expected %d videos, got %d", tt.wantVideos, len(videos))
			}
		})
	}
}

func TestRenderService_CreateVideoUnknownJob(t *testing.T) {
	runner := &fakeRunner{}
	svc, db := setupRenderService(t, runner)
	ctx := context.Background()

	seedScenes(t, db, 10, `{"type":"intro","duration":4}`)
	outcome, err := svc.CreateVideo(ctx, 10, 12345, false)
	if err != nil {
		t.Fatalf("CreateVideo failed: %v", err)
	}
	if outcome.FilePath != "out/video.mp4" {
		t.Errorf("unexpected file path %q", outcome.FilePath)
	}

	videos, _ := db.ListVideosByWizard(ctx, 10)
	if len(videos) != 1 {
		t.Errorf("expected 1 video, got %d", len(videos))
	}
}

type panicRunner struct{}

func (panicRunner) Run(ctx context.Context) (*render.Result, error) {
	panic("renderer crashed")
}

func TestRenderService_CreateVideoWorkerFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("panicking renderer", func(t *testing.T) {
		svc, db := setupRenderService(t, panicRunner{})
		seedScenes(t, db, 8, `{"type":"intro"}`)
		job, _ := svc.Enqueue(ctx, 8, "video")

		_, err := svc.CreateVideo(ctx, 8, job.ID, false)
		assertKind(t, err, domain.KindInternal, "Failed to render video.")

		got, _ := svc.Get(ctx, job.ID)
		if got.Status != domain.RenderStatusFailed {
			t.Errorf("expected failed, got %s", got.Status)
		}
	})

	t.Run("stopped worker", func(t *testing.T) {
		svc, db := setupRenderService(t, &fakeRunner{})
		svc.Worker.Stop()
		seedScenes(t, db, 9, `{"type":"intro"}`)
		job, _ := svc.Enqueue(ctx, 9, "video")

		_, err := svc.CreateVideo(ctx, 9, job.ID, true)
		assertKind(t, err, domain.KindInternal, "Failed to render video.")

		got, _ := svc.Get(ctx, job.ID)
		if got.Status != domain.RenderStatusFailed {
			t.Errorf("expected failed, got %s", got.Status)
		}
	})
}
