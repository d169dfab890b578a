package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/weatherrecap/weatherrecap/internal/app"
	"github.com/weatherrecap/weatherrecap/internal/constants"
	httpapp "github.com/weatherrecap/weatherrecap/internal/http"
	"github.com/weatherrecap/weatherrecap/internal/llm"
	"github.com/weatherrecap/weatherrecap/internal/render"
	"github.com/weatherrecap/weatherrecap/internal/storage"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

func serve(ctx context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBDriver, cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		log.Error("Failed to init DB", "error", err)
		return err
	}
	defer db.Close()

	completer := llm.NewClient(llm.Config{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Timeout:     cfg.LLMTimeout,
		MinInterval: cfg.LLMMinInterval,
	})

	runner := render.NewExecRunner(cfg.RenderDir, cfg.RenderCommand)
	worker := render.NewWorker(cfg.RenderConcurrency, cfg.RenderTimeout, log)
	worker.Start()
	defer worker.Stop()

	h := httpapp.NewHandler(
		app.NewCatalogService(db),
		app.NewWeatherService(db, completer, cfg.WeatherDataDir),
		app.NewSceneService(db, completer),
		app.NewRenderService(db, runner, worker, cfg.RenderDir, cfg.RenderOutput),
		log,
	)
	h.VideosDir = filepath.Join(cfg.RenderDir, constants.RenderOutputSubdir)
	if err := storage.EnsureDir(h.VideosDir); err != nil {
		log.Error("Failed to create render output dir", "dir", h.VideosDir, "error", err)
		return err
	}
	h.CORSOrigins = cfg.CORSOrigins

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Router(),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", "addr", srv.Addr, "db_driver", cfg.DBDriver, "render_dir", cfg.RenderDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		return err
	}

	// Deferred calls stop the render worker before the database closes.
	log.Info("Server exiting")
	return nil
}
