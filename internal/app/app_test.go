package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/render"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

func setupTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "test_app.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// fakeLLM returns canned completions and records what it was asked.
type fakeLLM struct {
	err      error
	response string
	system   string
	user     string
	calls    int
	mu       sync.Mutex
}

func (f *fakeLLM) Complete(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = system
	f.user = user
	return f.response, f.err
}

// fakeRunner stands in for the external renderer.
type fakeRunner struct {
	err    error
	stderr string
	calls  int
	mu     sync.Mutex
}

func (f *fakeRunner) Run(ctx context.Context) (*render.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	res := &render.Result{Stdout: "done", Stderr: f.stderr}
	if f.err != nil {
		return res, &render.ExitError{Err: f.err, Result: res}
	}
	return res, nil
}

func assertKind(t *testing.T, err error, want domain.ErrorKind, wantMsg string) {
	t.Helper()
	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *domain.Error, got %v", err)
	}
	if appErr.Kind != want {
		t.Errorf("expected kind %s, got %s", want, appErr.Kind)
	}
	if wantMsg != "" && appErr.Message != wantMsg {
		t.Errorf("expected message %q, got %q", wantMsg, appErr.Message)
	}
}

// seedWizard creates an idea, a prompt and a wizard linking them.
func seedWizard(t *testing.T, db *store.DB) *domain.Wizard {
	t.Helper()
	ctx := context.Background()
	catalog := NewCatalogService(db)

	idea, err := catalog.CreateIdea(ctx, "Autumn", "Autumn weather in Bratislava", "recap")
	if err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}
	prompt := &domain.Prompt{Name: "monthly", Language: "en", Type: "weather", Content: "Summarize each month", IdeaID: &idea.ID}
	if err := catalog.CreatePrompt(ctx, prompt); err != nil {
		t.Fatalf("CreatePrompt failed: %v", err)
	}
	w, err := catalog.CreateWizard(ctx, idea.ID, prompt.ID)
	if err != nil {
		t.Fatalf("CreateWizard failed: %v", err)
	}
	return w
}
