package app

import (
	"context"
	"testing"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

func TestCatalogService_CreateIdeaValidation(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name, ideaName, desc, ideaType string
	}{
		{"missing name", "", "d", "t"},
		{"missing description", "n", "", "t"},
		{"missing type", "n", "d", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateIdea(ctx, tt.ideaName, tt.desc, tt.ideaType)
			assertKind(t, err, domain.KindValidation, "Chýbajú povinné údaje!")
		})
	}
}

func TestCatalogService_Ideas(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	idea, err := svc.CreateIdea(ctx, "Storm", "x", "demo")
	if err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	got, err := svc.GetIdea(ctx, idea.ID)
	if err != nil || got.Name != "Storm" {
		t.Fatalf("GetIdea: %+v err=%v", got, err)
	}

	_, err = svc.GetIdea(ctx, idea.ID+100)
	assertKind(t, err, domain.KindNotFound, "Nápad nenájdený!")
}

func TestCatalogService_PromptsAndVotes(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	err := svc.CreatePrompt(ctx, &domain.Prompt{Name: "p", Language: "en", Type: "t"})
	assertKind(t, err, domain.KindValidation, "Missing required fields: name, language, type, content.")

	p := &domain.Prompt{Name: "p", Language: "en", Type: "t", Content: "c"}
	if err := svc.CreatePrompt(ctx, p); err != nil {
		t.Fatalf("CreatePrompt failed: %v", err)
	}

	if err := svc.LikePrompt(ctx, p.ID); err != nil {
		t.Fatalf("LikePrompt failed: %v", err)
	}
	if err := svc.DislikePrompt(ctx, p.ID); err != nil {
		t.Fatalf("DislikePrompt failed: %v", err)
	}
	assertKind(t, svc.LikePrompt(ctx, 999), domain.KindNotFound, "Prompt not found")
	assertKind(t, svc.DislikePrompt(ctx, 999), domain.KindNotFound, "Prompt not found")

	got, err := svc.GetPrompt(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if got.Likes != 1 || got.Dislikes != 1 {
		t.Errorf("expected 1/1 votes, got %d/%d", got.Likes, got.Dislikes)
	}
}

func TestCatalogService_Wizards(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	_, err := svc.CreateWizard(ctx, 0, 1)
	assertKind(t, err, domain.KindValidation, "idea_id and prompt_id are required")

	w := seedWizard(t, db)
	if w.Status != "pending" {
		t.Errorf("expected pending wizard, got %s", w.Status)
	}

	detail, err := svc.GetWizard(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWizard failed: %v", err)
	}
	if detail.Idea == nil || detail.Prompt == nil {
		t.Fatalf("expected idea and prompt resolved, got %+v", detail)
	}

	// dangling references resolve to nil
	orphan, err := svc.CreateWizard(ctx, 500, 600)
	if err != nil {
		t.Fatalf("CreateWizard failed: %v", err)
	}
	detail, err = svc.GetWizard(ctx, orphan.ID)
	if err != nil {
		t.Fatalf("GetWizard failed: %v", err)
	}
	if detail.Idea != nil || detail.Prompt != nil {
		t.Errorf("expected nil idea and prompt, got %+v", detail)
	}

	_, err = svc.GetWizard(ctx, 12345)
	assertKind(t, err, domain.KindNotFound, "Wizard not found")
}

func TestCatalogService_Videos(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	err := svc.CreateVideo(ctx, &domain.Video{Title: "t", Status: "s"})
	assertKind(t, err, domain.KindValidation, "wizard_id, title, and status are required.")

	_, err = svc.ListVideosByWizard(ctx, 4)
	assertKind(t, err, domain.KindNotFound, "No videos found for this wizard.")

	wizardID := int64(4)
	if err := svc.CreateVideo(ctx, &domain.Video{WizardID: &wizardID, Title: "t", Status: "completed"}); err != nil {
		t.Fatalf("CreateVideo failed: %v", err)
	}
	videos, err := svc.ListVideosByWizard(ctx, wizardID)
	if err != nil || len(videos) != 1 {
		t.Fatalf("ListVideosByWizard: %d videos, err=%v", len(videos), err)
	}
	if videos[0].FilePath != nil {
		t.Errorf("expected nil file path, got %q", *videos[0].FilePath)
	}
}

func TestCatalogService_ListTables(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))

	tables, err := svc.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if len(tables) < 7 {
		t.Errorf("expected at least 7 tables, got %v", tables)
	}
}
