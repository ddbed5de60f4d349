package coursebuilder_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	coursebuilder "github.com/goliatone/go-coursebuilder"
	"github.com/goliatone/go-coursebuilder/domain"
	"github.com/goliatone/go-coursebuilder/internal/di"
	"github.com/goliatone/go-coursebuilder/internal/storage"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

func TestModule_MemoryLifecycle(t *testing.T) {
	module, err := coursebuilder.New(coursebuilder.DefaultConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	state, section := worksheet.AddSection(worksheet.Worksheet{Title: "Geography Review"}, domain.SectionFillBlank)
	state, _ = worksheet.SetItemContent(state, section.ID, 0, "The capital of France is ___.")
	state, _ = worksheet.SetBlankAnswer(state, section.ID, 0, 0, "Paris")

	doc, err := module.Worksheets().Create(ctx, worksheet.CreateDocumentRequest{
		Slug:      "geography-review",
		State:     state,
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create worksheet: %v", err)
	}

	generated, err := module.Worksheets().Generate(ctx, worksheet.GenerateRequest{ID: doc.ID})
	if err != nil {
		t.Fatalf("generate worksheet: %v", err)
	}
	if generated.Markdown == nil || !strings.Contains(*generated.Markdown, "## Answer Key") {
		t.Fatalf("expected answer key in generated markdown")
	}

	html, err := module.Worksheets().Preview(ctx, doc.ID, interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("preview worksheet: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Fatalf("expected rendered heading in preview:\n%s", html)
	}
}

func TestModule_ImporterRoundTrip(t *testing.T) {
	module, err := coursebuilder.New(coursebuilder.DefaultConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	source := `---
slug: imported-plan
title: Imported Plan
lesson_plan:
  duration: 40
  sections:
    - phase: explore
      content: "Station rotation."
---
`
	doc, err := module.Importer().ImportLessonPlan(context.Background(), []byte(source), uuid.New())
	if err != nil {
		t.Fatalf("import lesson plan: %v", err)
	}
	if doc.State.Duration != 40 {
		t.Fatalf("expected imported duration, got %d", doc.State.Duration)
	}
}

func TestModule_BunStorage(t *testing.T) {
	dsn := fmt.Sprintf("file:module_bun_test_%d?mode=memory&cache=shared&_fk=1", time.Now().UnixNano())
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db, err := storage.NewDB(sqldb, "sqlite3")
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := storage.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := coursebuilder.DefaultConfig()
	cfg.Storage.Provider = "bun"

	module, err := coursebuilder.New(cfg, di.WithBunDB(db))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	doc, err := module.Worksheets().Create(ctx, worksheet.CreateDocumentRequest{Slug: "persisted"})
	if err != nil {
		t.Fatalf("create worksheet: %v", err)
	}

	fetched, err := module.Worksheets().GetBySlug(ctx, "persisted")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if fetched.ID != doc.ID {
		t.Fatalf("expected %s, got %s", doc.ID, fetched.ID)
	}
}

func TestModule_InvalidConfigRejected(t *testing.T) {
	cfg := coursebuilder.DefaultConfig()
	cfg.Storage.Provider = "dynamo"

	if _, err := coursebuilder.New(cfg); err == nil {
		t.Fatalf("expected config validation error")
	}
}
