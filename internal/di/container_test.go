package di_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-coursebuilder/internal/di"
	"github.com/goliatone/go-coursebuilder/internal/runtimeconfig"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/google/uuid"
)

func TestNewContainer_Defaults(t *testing.T) {
	c, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if c.WorksheetService() == nil {
		t.Fatalf("expected worksheet service wired")
	}
	if c.LessonPlanService() == nil {
		t.Fatalf("expected lesson plan service wired")
	}
	if c.Importer() == nil {
		t.Fatalf("expected importer wired")
	}
	if c.MarkdownParser() == nil {
		t.Fatalf("expected parser configured when markdown is enabled")
	}
	if c.DB() != nil {
		t.Fatalf("expected no database by default")
	}
}

func TestNewContainer_MarkdownDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Enabled = false

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if c.MarkdownParser() != nil {
		t.Fatalf("expected parser omitted when markdown is disabled")
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "dynamo"

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestNewContainer_CacheEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Enabled = true

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if c.WorksheetService() == nil || c.LessonPlanService() == nil {
		t.Fatalf("expected services wired regardless of cache outcome")
	}
}

func TestNewContainer_ServiceOverride(t *testing.T) {
	repo := worksheet.NewMemoryRepository()
	override := worksheet.NewService(repo,
		worksheet.WithIDGenerator(func() uuid.UUID { return uuid.MustParse("00000000-0000-0000-0000-000000000001") }),
	)

	c, err := di.NewContainer(runtimeconfig.DefaultConfig(), di.WithWorksheetService(override))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	doc, err := c.WorksheetService().Create(context.Background(), worksheet.CreateDocumentRequest{Slug: "override"})
	if err != nil {
		t.Fatalf("create via overridden service: %v", err)
	}
	if doc.ID != uuid.MustParse("00000000-0000-0000-0000-000000000001") {
		t.Fatalf("expected override service in use, got id %s", doc.ID)
	}
}

func TestNewContainer_RepositoryOverride(t *testing.T) {
	repo := worksheet.NewMemoryRepository()

	c, err := di.NewContainer(runtimeconfig.DefaultConfig(), di.WithWorksheetRepository(repo))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	ctx := context.Background()
	doc, err := c.WorksheetService().Create(ctx, worksheet.CreateDocumentRequest{Slug: "shared-repo"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.GetByID(ctx, doc.ID); err != nil {
		t.Fatalf("expected document visible through injected repository: %v", err)
	}
}
