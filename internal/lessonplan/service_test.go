package lessonplan_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/internal/markdown"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Unix(0, 0).UTC() }
}

func newTestService(opts ...lessonplan.ServiceOption) lessonplan.Service {
	base := []lessonplan.ServiceOption{lessonplan.WithClock(fixedClock())}
	return lessonplan.NewService(lessonplan.NewMemoryRepository(), append(base, opts...)...)
}

func magnetismPlan() lessonplan.LessonPlan {
	plan, _ := lessonplan.SetDuration(lessonplan.LessonPlan{Title: "Introduction to Magnetism"}, 50)
	plan = lessonplan.AddObjective(plan, "Describe how magnets attract and repel")
	plan = lessonplan.AddMaterial(plan, "Bar magnets")
	plan, _ = lessonplan.UpsertPhaseSection(plan, domain.PhaseEngage, lessonplan.PhaseSectionPatch{
		Content: strPtr("Show a levitating magnet video."),
	})
	return plan
}

func TestServiceCreate(t *testing.T) {
	svc := newTestService()

	doc, err := svc.Create(context.Background(), lessonplan.CreateDocumentRequest{
		Slug:      "Introduction to Magnetism",
		State:     magnetismPlan(),
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if doc.Slug != "introduction-to-magnetism" {
		t.Fatalf("expected normalized slug, got %q", doc.Slug)
	}
	if doc.Title != "Introduction to Magnetism" {
		t.Fatalf("expected title derived from state, got %q", doc.Title)
	}
	if !doc.CreatedAt.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("expected clock-stamped CreatedAt, got %v", doc.CreatedAt)
	}
}

func TestServiceCreate_DuplicateSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, lessonplan.CreateDocumentRequest{Slug: "unit-1"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(ctx, lessonplan.CreateDocumentRequest{Slug: "unit-1"}); !errors.Is(err, lessonplan.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestServiceCreate_RejectsInvalidPhase(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), lessonplan.CreateDocumentRequest{
		Slug: "bad-phase",
		State: lessonplan.LessonPlan{
			Sections: []lessonplan.PhaseSection{{ID: uuid.New(), Phase: "warmup"}},
		},
	})
	if !errors.Is(err, lessonplan.ErrPhaseInvalid) {
		t.Fatalf("expected ErrPhaseInvalid, got %v", err)
	}
}

func TestServiceUpdate_ReplacesState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, lessonplan.CreateDocumentRequest{Slug: "editable", State: magnetismPlan()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	next := created.State
	next, _ = lessonplan.SetDuration(next, 60)

	updated, err := svc.Update(ctx, lessonplan.UpdateDocumentRequest{ID: created.ID, State: &next})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.State.Duration != 60 {
		t.Fatalf("expected replaced state persisted, got %d", updated.State.Duration)
	}

	if _, err := svc.Update(ctx, lessonplan.UpdateDocumentRequest{ID: created.ID}); !errors.Is(err, lessonplan.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, lessonplan.CreateDocumentRequest{Slug: "removable"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(ctx, lessonplan.DeleteDocumentRequest{ID: created.ID}); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var notFound *lessonplan.NotFoundError
	if _, err := svc.Get(ctx, created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestServiceGenerate(t *testing.T) {
	var hookMarkdown string
	svc := newTestService(lessonplan.WithGenerateHook(func(_ context.Context, _ *lessonplan.Document, md string) error {
		hookMarkdown = md
		return nil
	}))
	ctx := context.Background()

	created, err := svc.Create(ctx, lessonplan.CreateDocumentRequest{Slug: "generated", State: magnetismPlan()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	doc, err := svc.Generate(ctx, lessonplan.GenerateRequest{ID: created.ID})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if doc.Markdown == nil || !strings.Contains(*doc.Markdown, "## 5E Model Lesson Flow") {
		t.Fatalf("expected generated lesson flow markdown")
	}
	if doc.GeneratedAt == nil {
		t.Fatalf("expected GeneratedAt to be stamped")
	}
	if hookMarkdown != *doc.Markdown {
		t.Fatalf("expected generate hook to receive the emitted markdown")
	}
}

func TestServicePreview(t *testing.T) {
	svc := newTestService(lessonplan.WithParser(markdown.DefaultParser()))
	ctx := context.Background()

	created, err := svc.Create(ctx, lessonplan.CreateDocumentRequest{Slug: "previewable", State: magnetismPlan()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Preview(ctx, created.ID, interfaces.ParseOptions{}); !errors.Is(err, lessonplan.ErrNothingToPreview) {
		t.Fatalf("expected ErrNothingToPreview before generate, got %v", err)
	}

	if _, err := svc.Generate(ctx, lessonplan.GenerateRequest{ID: created.ID}); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	html, err := svc.Preview(ctx, created.ID, interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("Preview returned error: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Fatalf("expected rendered heading in preview output:\n%s", html)
	}
}
