package lessonplan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:lessonplan_test_%d?mode=memory&cache=shared&_fk=1", time.Now().UnixNano())
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.NewCreateTable().Model((*Document)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func newStoredDocument() *Document {
	now := time.Now().UTC()
	plan, _ := SetDuration(LessonPlan{Title: "Stored Plan"}, 45)
	plan, _ = UpsertPhaseSection(plan, domain.PhaseEngage, PhaseSectionPatch{
		Content: ptr("Hook the class."),
	})

	return &Document{
		ID:        uuid.New(),
		Slug:      "stored-plan",
		Title:     "Stored Plan",
		State:     plan,
		CreatedBy: uuid.New(),
		UpdatedBy: uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ptr(s string) *string { return &s }

func TestBunRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStoredDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.State.Duration != 45 {
		t.Fatalf("expected state payload round-tripped, got duration %d", fetched.State.Duration)
	}
	if len(fetched.State.Sections) != 1 || fetched.State.Sections[0].Phase != domain.PhaseEngage {
		t.Fatalf("expected engage section round-tripped, got %+v", fetched.State.Sections)
	}
}

func TestBunRepository_GetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStoredDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.GetBySlug(ctx, "stored-plan")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, fetched.ID)
	}

	var notFound *NotFoundError
	if _, err := repo.GetBySlug(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBunRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStoredDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	markdown := RenderMarkdown(created.State)
	now := time.Now().UTC()
	created.Markdown = &markdown
	created.GeneratedAt = &now
	created.UpdatedAt = now

	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Markdown == nil || *updated.Markdown != markdown {
		t.Fatalf("expected markdown persisted")
	}

	if err := repo.Delete(ctx, created.ID, false); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	var notFound *NotFoundError
	if err := repo.Delete(ctx, created.ID, false); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError on repeated soft delete, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID, true); err != nil {
		t.Fatalf("hard delete: %v", err)
	}
}
