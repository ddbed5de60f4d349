package lessonplan

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository persists lesson-plan documents through go-repository-bun.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*Document]
}

// NewBunRepository constructs a bun-backed lesson-plan repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a bun-backed repository with optional
// read-through caching. Passing nil cache dependencies skips the wrapper.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewDocumentRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunRepository{db: db, repo: wrapped}
}

// Create inserts the supplied document.
func (r *BunRepository) Create(ctx context.Context, record *Document) (*Document, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a document by identifier.
func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "lesson plan document", id.String())
	}
	return result, nil
}

// GetBySlug retrieves a document by slug.
func (r *BunRepository) GetBySlug(ctx context.Context, slug string) (*Document, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "lesson plan document", slug)
	}
	return result, nil
}

// List returns all documents.
func (r *BunRepository) List(ctx context.Context) ([]*Document, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

// Update persists mutable document columns.
func (r *BunRepository) Update(ctx context.Context, record *Document) (*Document, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"slug",
			"title",
			"state",
			"markdown",
			"generated_at",
			"updated_by",
			"updated_at",
			"deleted_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "lesson plan document", record.ID.String())
	}
	return updated, nil
}

// Delete removes a document. Soft deletes mark deleted_at; hard deletes drop
// the row.
func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID, hardDelete bool) error {
	if r.db == nil {
		return fmt.Errorf("lesson plan repository: database not configured")
	}

	if !hardDelete {
		result, err := r.db.NewUpdate().
			Model((*Document)(nil)).
			Set("deleted_at = current_timestamp").
			Where("?TableAlias.id = ? AND ?TableAlias.deleted_at IS NULL", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("soft delete lesson plan document: %w", err)
		}
		return requireAffected(result, id)
	}

	result, err := r.db.NewDelete().
		Model((*Document)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete lesson plan document: %w", err)
	}
	return requireAffected(result, id)
}

func requireAffected(result interface{ RowsAffected() (int64, error) }, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("lesson plan delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Resource: "lesson plan document", Key: id.String()}
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
