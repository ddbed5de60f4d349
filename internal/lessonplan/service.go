package lessonplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// Service exposes lesson-plan document management and generation use-cases.
type Service interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*Document, error)
	Get(ctx context.Context, id uuid.UUID) (*Document, error)
	GetBySlug(ctx context.Context, slug string) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
	Update(ctx context.Context, req UpdateDocumentRequest) (*Document, error)
	Delete(ctx context.Context, req DeleteDocumentRequest) error
	Generate(ctx context.Context, req GenerateRequest) (*Document, error)
	Preview(ctx context.Context, id uuid.UUID, opts interfaces.ParseOptions) ([]byte, error)
}

// CreateDocumentRequest captures the information required to create a
// lesson-plan document.
type CreateDocumentRequest struct {
	// ID pins the document identifier when set; importers use this for
	// stable re-import identities. Zero means the service generates one.
	ID        uuid.UUID
	Slug      string
	Title     string
	State     LessonPlan
	CreatedBy uuid.UUID
	UpdatedBy uuid.UUID
}

// UpdateDocumentRequest replaces a document's title and/or builder state.
type UpdateDocumentRequest struct {
	ID        uuid.UUID
	Title     *string
	State     *LessonPlan
	UpdatedBy uuid.UUID
}

// DeleteDocumentRequest captures document deletion inputs.
type DeleteDocumentRequest struct {
	ID         uuid.UUID
	DeletedBy  uuid.UUID
	HardDelete bool
}

// GenerateRequest runs the Markdown serializer over a stored document.
type GenerateRequest struct {
	ID          uuid.UUID
	GeneratedBy uuid.UUID
}

var (
	ErrDocumentIDRequired  = errors.New("lessonplan: document id required")
	ErrSlugRequired        = errors.New("lessonplan: slug is required")
	ErrSlugInvalid         = errors.New("lessonplan: slug contains invalid characters")
	ErrSlugExists          = errors.New("lessonplan: slug already exists")
	ErrPhaseInvalid        = errors.New("lessonplan: unknown phase")
	ErrParserNotConfigured = errors.New("lessonplan: markdown parser not configured")
	ErrNothingToPreview    = errors.New("lessonplan: document has no generated markdown")
	ErrNoFieldsToUpdate    = errors.New("lessonplan: update requires at least one field")
)

// Repository abstracts storage operations for lesson-plan documents.
type Repository interface {
	Create(ctx context.Context, record *Document) (*Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	GetBySlug(ctx context.Context, slug string) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
	Update(ctx context.Context, record *Document) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID, hardDelete bool) error
}

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// GenerateHook receives the Markdown emitted by Generate.
type GenerateHook func(ctx context.Context, doc *Document, markdown string) error

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new documents.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithParser supplies the Markdown parser used for HTML previews.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *service) {
		s.parser = parser
	}
}

// WithGenerateHook registers a callback invoked after each successful
// Generate with the freshly serialized Markdown.
func WithGenerateHook(hook GenerateHook) ServiceOption {
	return func(s *service) {
		s.onGenerate = hook
	}
}

// WithSlugNormalizer overrides the slug normalizer applied to incoming slugs.
func WithSlugNormalizer(normalizer slug.Normalizer) ServiceOption {
	return func(s *service) {
		if normalizer != nil {
			s.slugs = normalizer
		}
	}
}

// service implements Service.
type service struct {
	documents  Repository
	now        func() time.Time
	id         IDGenerator
	parser     interfaces.MarkdownParser
	onGenerate GenerateHook
	slugs      slug.Normalizer
}

// NewService constructs a lesson-plan document service.
func NewService(documents Repository, opts ...ServiceOption) Service {
	s := &service{
		documents: documents,
		now:       time.Now,
		id:        uuid.New,
		slugs:     slug.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create validates and persists a new lesson-plan document.
func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (*Document, error) {
	normalizedSlug, err := s.normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	if err := validateState(req.State); err != nil {
		return nil, err
	}

	if existing, err := s.documents.GetBySlug(ctx, normalizedSlug); err == nil && existing != nil {
		return nil, ErrSlugExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	now := s.now()
	state := Normalize(req.State)

	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}

	record := &Document{
		ID:        id,
		Slug:      normalizedSlug,
		Title:     documentTitle(req.Title, state),
		State:     state,
		CreatedBy: req.CreatedBy,
		UpdatedBy: req.UpdatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.documents.Create(ctx, record)
}

// Get fetches a document by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	if id == uuid.Nil {
		return nil, ErrDocumentIDRequired
	}
	return s.documents.GetByID(ctx, id)
}

// GetBySlug fetches a document by its slug.
func (s *service) GetBySlug(ctx context.Context, rawSlug string) (*Document, error) {
	normalized, err := s.normalizeSlug(rawSlug)
	if err != nil {
		return nil, err
	}
	return s.documents.GetBySlug(ctx, normalized)
}

// List returns all lesson-plan documents.
func (s *service) List(ctx context.Context) ([]*Document, error) {
	return s.documents.List(ctx)
}

// Update replaces the document's title and/or builder state.
func (s *service) Update(ctx context.Context, req UpdateDocumentRequest) (*Document, error) {
	if req.ID == uuid.Nil {
		return nil, ErrDocumentIDRequired
	}
	if req.Title == nil && req.State == nil {
		return nil, ErrNoFieldsToUpdate
	}

	record, err := s.documents.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.State != nil {
		if err := validateState(*req.State); err != nil {
			return nil, err
		}
		record.State = Normalize(*req.State)
		record.Title = documentTitle(record.Title, record.State)
	}
	if req.Title != nil {
		record.Title = *req.Title
		record.State.Title = *req.Title
	}
	if req.UpdatedBy != uuid.Nil {
		record.UpdatedBy = req.UpdatedBy
	}
	record.UpdatedAt = s.now()

	return s.documents.Update(ctx, record)
}

// Delete removes a document.
func (s *service) Delete(ctx context.Context, req DeleteDocumentRequest) error {
	if req.ID == uuid.Nil {
		return ErrDocumentIDRequired
	}
	return s.documents.Delete(ctx, req.ID, req.HardDelete)
}

// Generate serializes the stored state to Markdown and records the output on
// the document.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (*Document, error) {
	if req.ID == uuid.Nil {
		return nil, ErrDocumentIDRequired
	}

	record, err := s.documents.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	markdown := RenderMarkdown(record.State)
	now := s.now()
	record.Markdown = &markdown
	record.GeneratedAt = &now
	if req.GeneratedBy != uuid.Nil {
		record.UpdatedBy = req.GeneratedBy
	}
	record.UpdatedAt = now

	updated, err := s.documents.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	if s.onGenerate != nil {
		if err := s.onGenerate(ctx, updated, markdown); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// Preview renders the document's generated Markdown to HTML.
func (s *service) Preview(ctx context.Context, id uuid.UUID, opts interfaces.ParseOptions) ([]byte, error) {
	if s.parser == nil {
		return nil, ErrParserNotConfigured
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Markdown == nil {
		return nil, ErrNothingToPreview
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.parser.ParseWithOptions([]byte(*record.Markdown), opts)
}

func (s *service) normalizeSlug(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrSlugRequired
	}
	normalized, err := s.slugs.Normalize(trimmed)
	if err != nil || !slug.IsValid(normalized) {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

func validateState(p LessonPlan) error {
	for _, section := range p.Sections {
		if !section.Phase.IsValid() {
			return ErrPhaseInvalid
		}
	}
	return nil
}

func documentTitle(title string, state LessonPlan) string {
	if trimmed := strings.TrimSpace(state.Title); trimmed != "" {
		return trimmed
	}
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	return defaultDocumentTitle
}
