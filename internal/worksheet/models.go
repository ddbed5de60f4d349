package worksheet

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Worksheet is the in-memory builder state for a single worksheet. It is a
// plain value: mutation functions return a new Worksheet and never alias the
// input's slices.
type Worksheet struct {
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections"`
}

// Section groups items of a single kind under a numbered heading. The section
// kind is assigned at creation and drives how items are decoded and rendered.
type Section struct {
	ID    uuid.UUID          `json:"id"`
	Kind  domain.SectionKind `json:"kind"`
	Title string             `json:"title"`
	Items []Item             `json:"items"`
}

// Item is the tagged union of worksheet content units. The section's Kind
// identifies the concrete type; the serializer and mutation API switch over
// it exhaustively.
type Item interface {
	itemKind() domain.SectionKind
}

// FillBlankItem is a prompt containing zero or more blank markers with one
// answer per blank. Answers always holds max(1, blank count) entries.
type FillBlankItem struct {
	Content string   `json:"content"`
	Answers []string `json:"answers"`
}

// MatchingItem is one left/right pair of a matching exercise.
type MatchingItem struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// ProblemItem is a free-form problem with a single answer.
type ProblemItem struct {
	Content string `json:"content"`
	Answer  string `json:"answer"`
}

func (FillBlankItem) itemKind() domain.SectionKind { return domain.SectionFillBlank }
func (MatchingItem) itemKind() domain.SectionKind  { return domain.SectionMatching }
func (ProblemItem) itemKind() domain.SectionKind   { return domain.SectionProblems }

// DefaultItem returns the empty item shape for a section kind. Fill-blank
// items start with the single placeholder answer the synchronizer guarantees.
func DefaultItem(kind domain.SectionKind) Item {
	switch kind {
	case domain.SectionMatching:
		return MatchingItem{}
	case domain.SectionProblems:
		return ProblemItem{}
	default:
		return FillBlankItem{Answers: []string{""}}
	}
}

// DefaultSectionTitle derives the initial section heading from its kind.
func DefaultSectionTitle(kind domain.SectionKind) string {
	switch kind {
	case domain.SectionMatching:
		return "Matching"
	case domain.SectionProblems:
		return "Problems"
	default:
		return "Fill in the Blanks"
	}
}

// Clone returns a deep copy of the worksheet state.
func (w Worksheet) Clone() Worksheet {
	out := w
	if w.Sections != nil {
		out.Sections = make([]Section, len(w.Sections))
		for i, section := range w.Sections {
			out.Sections[i] = section.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the section, including item payloads.
func (s Section) Clone() Section {
	out := s
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		for i, item := range s.Items {
			out.Items[i] = cloneItem(item)
		}
	}
	return out
}

func cloneItem(item Item) Item {
	switch it := item.(type) {
	case FillBlankItem:
		copied := it
		copied.Answers = append([]string(nil), it.Answers...)
		return copied
	case MatchingItem:
		return it
	case ProblemItem:
		return it
	default:
		return item
	}
}

// UnmarshalJSON decodes the section's items into their concrete types based
// on the section kind. Marshalling needs no counterpart: encoding a concrete
// item value produces the shape expected here.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    uuid.UUID          `json:"id"`
		Kind  domain.SectionKind `json:"kind"`
		Title string             `json:"title"`
		Items []json.RawMessage  `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Kind = raw.Kind
	s.Title = raw.Title
	s.Items = make([]Item, 0, len(raw.Items))

	for _, payload := range raw.Items {
		item, err := decodeItem(raw.Kind, payload)
		if err != nil {
			return err
		}
		s.Items = append(s.Items, item)
	}
	return nil
}

func decodeItem(kind domain.SectionKind, payload json.RawMessage) (Item, error) {
	switch kind {
	case domain.SectionFillBlank:
		var item FillBlankItem
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("worksheet: decode fill_blank item: %w", err)
		}
		return item, nil
	case domain.SectionMatching:
		var item MatchingItem
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("worksheet: decode matching item: %w", err)
		}
		return item, nil
	case domain.SectionProblems:
		var item ProblemItem
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("worksheet: decode problems item: %w", err)
		}
		return item, nil
	default:
		return nil, fmt.Errorf("worksheet: unknown section kind %q", kind)
	}
}

// Document is the persisted record wrapping a worksheet builder state. The
// state itself is stored as a JSON payload; the surrounding columns carry the
// audit trail and the most recently generated Markdown.
type Document struct {
	bun.BaseModel `bun:"table:worksheet_documents,alias:wd"`

	ID          uuid.UUID  `bun:",pk,type:uuid"    json:"id"`
	Slug        string     `bun:"slug,notnull"     json:"slug"`
	Title       string     `bun:"title,notnull"    json:"title"`
	State       Worksheet  `bun:"state,type:jsonb,notnull" json:"state"`
	Markdown    *string    `bun:"markdown"         json:"markdown,omitempty"`
	GeneratedAt *time.Time `bun:"generated_at,nullzero" json:"generated_at,omitempty"`
	CreatedBy   uuid.UUID  `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy   uuid.UUID  `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
