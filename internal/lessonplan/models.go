package lessonplan

import (
	"time"

	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DefaultPhaseDuration is the duration assigned to a phase section that has
// not been edited yet.
const DefaultPhaseDuration = 10

// LessonPlan is the in-memory builder state for a 5E-model lesson plan.
// Phase sections are sparse: a phase without a stored section reads back as
// the default through PhaseSectionOrDefault and is only persisted once edited.
type LessonPlan struct {
	Title      string         `json:"title,omitempty"`
	Duration   int            `json:"duration"`
	Objectives []string       `json:"objectives,omitempty"`
	Materials  []string       `json:"materials,omitempty"`
	Sections   []PhaseSection `json:"sections"`
}

// PhaseSection holds the content planned for one 5E phase. The section list
// carries at most one entry per phase; UpsertPhaseSection enforces that.
type PhaseSection struct {
	ID       uuid.UUID    `json:"id"`
	Phase    domain.Phase `json:"phase"`
	Duration int          `json:"duration"`
	Content  string       `json:"content"`
}

// Clone returns a deep copy of the lesson-plan state.
func (p LessonPlan) Clone() LessonPlan {
	out := p
	if p.Objectives != nil {
		out.Objectives = append([]string(nil), p.Objectives...)
	}
	if p.Materials != nil {
		out.Materials = append([]string(nil), p.Materials...)
	}
	if p.Sections != nil {
		out.Sections = append([]PhaseSection(nil), p.Sections...)
	}
	return out
}

// PhaseSectionOrDefault returns the stored section for the phase, or the
// unpersisted default when the phase has not been edited.
func (p LessonPlan) PhaseSectionOrDefault(phase domain.Phase) PhaseSection {
	for _, section := range p.Sections {
		if section.Phase == phase {
			return section
		}
	}
	return PhaseSection{Phase: phase, Duration: DefaultPhaseDuration}
}

// Document is the persisted record wrapping a lesson-plan builder state.
type Document struct {
	bun.BaseModel `bun:"table:lesson_plan_documents,alias:lpd"`

	ID          uuid.UUID  `bun:",pk,type:uuid"    json:"id"`
	Slug        string     `bun:"slug,notnull"     json:"slug"`
	Title       string     `bun:"title,notnull"    json:"title"`
	State       LessonPlan `bun:"state,type:jsonb,notnull" json:"state"`
	Markdown    *string    `bun:"markdown"         json:"markdown,omitempty"`
	GeneratedAt *time.Time `bun:"generated_at,nullzero" json:"generated_at,omitempty"`
	CreatedBy   uuid.UUID  `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy   uuid.UUID  `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
