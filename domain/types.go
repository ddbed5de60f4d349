package domain

import internaldomain "github.com/goliatone/go-coursebuilder/internal/domain"

// SectionKind identifies the shape of items a worksheet section holds.
type SectionKind = internaldomain.SectionKind

const (
	// SectionFillBlank holds fill-in-the-blank prompts with per-blank answers.
	SectionFillBlank = internaldomain.SectionFillBlank
	// SectionMatching holds left/right pairs rendered as a two-column table.
	SectionMatching = internaldomain.SectionMatching
	// SectionProblems holds free-form problems with a single answer each.
	SectionProblems = internaldomain.SectionProblems
)

// Phase identifies one of the five fixed 5E instructional-model stages.
type Phase = internaldomain.Phase

const (
	PhaseEngage    = internaldomain.PhaseEngage
	PhaseExplore   = internaldomain.PhaseExplore
	PhaseExplain   = internaldomain.PhaseExplain
	PhaseElaborate = internaldomain.PhaseElaborate
	PhaseEvaluate  = internaldomain.PhaseEvaluate
)

// PhaseOrderList returns the canonical 5E ordering used by the serializer.
func PhaseOrderList() []Phase {
	out := make([]Phase, len(internaldomain.PhaseOrder))
	copy(out, internaldomain.PhaseOrder)
	return out
}
