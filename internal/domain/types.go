package domain

// SectionKind identifies the shape of items a worksheet section holds
type SectionKind string

const (
	// SectionFillBlank holds fill-in-the-blank prompts with per-blank answers
	SectionFillBlank SectionKind = "fill_blank"
	// SectionMatching holds left/right pairs rendered as a two-column table
	SectionMatching SectionKind = "matching"
	// SectionProblems holds free-form problems with a single answer each
	SectionProblems SectionKind = "problems"
)

// IsValid reports whether the kind is one of the known section kinds.
func (k SectionKind) IsValid() bool {
	switch k {
	case SectionFillBlank, SectionMatching, SectionProblems:
		return true
	}
	return false
}

// Phase identifies one of the five fixed 5E instructional-model stages
type Phase string

const (
	PhaseEngage    Phase = "engage"
	PhaseExplore   Phase = "explore"
	PhaseExplain   Phase = "explain"
	PhaseElaborate Phase = "elaborate"
	PhaseEvaluate  Phase = "evaluate"
)

// PhaseOrder lists the five phases in canonical lesson-flow order. Serialization
// always follows this order regardless of how phase sections were inserted.
var PhaseOrder = []Phase{
	PhaseEngage,
	PhaseExplore,
	PhaseExplain,
	PhaseElaborate,
	PhaseEvaluate,
}

// IsValid reports whether the phase is one of the five 5E stages.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseEngage, PhaseExplore, PhaseExplain, PhaseElaborate, PhaseEvaluate:
		return true
	}
	return false
}
