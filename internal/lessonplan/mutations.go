package lessonplan

import (
	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/google/uuid"
)

// The mutation API mirrors the worksheet package: pure functions that copy
// the state, apply an edit, and report whether anything changed.

// PhaseSectionPatch carries optional phase-section updates. Nil fields keep
// the current (or default) value.
type PhaseSectionPatch struct {
	Duration *int
	Content  *string
}

// UpsertPhaseSection merges the patch into the existing section for the phase
// or inserts a fresh default section carrying the patch. Unknown phases are a
// no-op; the section list never gains a second entry for the same phase.
func UpsertPhaseSection(p LessonPlan, phase domain.Phase, patch PhaseSectionPatch) (LessonPlan, bool) {
	if !phase.IsValid() {
		return p, false
	}

	next := p.Clone()
	for i, section := range next.Sections {
		if section.Phase != phase {
			continue
		}
		applyPhasePatch(&next.Sections[i], patch)
		return next, true
	}

	section := PhaseSection{
		ID:       uuid.New(),
		Phase:    phase,
		Duration: DefaultPhaseDuration,
	}
	applyPhasePatch(&section, patch)
	next.Sections = append(next.Sections, section)
	return next, true
}

func applyPhasePatch(section *PhaseSection, patch PhaseSectionPatch) {
	if patch.Duration != nil && *patch.Duration >= 0 {
		section.Duration = *patch.Duration
	}
	if patch.Content != nil {
		section.Content = *patch.Content
	}
}

// SetDuration sets the plan's total duration in minutes. Negative values are
// a no-op.
func SetDuration(p LessonPlan, minutes int) (LessonPlan, bool) {
	if minutes < 0 {
		return p, false
	}
	next := p.Clone()
	next.Duration = minutes
	return next, true
}

// AddObjective appends a learning objective.
func AddObjective(p LessonPlan, objective string) LessonPlan {
	next := p.Clone()
	next.Objectives = append(next.Objectives, objective)
	return next
}

// UpdateObjective replaces the objective at the given index.
func UpdateObjective(p LessonPlan, index int, objective string) (LessonPlan, bool) {
	if index < 0 || index >= len(p.Objectives) {
		return p, false
	}
	next := p.Clone()
	next.Objectives[index] = objective
	return next, true
}

// RemoveObjective deletes the objective at the given index.
func RemoveObjective(p LessonPlan, index int) (LessonPlan, bool) {
	if index < 0 || index >= len(p.Objectives) {
		return p, false
	}
	next := p.Clone()
	next.Objectives = append(next.Objectives[:index], next.Objectives[index+1:]...)
	return next, true
}

// AddMaterial appends a required material.
func AddMaterial(p LessonPlan, material string) LessonPlan {
	next := p.Clone()
	next.Materials = append(next.Materials, material)
	return next
}

// UpdateMaterial replaces the material at the given index.
func UpdateMaterial(p LessonPlan, index int, material string) (LessonPlan, bool) {
	if index < 0 || index >= len(p.Materials) {
		return p, false
	}
	next := p.Clone()
	next.Materials[index] = material
	return next, true
}

// RemoveMaterial deletes the material at the given index.
func RemoveMaterial(p LessonPlan, index int) (LessonPlan, bool) {
	if index < 0 || index >= len(p.Materials) {
		return p, false
	}
	next := p.Clone()
	next.Materials = append(next.Materials[:index], next.Materials[index+1:]...)
	return next, true
}

// Normalize applies the structural invariants to state that arrives from
// outside the mutation API: invalid phases are dropped and duplicate phase
// entries collapse to the first occurrence.
func Normalize(p LessonPlan) LessonPlan {
	next := p.Clone()
	seen := map[domain.Phase]struct{}{}
	sections := next.Sections[:0]
	for _, section := range next.Sections {
		if !section.Phase.IsValid() {
			continue
		}
		if _, ok := seen[section.Phase]; ok {
			continue
		}
		seen[section.Phase] = struct{}{}
		if section.Duration < 0 {
			section.Duration = DefaultPhaseDuration
		}
		sections = append(sections, section)
	}
	next.Sections = sections
	if next.Duration < 0 {
		next.Duration = 0
	}
	return next
}
