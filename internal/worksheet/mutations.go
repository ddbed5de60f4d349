package worksheet

import (
	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/google/uuid"
)

// The mutation API is pure: every operation deep-copies the incoming state and
// returns a new value. Unknown section ids and out-of-range indices never
// error; they degrade to no-ops, and the returned bool reports whether the
// edit was applied so callers can tell the two apart.

// SectionPatch carries optional section field updates. Nil fields keep the
// current value; a non-nil Items slice replaces the item list wholesale.
type SectionPatch struct {
	Title *string
	Items []Item
}

// ItemPatch is the per-kind patch union for UpdateItem. A patch whose kind
// does not match the section's kind is ignored.
type ItemPatch interface {
	patchKind() domain.SectionKind
}

// FillBlankItemPatch updates a fill-blank item. Setting Content re-runs the
// blank synchronizer over the (possibly also patched) answers.
type FillBlankItemPatch struct {
	Content *string
	Answers []string
}

// MatchingItemPatch updates one side or both of a matching pair.
type MatchingItemPatch struct {
	Left  *string
	Right *string
}

// ProblemItemPatch updates a problem's content or answer.
type ProblemItemPatch struct {
	Content *string
	Answer  *string
}

func (FillBlankItemPatch) patchKind() domain.SectionKind { return domain.SectionFillBlank }
func (MatchingItemPatch) patchKind() domain.SectionKind  { return domain.SectionMatching }
func (ProblemItemPatch) patchKind() domain.SectionKind   { return domain.SectionProblems }

// AddSection appends a new section with a fresh id, a default title derived
// from the kind, and one default item. The created section is returned so
// callers can track its id.
func AddSection(w Worksheet, kind domain.SectionKind) (Worksheet, Section) {
	next := w.Clone()
	section := Section{
		ID:    uuid.New(),
		Kind:  kind,
		Title: DefaultSectionTitle(kind),
		Items: []Item{DefaultItem(kind)},
	}
	next.Sections = append(next.Sections, section)
	return next, section.Clone()
}

// UpdateSection merges the patch into the section with the given id.
func UpdateSection(w Worksheet, id uuid.UUID, patch SectionPatch) (Worksheet, bool) {
	idx := findSection(w, id)
	if idx < 0 {
		return w, false
	}

	next := w.Clone()
	section := &next.Sections[idx]
	if patch.Title != nil {
		section.Title = *patch.Title
	}
	if patch.Items != nil {
		section.Items = make([]Item, len(patch.Items))
		for i, item := range patch.Items {
			section.Items[i] = cloneItem(item)
		}
	}
	normalizeSection(section)
	return next, true
}

// DeleteSection removes the section with the given id.
func DeleteSection(w Worksheet, id uuid.UUID) (Worksheet, bool) {
	idx := findSection(w, id)
	if idx < 0 {
		return w, false
	}

	next := w.Clone()
	next.Sections = append(next.Sections[:idx], next.Sections[idx+1:]...)
	return next, true
}

// AddItem appends a default item of the section's kind.
func AddItem(w Worksheet, sectionID uuid.UUID) (Worksheet, bool) {
	idx := findSection(w, sectionID)
	if idx < 0 {
		return w, false
	}

	next := w.Clone()
	section := &next.Sections[idx]
	section.Items = append(section.Items, DefaultItem(section.Kind))
	return next, true
}

// UpdateItem merges a per-kind patch into the item at the given index. The
// edit is dropped when the index is out of bounds or the patch kind does not
// match the section kind.
func UpdateItem(w Worksheet, sectionID uuid.UUID, index int, patch ItemPatch) (Worksheet, bool) {
	idx := findSection(w, sectionID)
	if idx < 0 {
		return w, false
	}
	section := w.Sections[idx]
	if index < 0 || index >= len(section.Items) || patch == nil || patch.patchKind() != section.Kind {
		return w, false
	}

	next := w.Clone()
	items := next.Sections[idx].Items

	switch p := patch.(type) {
	case FillBlankItemPatch:
		item := items[index].(FillBlankItem)
		if p.Content != nil {
			item.Content = *p.Content
		}
		if p.Answers != nil {
			item.Answers = append([]string(nil), p.Answers...)
		}
		items[index] = syncItem(item)
	case MatchingItemPatch:
		item := items[index].(MatchingItem)
		if p.Left != nil {
			item.Left = *p.Left
		}
		if p.Right != nil {
			item.Right = *p.Right
		}
		items[index] = item
	case ProblemItemPatch:
		item := items[index].(ProblemItem)
		if p.Content != nil {
			item.Content = *p.Content
		}
		if p.Answer != nil {
			item.Answer = *p.Answer
		}
		items[index] = item
	default:
		return w, false
	}
	return next, true
}

// RemoveItem deletes the item at the given index, but only while the section
// keeps at least one item afterwards. Item lists are never left empty.
func RemoveItem(w Worksheet, sectionID uuid.UUID, index int) (Worksheet, bool) {
	idx := findSection(w, sectionID)
	if idx < 0 {
		return w, false
	}
	section := w.Sections[idx]
	if index < 0 || index >= len(section.Items) || len(section.Items) <= 1 {
		return w, false
	}

	next := w.Clone()
	items := next.Sections[idx].Items
	next.Sections[idx].Items = append(items[:index], items[index+1:]...)
	return next, true
}

// SetItemContent replaces a fill-blank item's content and reconciles its
// answers through the blank synchronizer in the same step.
func SetItemContent(w Worksheet, sectionID uuid.UUID, index int, content string) (Worksheet, bool) {
	return UpdateItem(w, sectionID, index, FillBlankItemPatch{Content: &content})
}

// SetBlankAnswer sets one answer of a fill-blank item by position.
func SetBlankAnswer(w Worksheet, sectionID uuid.UUID, index, answerIndex int, value string) (Worksheet, bool) {
	idx := findSection(w, sectionID)
	if idx < 0 || w.Sections[idx].Kind != domain.SectionFillBlank {
		return w, false
	}
	section := w.Sections[idx]
	if index < 0 || index >= len(section.Items) {
		return w, false
	}
	item, ok := section.Items[index].(FillBlankItem)
	if !ok || answerIndex < 0 || answerIndex >= len(item.Answers) {
		return w, false
	}

	next := w.Clone()
	updated := next.Sections[idx].Items[index].(FillBlankItem)
	updated.Answers[answerIndex] = value
	next.Sections[idx].Items[index] = updated
	return next, true
}

// Normalize applies the structural invariants to a whole worksheet: every
// fill-blank item's answers are reconciled with its content and empty item
// lists gain the default item for their kind. Used when state arrives from
// outside the mutation API (persistence, import).
func Normalize(w Worksheet) Worksheet {
	next := w.Clone()
	for i := range next.Sections {
		normalizeSection(&next.Sections[i])
	}
	return next
}

func normalizeSection(section *Section) {
	if len(section.Items) == 0 {
		section.Items = []Item{DefaultItem(section.Kind)}
		return
	}
	for i, item := range section.Items {
		if fb, ok := item.(FillBlankItem); ok {
			section.Items[i] = syncItem(fb)
		}
	}
}

func findSection(w Worksheet, id uuid.UUID) int {
	for i, section := range w.Sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}
