package worksheet_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/google/uuid"
)

func TestSectionJSON_DecodesItemsByKind(t *testing.T) {
	state := worksheet.Worksheet{
		Title: "Mixed",
		Sections: []worksheet.Section{
			{
				ID:    uuid.New(),
				Kind:  domain.SectionFillBlank,
				Title: "Fill in the Blanks",
				Items: []worksheet.Item{
					worksheet.FillBlankItem{Content: "___ rises in the east.", Answers: []string{"The sun"}},
				},
			},
			{
				ID:    uuid.New(),
				Kind:  domain.SectionMatching,
				Title: "Matching",
				Items: []worksheet.Item{
					worksheet.MatchingItem{Left: "H2O", Right: "Water"},
				},
			},
			{
				ID:    uuid.New(),
				Kind:  domain.SectionProblems,
				Title: "Problems",
				Items: []worksheet.Item{
					worksheet.ProblemItem{Content: "What is 6 × 7?", Answer: "42"},
				},
			},
		},
	}

	payload, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal worksheet: %v", err)
	}

	var decoded worksheet.Worksheet
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal worksheet: %v", err)
	}

	if !reflect.DeepEqual(decoded, state) {
		t.Fatalf("decoded state diverges:\n got %#v\nwant %#v", decoded, state)
	}

	if _, ok := decoded.Sections[1].Items[0].(worksheet.MatchingItem); !ok {
		t.Fatalf("expected matching item type, got %T", decoded.Sections[1].Items[0])
	}
}

func TestSectionJSON_UnknownKindFails(t *testing.T) {
	payload := []byte(`{"id":"` + uuid.New().String() + `","kind":"essay","title":"Essay","items":[{}]}`)

	var section worksheet.Section
	if err := json.Unmarshal(payload, &section); err == nil {
		t.Fatalf("expected decode error for unknown section kind")
	}
}

func TestWorksheetClone_Independence(t *testing.T) {
	state, section := worksheet.AddSection(worksheet.Worksheet{Title: "Original"}, domain.SectionFillBlank)
	state, _ = worksheet.SetItemContent(state, section.ID, 0, "___!")

	clone := state.Clone()
	item := clone.Sections[0].Items[0].(worksheet.FillBlankItem)
	item.Answers[0] = "changed"
	clone.Sections[0].Title = "Changed"

	original := state.Sections[0].Items[0].(worksheet.FillBlankItem)
	if original.Answers[0] == "changed" {
		t.Fatalf("clone shares answer storage with original")
	}
	if state.Sections[0].Title == "Changed" {
		t.Fatalf("clone shares section storage with original")
	}
}
