package worksheet

import "strings"

// BlankMarker is the literal token denoting one fill-in blank inside free
// text. Each non-overlapping occurrence counts as one blank, in left-to-right
// order. Markers never nest.
const BlankMarker = "___"

// CountBlanks returns the number of blanks in the content.
func CountBlanks(content string) int {
	return strings.Count(content, BlankMarker)
}

// SyncBlankAnswers reconciles an answers list to the number of blanks in the
// content, preserving previous values by position. With zero blanks the result
// normalizes to a single empty placeholder so editors always have one answer
// field to show. The function is idempotent: re-applying it with unchanged
// content returns an equal list.
func SyncBlankAnswers(content string, previous []string) []string {
	count := CountBlanks(content)
	if count == 0 {
		return []string{""}
	}

	answers := make([]string, count)
	for i := 0; i < count && i < len(previous); i++ {
		answers[i] = previous[i]
	}
	return answers
}

// syncItem applies the blank invariant to a fill-blank item.
func syncItem(item FillBlankItem) FillBlankItem {
	item.Answers = SyncBlankAnswers(item.Content, item.Answers)
	return item
}
