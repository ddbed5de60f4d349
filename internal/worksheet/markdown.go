package worksheet

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-coursebuilder/internal/domain"
)

const (
	defaultDocumentTitle = "Worksheet"
	answerFallback       = "N/A"
	matchingInstruction  = "*Draw a line to match each item in Column A with the correct item in Column B.*"
)

// RenderMarkdown serializes the worksheet state into a single Markdown
// document: the content sections in insertion order followed by a derived
// answer key using the same order and numbering. The transform is pure and
// deterministic; user text is interpolated verbatim, blank markers included.
func RenderMarkdown(w Worksheet) string {
	var b strings.Builder

	title := strings.TrimSpace(w.Title)
	if title == "" {
		title = defaultDocumentTitle
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	for n, section := range w.Sections {
		fmt.Fprintf(&b, "## %d. %s\n\n", n+1, section.Title)
		renderSectionBody(&b, section)
		b.WriteString("---\n\n")
	}

	b.WriteString("## Answer Key\n\n")
	for n, section := range w.Sections {
		fmt.Fprintf(&b, "### %d. %s\n\n", n+1, section.Title)
		renderAnswerKey(&b, section)
		b.WriteString("\n")
	}

	return b.String()
}

func renderSectionBody(b *strings.Builder, section Section) {
	switch section.Kind {
	case domain.SectionMatching:
		b.WriteString("| Column A | Column B |\n")
		b.WriteString("|----------|----------|\n")
		for _, item := range section.Items {
			m, ok := item.(MatchingItem)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "| %s | %s |\n", m.Left, m.Right)
		}
		b.WriteString("\n")
		b.WriteString(matchingInstruction + "\n\n")
	case domain.SectionProblems:
		for i, item := range section.Items {
			p, ok := item.(ProblemItem)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, p.Content)
		}
		b.WriteString("\n")
	case domain.SectionFillBlank:
		for i, item := range section.Items {
			fb, ok := item.(FillBlankItem)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, fb.Content)
		}
		b.WriteString("\n")
	}
}

func renderAnswerKey(b *strings.Builder, section Section) {
	switch section.Kind {
	case domain.SectionMatching:
		for i, item := range section.Items {
			m, ok := item.(MatchingItem)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "%d. %s → %s\n", i+1, m.Left, m.Right)
		}
	case domain.SectionProblems:
		for i, item := range section.Items {
			p, ok := item.(ProblemItem)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, orFallback(p.Answer))
		}
	case domain.SectionFillBlank:
		for i, item := range section.Items {
			fb, ok := item.(FillBlankItem)
			if !ok {
				continue
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, formatBlankAnswers(fb.Answers))
		}
	}
}

// formatBlankAnswers renders a single answer directly; multiple answers become
// a comma-joined "Blank {k}: {value}" list so graders can map answers back to
// marker positions.
func formatBlankAnswers(answers []string) string {
	if len(answers) <= 1 {
		value := ""
		if len(answers) == 1 {
			value = answers[0]
		}
		return orFallback(value)
	}

	parts := make([]string, len(answers))
	for i, answer := range answers {
		parts[i] = fmt.Sprintf("Blank %d: %s", i+1, orFallback(answer))
	}
	return strings.Join(parts, ", ")
}

func orFallback(value string) string {
	if strings.TrimSpace(value) == "" {
		return answerFallback
	}
	return value
}
