package lessonplan

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-coursebuilder/internal/domain"
)

const (
	defaultDocumentTitle = "Lesson Plan"
	objectivesIntro      = "By the end of this lesson, students will be able to:"
	emptyPhaseContent    = "No content added."
)

// phaseLabels maps each 5E phase to its rendered heading.
var phaseLabels = map[domain.Phase]string{
	domain.PhaseEngage:    "Engage",
	domain.PhaseExplore:   "Explore",
	domain.PhaseExplain:   "Explain",
	domain.PhaseElaborate: "Elaborate",
	domain.PhaseEvaluate:  "Evaluate",
}

// phaseDescriptions holds the fixed italic blurb rendered under each phase
// heading.
var phaseDescriptions = map[domain.Phase]string{
	domain.PhaseEngage:    "Capture students' interest and activate prior knowledge.",
	domain.PhaseExplore:   "Students investigate the concept through hands-on activity.",
	domain.PhaseExplain:   "Introduce vocabulary and formalize the concept.",
	domain.PhaseElaborate: "Students apply their understanding in a new context.",
	domain.PhaseEvaluate:  "Assess student understanding of the concept.",
}

// RenderMarkdown serializes the lesson plan into a single Markdown document.
// The five phases always render in canonical 5E order, independent of the
// order sections were inserted or edited. User text is interpolated verbatim.
func RenderMarkdown(p LessonPlan) string {
	var b strings.Builder

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = defaultDocumentTitle
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Duration:** %d minutes\n\n", p.Duration)

	if objectives := nonEmpty(p.Objectives); len(objectives) > 0 {
		b.WriteString("## Learning Objectives\n\n")
		b.WriteString(objectivesIntro + "\n\n")
		for _, objective := range objectives {
			fmt.Fprintf(&b, "- %s\n", objective)
		}
		b.WriteString("\n")
	}

	if materials := nonEmpty(p.Materials); len(materials) > 0 {
		b.WriteString("## Materials Needed\n\n")
		for _, material := range materials {
			fmt.Fprintf(&b, "- %s\n", material)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("## 5E Model Lesson Flow\n\n")

	for _, phase := range domain.PhaseOrder {
		section := p.PhaseSectionOrDefault(phase)
		fmt.Fprintf(&b, "### %s (%d minutes)\n\n", phaseLabels[phase], section.Duration)
		fmt.Fprintf(&b, "*%s*\n\n", phaseDescriptions[phase])

		content := strings.TrimSpace(section.Content)
		if content == "" {
			content = emptyPhaseContent
		}
		b.WriteString(content + "\n\n")
		b.WriteString("---\n\n")
	}

	return b.String()
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}
