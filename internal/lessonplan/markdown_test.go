package lessonplan_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-coursebuilder/internal/domain"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
)

func TestRenderMarkdown_FallbackTitleAndDuration(t *testing.T) {
	out := lessonplan.RenderMarkdown(lessonplan.LessonPlan{})

	if !strings.HasPrefix(out, "# Lesson Plan\n") {
		t.Fatalf("expected fallback title, got %q", out[:40])
	}
	if !strings.Contains(out, "**Duration:** 0 minutes\n") {
		t.Fatalf("expected duration line:\n%s", out)
	}
}

func TestRenderMarkdown_AllPhasesInCanonicalOrder(t *testing.T) {
	plan, _ := lessonplan.UpsertPhaseSection(lessonplan.LessonPlan{}, domain.PhaseEvaluate, lessonplan.PhaseSectionPatch{
		Content: strPtr("Exit ticket."),
	})
	plan, _ = lessonplan.UpsertPhaseSection(plan, domain.PhaseEngage, lessonplan.PhaseSectionPatch{
		Content: strPtr("Show a levitating magnet video."),
	})

	out := lessonplan.RenderMarkdown(plan)

	headings := []string{
		"### Engage (10 minutes)",
		"### Explore (10 minutes)",
		"### Explain (10 minutes)",
		"### Elaborate (10 minutes)",
		"### Evaluate (10 minutes)",
	}
	last := -1
	for _, heading := range headings {
		idx := strings.Index(out, heading)
		if idx < 0 {
			t.Fatalf("missing heading %q:\n%s", heading, out)
		}
		if idx < last {
			t.Fatalf("phases out of canonical order: %q appears early", heading)
		}
		last = idx
	}

	if strings.Index(out, "Show a levitating magnet video.") > strings.Index(out, "Exit ticket.") {
		t.Fatalf("expected engage content before evaluate content regardless of edit order")
	}
}

func TestRenderMarkdown_PhaseDescriptionsAndFallbackContent(t *testing.T) {
	out := lessonplan.RenderMarkdown(lessonplan.LessonPlan{})

	for _, want := range []string{
		"*Capture students' interest and activate prior knowledge.*\n",
		"*Students investigate the concept through hands-on activity.*\n",
		"*Introduce vocabulary and formalize the concept.*\n",
		"*Students apply their understanding in a new context.*\n",
		"*Assess student understanding of the concept.*\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing phase description %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "No content added.\n"); got != 5 {
		t.Fatalf("expected fallback content for all five phases, got %d", got)
	}
}

func TestRenderMarkdown_ObjectivesSkipEmptyEntries(t *testing.T) {
	plan := lessonplan.AddObjective(lessonplan.LessonPlan{}, "Describe magnetic poles")
	plan = lessonplan.AddObjective(plan, "   ")
	plan = lessonplan.AddObjective(plan, "Predict attraction")

	out := lessonplan.RenderMarkdown(plan)

	if !strings.Contains(out, "## Learning Objectives\n") {
		t.Fatalf("expected objectives section:\n%s", out)
	}
	if !strings.Contains(out, "By the end of this lesson, students will be able to:\n") {
		t.Fatalf("expected objectives intro:\n%s", out)
	}
	if !strings.Contains(out, "- Describe magnetic poles\n") || !strings.Contains(out, "- Predict attraction\n") {
		t.Fatalf("expected objective bullets:\n%s", out)
	}
	if strings.Contains(out, "-    \n") {
		t.Fatalf("expected blank objective skipped:\n%s", out)
	}
}

func TestRenderMarkdown_OmitsEmptyObjectivesAndMaterials(t *testing.T) {
	plan := lessonplan.AddObjective(lessonplan.LessonPlan{}, "  ")

	out := lessonplan.RenderMarkdown(plan)

	if strings.Contains(out, "## Learning Objectives") {
		t.Fatalf("expected objectives section omitted when all entries are blank:\n%s", out)
	}
	if strings.Contains(out, "## Materials Needed") {
		t.Fatalf("expected materials section omitted when empty:\n%s", out)
	}
}

func TestRenderMarkdown_MaterialsList(t *testing.T) {
	plan := lessonplan.AddMaterial(lessonplan.LessonPlan{}, "Bar magnets")
	plan = lessonplan.AddMaterial(plan, "Iron filings")

	out := lessonplan.RenderMarkdown(plan)

	if !strings.Contains(out, "## Materials Needed\n\n- Bar magnets\n- Iron filings\n") {
		t.Fatalf("expected materials list:\n%s", out)
	}
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	plan, _ := lessonplan.SetDuration(lessonplan.LessonPlan{Title: "Magnets"}, 45)
	plan = lessonplan.AddObjective(plan, "Explain magnetism")

	if a, b := lessonplan.RenderMarkdown(plan), lessonplan.RenderMarkdown(plan); a != b {
		t.Fatalf("expected deterministic output")
	}
}
