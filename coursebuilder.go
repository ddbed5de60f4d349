package coursebuilder

import (
	"github.com/goliatone/go-coursebuilder/internal/di"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/internal/markdown"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

// WorksheetService exports the worksheet service contract for consumers of the
// coursebuilder package.
type WorksheetService = worksheet.Service

// LessonPlanService exports the lesson-plan service contract.
type LessonPlanService = lessonplan.Service

// Importer exports the frontmatter document importer.
type Importer = markdown.Importer

// MarkdownParser exports the parser contract used for HTML previews.
type MarkdownParser = interfaces.MarkdownParser

// Module represents the top level course builder runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a course builder module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Worksheets returns the configured worksheet service.
func (m *Module) Worksheets() WorksheetService {
	return m.container.WorksheetService()
}

// LessonPlans returns the configured lesson-plan service.
func (m *Module) LessonPlans() LessonPlanService {
	return m.container.LessonPlanService()
}

// Importer returns the Markdown document importer.
func (m *Module) Importer() *Importer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Importer()
}

// Markdown returns the configured Markdown parser, or nil when previews are disabled.
func (m *Module) Markdown() MarkdownParser {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownParser()
}
