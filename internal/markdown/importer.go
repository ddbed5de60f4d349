package markdown

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-coursebuilder/internal/identity"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/internal/logging"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

var (
	ErrWorksheetServiceRequired  = errors.New("markdown importer: worksheet service is required")
	ErrLessonPlanServiceRequired = errors.New("markdown importer: lesson plan service is required")
	ErrSlugMissing               = errors.New("markdown importer: frontmatter slug is required")
	ErrPayloadMissing            = errors.New("markdown importer: frontmatter payload is required")
)

// ImporterConfig encapsulates the dependencies required to turn Markdown
// sources with builder frontmatter into stored documents.
type ImporterConfig struct {
	Worksheets  worksheet.Service
	LessonPlans lessonplan.Service
	Logger      interfaces.Logger
}

// Importer hydrates builder documents from Markdown files whose YAML
// frontmatter carries the builder payload. The Markdown body is ignored:
// documents are always regenerated from state, never parsed back.
type Importer struct {
	worksheets  worksheet.Service
	lessonPlans lessonplan.Service
	logger      interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		worksheets:  cfg.Worksheets,
		lessonPlans: cfg.LessonPlans,
		logger:      logger,
	}
}

type importEnvelope struct {
	Slug       string         `yaml:"slug"`
	Title      string         `yaml:"title"`
	Worksheet  map[string]any `yaml:"worksheet"`
	LessonPlan map[string]any `yaml:"lesson_plan"`
}

// ImportWorksheet validates the frontmatter payload against the worksheet
// schema and creates a document through the worksheet service.
func (i *Importer) ImportWorksheet(ctx context.Context, source []byte, createdBy uuid.UUID) (*worksheet.Document, error) {
	if i.worksheets == nil {
		return nil, ErrWorksheetServiceRequired
	}

	env, err := parseEnvelope(source)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(env.Slug) == "" {
		return nil, ErrSlugMissing
	}
	if len(env.Worksheet) == 0 {
		return nil, ErrPayloadMissing
	}

	payload, err := validatePayload(worksheetSchema, env.Worksheet)
	if err != nil {
		return nil, fmt.Errorf("markdown importer: worksheet payload: %w", err)
	}

	var state worksheet.Worksheet
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("markdown importer: decode worksheet payload: %w", err)
	}
	assignWorksheetIDs(&state, env.Slug)

	doc, err := i.worksheets.Create(ctx, worksheet.CreateDocumentRequest{
		ID:        identity.WorksheetDocumentUUID(env.Slug),
		Slug:      env.Slug,
		Title:     env.Title,
		State:     state,
		CreatedBy: createdBy,
		UpdatedBy: createdBy,
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info("markdown.import.worksheet", "slug", doc.Slug, "sections", len(doc.State.Sections))
	return doc, nil
}

// ImportLessonPlan validates the frontmatter payload against the lesson-plan
// schema and creates a document through the lesson-plan service.
func (i *Importer) ImportLessonPlan(ctx context.Context, source []byte, createdBy uuid.UUID) (*lessonplan.Document, error) {
	if i.lessonPlans == nil {
		return nil, ErrLessonPlanServiceRequired
	}

	env, err := parseEnvelope(source)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(env.Slug) == "" {
		return nil, ErrSlugMissing
	}
	if len(env.LessonPlan) == 0 {
		return nil, ErrPayloadMissing
	}

	payload, err := validatePayload(lessonPlanSchema, env.LessonPlan)
	if err != nil {
		return nil, fmt.Errorf("markdown importer: lesson plan payload: %w", err)
	}

	var state lessonplan.LessonPlan
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("markdown importer: decode lesson plan payload: %w", err)
	}
	assignLessonPlanIDs(&state, env.Slug)

	doc, err := i.lessonPlans.Create(ctx, lessonplan.CreateDocumentRequest{
		ID:        identity.LessonPlanDocumentUUID(env.Slug),
		Slug:      env.Slug,
		Title:     env.Title,
		State:     state,
		CreatedBy: createdBy,
		UpdatedBy: createdBy,
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info("markdown.import.lesson_plan", "slug", doc.Slug, "phases", len(doc.State.Sections))
	return doc, nil
}

func parseEnvelope(source []byte) (importEnvelope, error) {
	var env importEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader(source), &env); err != nil {
		return importEnvelope{}, fmt.Errorf("markdown importer: parse frontmatter: %w", err)
	}
	return env, nil
}

// validatePayload checks the raw frontmatter payload against the schema and
// returns its canonical JSON encoding for typed decoding.
func validatePayload(schema *jsonschema.Schema, payload map[string]any) ([]byte, error) {
	encoded, err := json.Marshal(normalizeYAMLMap(payload))
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return nil, err
	}
	if err := schema.Validate(generic); err != nil {
		return nil, err
	}
	return encoded, nil
}

// normalizeYAMLMap rewrites the interface-keyed maps the YAML decoder
// produces for nested values into string-keyed maps json.Marshal accepts.
func normalizeYAMLMap(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = normalizeYAMLValue(value)
	}
	return out
}

func normalizeYAMLValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeYAMLMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = normalizeYAMLValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAMLValue(item)
		}
		return out
	default:
		return value
	}
}

// Section ids are derived from the document slug so re-importing the same
// source yields the same identifiers.
func assignWorksheetIDs(state *worksheet.Worksheet, slug string) {
	for i := range state.Sections {
		if state.Sections[i].ID == uuid.Nil {
			state.Sections[i].ID = identity.UUID(fmt.Sprintf("go-coursebuilder:worksheet_section:%s:%d", slug, i))
		}
	}
}

func assignLessonPlanIDs(state *lessonplan.LessonPlan, slug string) {
	for i := range state.Sections {
		if state.Sections[i].ID == uuid.Nil {
			state.Sections[i].ID = identity.UUID(fmt.Sprintf("go-coursebuilder:lesson_plan_section:%s:%d", slug, i))
		}
	}
}

var worksheetSchema = jsonschema.MustCompileString("worksheet.json", `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["kind", "title", "items"],
				"properties": {
					"id": {"type": "string"},
					"kind": {"enum": ["fill_blank", "matching", "problems"]},
					"title": {"type": "string"},
					"items": {
						"type": "array",
						"items": {"type": "object"}
					}
				}
			}
		}
	}
}`)

var lessonPlanSchema = jsonschema.MustCompileString("lesson_plan.json", `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"duration": {"type": "integer", "minimum": 0},
		"objectives": {"type": "array", "items": {"type": "string"}},
		"materials": {"type": "array", "items": {"type": "string"}},
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["phase"],
				"properties": {
					"id": {"type": "string"},
					"phase": {"enum": ["engage", "explore", "explain", "elaborate", "evaluate"]},
					"duration": {"type": "integer", "minimum": 0},
					"content": {"type": "string"}
				}
			}
		}
	}
}`)
