package lessonplancmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/google/uuid"
)

const (
	generateMessageType = "coursebuilder.lessonplan.generate"
	saveMessageType     = "coursebuilder.lessonplan.save"
	deleteMessageType   = "coursebuilder.lessonplan.delete"
)

// GenerateLessonPlanCommand requests Markdown generation for a stored
// lesson-plan document.
type GenerateLessonPlanCommand struct {
	DocumentID  uuid.UUID  `json:"document_id"`
	GeneratedBy *uuid.UUID `json:"generated_by,omitempty"`
}

// Type implements command.Message.
func (GenerateLessonPlanCommand) Type() string { return generateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m GenerateLessonPlanCommand) Validate() error {
	errs := validation.Errors{}
	if m.DocumentID == uuid.Nil {
		errs["document_id"] = validation.NewError("coursebuilder.lessonplan.generate.document_id_required", "document_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveLessonPlanCommand replaces a lesson-plan document's title and/or
// builder state.
type SaveLessonPlanCommand struct {
	DocumentID uuid.UUID              `json:"document_id"`
	Title      *string                `json:"title,omitempty"`
	State      *lessonplan.LessonPlan `json:"state,omitempty"`
	UpdatedBy  *uuid.UUID             `json:"updated_by,omitempty"`
}

// Type implements command.Message.
func (SaveLessonPlanCommand) Type() string { return saveMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveLessonPlanCommand) Validate() error {
	errs := validation.Errors{}
	if m.DocumentID == uuid.Nil {
		errs["document_id"] = validation.NewError("coursebuilder.lessonplan.save.document_id_required", "document_id is required")
	}
	if m.Title == nil && m.State == nil {
		errs["state"] = validation.NewError("coursebuilder.lessonplan.save.fields_required", "title or state is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteLessonPlanCommand removes a lesson-plan document.
type DeleteLessonPlanCommand struct {
	DocumentID uuid.UUID  `json:"document_id"`
	DeletedBy  *uuid.UUID `json:"deleted_by,omitempty"`
	HardDelete bool       `json:"hard_delete,omitempty"`
}

// Type implements command.Message.
func (DeleteLessonPlanCommand) Type() string { return deleteMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteLessonPlanCommand) Validate() error {
	errs := validation.Errors{}
	if m.DocumentID == uuid.Nil {
		errs["document_id"] = validation.NewError("coursebuilder.lessonplan.delete.document_id_required", "document_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
