package worksheetcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/google/uuid"
)

const (
	generateMessageType = "coursebuilder.worksheet.generate"
	saveMessageType     = "coursebuilder.worksheet.save"
	deleteMessageType   = "coursebuilder.worksheet.delete"
)

// GenerateWorksheetCommand requests Markdown generation for a stored
// worksheet document.
type GenerateWorksheetCommand struct {
	DocumentID  uuid.UUID  `json:"document_id"`
	GeneratedBy *uuid.UUID `json:"generated_by,omitempty"`
}

// Type implements command.Message.
func (GenerateWorksheetCommand) Type() string { return generateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m GenerateWorksheetCommand) Validate() error {
	errs := validation.Errors{}
	if m.DocumentID == uuid.Nil {
		errs["document_id"] = validation.NewError("coursebuilder.worksheet.generate.document_id_required", "document_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveWorksheetCommand replaces a worksheet document's title and/or builder
// state.
type SaveWorksheetCommand struct {
	DocumentID uuid.UUID            `json:"document_id"`
	Title      *string              `json:"title,omitempty"`
	State      *worksheet.Worksheet `json:"state,omitempty"`
	UpdatedBy  *uuid.UUID           `json:"updated_by,omitempty"`
}

// Type implements command.Message.
func (SaveWorksheetCommand) Type() string { return saveMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveWorksheetCommand) Validate() error {
	errs := validation.Errors{}
	if m.DocumentID == uuid.Nil {
		errs["document_id"] = validation.NewError("coursebuilder.worksheet.save.document_id_required", "document_id is required")
	}
	if m.Title == nil && m.State == nil {
		errs["state"] = validation.NewError("coursebuilder.worksheet.save.fields_required", "title or state is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteWorksheetCommand removes a worksheet document.
type DeleteWorksheetCommand struct {
	DocumentID uuid.UUID  `json:"document_id"`
	DeletedBy  *uuid.UUID `json:"deleted_by,omitempty"`
	HardDelete bool       `json:"hard_delete,omitempty"`
}

// Type implements command.Message.
func (DeleteWorksheetCommand) Type() string { return deleteMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteWorksheetCommand) Validate() error {
	errs := validation.Errors{}
	if m.DocumentID == uuid.Nil {
		errs["document_id"] = validation.NewError("coursebuilder.worksheet.delete.document_id_required", "document_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
