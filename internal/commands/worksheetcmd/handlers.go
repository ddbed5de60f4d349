package worksheetcmd

import (
	"context"

	"github.com/goliatone/go-coursebuilder/internal/commands"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

// GenerateWorksheetHandler serializes worksheet documents via the worksheet
// service using the shared command handler foundation.
type GenerateWorksheetHandler struct {
	inner *commands.Handler[GenerateWorksheetCommand]
}

// NewGenerateWorksheetHandler constructs a handler wired to the provided service.
func NewGenerateWorksheetHandler(service worksheet.Service, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateWorksheetCommand]) *GenerateWorksheetHandler {
	exec := func(ctx context.Context, msg GenerateWorksheetCommand) error {
		req := worksheet.GenerateRequest{
			ID: msg.DocumentID,
		}
		if msg.GeneratedBy != nil {
			req.GeneratedBy = *msg.GeneratedBy
		}
		_, err := service.Generate(ctx, req)
		return err
	}

	handlerOpts := []commands.HandlerOption[GenerateWorksheetCommand]{
		commands.WithLogger[GenerateWorksheetCommand](logger),
		commands.WithOperation[GenerateWorksheetCommand]("worksheet.generate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateWorksheetHandler{
		inner: commands.NewHandler[GenerateWorksheetCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateWorksheetCommand].Execute.
func (h *GenerateWorksheetHandler) Execute(ctx context.Context, msg GenerateWorksheetCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SaveWorksheetHandler persists worksheet title/state updates via the
// worksheet service.
type SaveWorksheetHandler struct {
	inner *commands.Handler[SaveWorksheetCommand]
}

// NewSaveWorksheetHandler constructs a handler wired to the provided service.
func NewSaveWorksheetHandler(service worksheet.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SaveWorksheetCommand]) *SaveWorksheetHandler {
	exec := func(ctx context.Context, msg SaveWorksheetCommand) error {
		req := worksheet.UpdateDocumentRequest{
			ID:    msg.DocumentID,
			Title: msg.Title,
			State: msg.State,
		}
		if msg.UpdatedBy != nil {
			req.UpdatedBy = *msg.UpdatedBy
		}
		_, err := service.Update(ctx, req)
		return err
	}

	handlerOpts := []commands.HandlerOption[SaveWorksheetCommand]{
		commands.WithLogger[SaveWorksheetCommand](logger),
		commands.WithOperation[SaveWorksheetCommand]("worksheet.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveWorksheetHandler{
		inner: commands.NewHandler[SaveWorksheetCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveWorksheetCommand].Execute.
func (h *SaveWorksheetHandler) Execute(ctx context.Context, msg SaveWorksheetCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteWorksheetHandler removes worksheet documents via the worksheet service.
type DeleteWorksheetHandler struct {
	inner *commands.Handler[DeleteWorksheetCommand]
}

// NewDeleteWorksheetHandler constructs a handler wired to the provided service.
func NewDeleteWorksheetHandler(service worksheet.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteWorksheetCommand]) *DeleteWorksheetHandler {
	exec := func(ctx context.Context, msg DeleteWorksheetCommand) error {
		req := worksheet.DeleteDocumentRequest{
			ID:         msg.DocumentID,
			HardDelete: msg.HardDelete,
		}
		if msg.DeletedBy != nil {
			req.DeletedBy = *msg.DeletedBy
		}
		return service.Delete(ctx, req)
	}

	handlerOpts := []commands.HandlerOption[DeleteWorksheetCommand]{
		commands.WithLogger[DeleteWorksheetCommand](logger),
		commands.WithOperation[DeleteWorksheetCommand]("worksheet.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteWorksheetHandler{
		inner: commands.NewHandler[DeleteWorksheetCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteWorksheetCommand].Execute.
func (h *DeleteWorksheetHandler) Execute(ctx context.Context, msg DeleteWorksheetCommand) error {
	return h.inner.Execute(ctx, msg)
}
