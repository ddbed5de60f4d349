package lessonplancmd

import (
	"context"

	"github.com/goliatone/go-coursebuilder/internal/commands"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

// GenerateLessonPlanHandler serializes lesson-plan documents via the
// lesson-plan service using the shared command handler foundation.
type GenerateLessonPlanHandler struct {
	inner *commands.Handler[GenerateLessonPlanCommand]
}

// NewGenerateLessonPlanHandler constructs a handler wired to the provided service.
func NewGenerateLessonPlanHandler(service lessonplan.Service, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateLessonPlanCommand]) *GenerateLessonPlanHandler {
	exec := func(ctx context.Context, msg GenerateLessonPlanCommand) error {
		req := lessonplan.GenerateRequest{
			ID: msg.DocumentID,
		}
		if msg.GeneratedBy != nil {
			req.GeneratedBy = *msg.GeneratedBy
		}
		_, err := service.Generate(ctx, req)
		return err
	}

	handlerOpts := []commands.HandlerOption[GenerateLessonPlanCommand]{
		commands.WithLogger[GenerateLessonPlanCommand](logger),
		commands.WithOperation[GenerateLessonPlanCommand]("lessonplan.generate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateLessonPlanHandler{
		inner: commands.NewHandler[GenerateLessonPlanCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateLessonPlanCommand].Execute.
func (h *GenerateLessonPlanHandler) Execute(ctx context.Context, msg GenerateLessonPlanCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SaveLessonPlanHandler persists lesson-plan title/state updates via the
// lesson-plan service.
type SaveLessonPlanHandler struct {
	inner *commands.Handler[SaveLessonPlanCommand]
}

// NewSaveLessonPlanHandler constructs a handler wired to the provided service.
func NewSaveLessonPlanHandler(service lessonplan.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SaveLessonPlanCommand]) *SaveLessonPlanHandler {
	exec := func(ctx context.Context, msg SaveLessonPlanCommand) error {
		req := lessonplan.UpdateDocumentRequest{
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

	handlerOpts := []commands.HandlerOption[SaveLessonPlanCommand]{
		commands.WithLogger[SaveLessonPlanCommand](logger),
		commands.WithOperation[SaveLessonPlanCommand]("lessonplan.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveLessonPlanHandler{
		inner: commands.NewHandler[SaveLessonPlanCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveLessonPlanCommand].Execute.
func (h *SaveLessonPlanHandler) Execute(ctx context.Context, msg SaveLessonPlanCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteLessonPlanHandler removes lesson-plan documents via the lesson-plan service.
type DeleteLessonPlanHandler struct {
	inner *commands.Handler[DeleteLessonPlanCommand]
}

// NewDeleteLessonPlanHandler constructs a handler wired to the provided service.
func NewDeleteLessonPlanHandler(service lessonplan.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteLessonPlanCommand]) *DeleteLessonPlanHandler {
	exec := func(ctx context.Context, msg DeleteLessonPlanCommand) error {
		req := lessonplan.DeleteDocumentRequest{
			ID:         msg.DocumentID,
			HardDelete: msg.HardDelete,
		}
		if msg.DeletedBy != nil {
			req.DeletedBy = *msg.DeletedBy
		}
		return service.Delete(ctx, req)
	}

	handlerOpts := []commands.HandlerOption[DeleteLessonPlanCommand]{
		commands.WithLogger[DeleteLessonPlanCommand](logger),
		commands.WithOperation[DeleteLessonPlanCommand]("lessonplan.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteLessonPlanHandler{
		inner: commands.NewHandler[DeleteLessonPlanCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteLessonPlanCommand].Execute.
func (h *DeleteLessonPlanHandler) Execute(ctx context.Context, msg DeleteLessonPlanCommand) error {
	return h.inner.Execute(ctx, msg)
}
