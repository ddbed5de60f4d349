package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-coursebuilder/internal/commands"
)

type testMessage struct {
	Name string
}

func (testMessage) Type() string { return "coursebuilder.test.message" }

func (m testMessage) Validate() error {
	errs := validation.Errors{}
	if m.Name == "" {
		errs["name"] = validation.NewError("coursebuilder.test.name_required", "name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func TestHandlerExecute(t *testing.T) {
	var received testMessage
	handler := commands.NewHandler[testMessage](func(_ context.Context, msg testMessage) error {
		received = msg
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{Name: "ok"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if received.Name != "ok" {
		t.Fatalf("expected message delivered to exec func, got %+v", received)
	}
}

func TestHandlerExecute_ValidationFailure(t *testing.T) {
	called := false
	handler := commands.NewHandler[testMessage](func(context.Context, testMessage) error {
		called = true
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if called {
		t.Fatalf("expected exec func skipped on validation failure")
	}
}

func TestHandlerExecute_WrapsExecError(t *testing.T) {
	execErr := errors.New("boom")
	handler := commands.NewHandler[testMessage](func(context.Context, testMessage) error {
		return execErr
	})

	err := handler.Execute(context.Background(), testMessage{Name: "ok"})
	if !errors.Is(err, execErr) {
		t.Fatalf("expected wrapped exec error, got %v", err)
	}
}

func TestHandlerExecute_CanceledContext(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(context.Context, testMessage) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{Name: "ok"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation error, got %v", err)
	}
}

func TestHandlerExecute_NilContext(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(ctx context.Context, _ testMessage) error {
		if ctx == nil {
			t.Fatalf("expected non-nil context")
		}
		return nil
	})

	//nolint:staticcheck // exercising the nil-context guard
	if err := handler.Execute(nil, testMessage{Name: "ok"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestHandlerExecute_Timeout(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(ctx context.Context, _ testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, commands.WithTimeout[testMessage](10*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{Name: "ok"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
