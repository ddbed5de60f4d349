package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger("worksheet")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}

	child := logger.(interfaces.FieldsLogger).WithFields(map[string]any{"module": "worksheet"})
	if child == nil {
		t.Fatal("expected WithFields to return a logger")
	}
	child.Debug("provider.ready")
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestAdapterDelegatesLevels(t *testing.T) {
	stub := &stubLogger{}
	adapted := adapt(stub)

	calls := []struct {
		name string
		emit func(string, ...any)
	}{
		{"trace", adapted.Trace},
		{"debug", adapted.Debug},
		{"info", adapted.Info},
		{"warn", adapted.Warn},
		{"error", adapted.Error},
		{"fatal", adapted.Fatal},
	}
	for _, call := range calls {
		call.emit("message")
	}

	if len(stub.calls) != len(calls) {
		t.Fatalf("expected %d delegated calls, got %d", len(calls), len(stub.calls))
	}
	for i, call := range calls {
		if stub.calls[i] != call.name {
			t.Fatalf("call %d: expected %q, got %q", i, call.name, stub.calls[i])
		}
	}
}

func TestAdapterClonesFields(t *testing.T) {
	stub := &stubLogger{}
	adapted := adapt(stub)

	fields := map[string]any{"entity": "worksheet"}
	if child := adapted.(interfaces.FieldsLogger).WithFields(fields); child == nil {
		t.Fatal("expected WithFields to return a logger")
	}

	fields["entity"] = "lessonplan"
	if len(stub.fields) != 1 {
		t.Fatalf("expected fields recorded once, got %d", len(stub.fields))
	}
	if stub.fields[0]["entity"] != "worksheet" {
		t.Fatalf("expected caller mutation isolated, got %v", stub.fields[0]["entity"])
	}
}

func TestAdapterPropagatesContext(t *testing.T) {
	stub := &stubLogger{}
	adapted := adapt(stub)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "value")
	adapted.WithContext(ctx)

	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context forwarded, got %#v", stub.contexts)
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}
