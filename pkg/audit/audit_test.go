package audit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)
	logger.hostname = "host"
	logger.pid = 42
	logger.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	logger.Log(MutationEvent{
		Action:   ActionCreate,
		Entity:   "artworks",
		EntityID: "a1",
		UserID:   "u1",
		Success:  true,
	})

	want := `<133>1 2024-05-01T12:00:00.000Z host artrights 42 artworks ` +
		`[action@32473 operation="create" result="success"][actor@32473 user="u1"]` +
		`[subject@32473 entity="artworks" id="a1"] u1 created artworks a1` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Log() =\n%q\nwant\n%q", got, want)
	}
}

func TestMutationEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   MutationEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name:    "successful update",
			event:   MutationEvent{Action: ActionUpdate, Entity: "projects", EntityID: "p1", UserID: "u1", Success: true},
			wantMsg: "u1 updated projects p1",
			wantSev: SeverityNotice,
		},
		{
			name: "failed delete",
			event: MutationEvent{
				Action:       ActionDelete,
				Entity:       "contacts",
				EntityID:     "c1",
				ErrorMessage: "connection refused",
			},
			wantMsg: "anonymous failed to delete contacts c1: connection refused",
			wantSev: SeverityWarning,
		},
		{
			name:    "media association",
			event:   MutationEvent{Action: ActionAddMedia, Entity: "rights-holders", EntityID: "rh1", Related: "m1", Success: true},
			wantMsg: "anonymous added media to rights-holders rh1 (m1)",
			wantSev: SeverityNotice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != FacilityLocal0 {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), FacilityLocal0)
			}
			if tt.event.MessageID() != tt.event.Entity {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.event.Entity)
			}
		})
	}
}

func TestReconcileEvent(t *testing.T) {
	ok := ReconcileEvent{HolderID: "rh1", ArtworkID: "a1", Added: []string{"m3"}, Removed: []string{"m1"}}
	if !strings.Contains(ok.Message(), "1 added, 1 removed") {
		t.Errorf("Message() = %q", ok.Message())
	}
	if ok.Severity() != SeverityNotice {
		t.Errorf("Severity() = %v, want notice", ok.Severity())
	}
	sd := ok.StructuredData()
	if sd[SDIDChanges]["added"] != "m3" || sd[SDIDChanges]["removed"] != "m1" {
		t.Errorf("StructuredData changes = %v", sd[SDIDChanges])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("StructuredData action.result = %v, want success", sd[SDIDAction]["result"])
	}

	failed := ReconcileEvent{HolderID: "rh1", ArtworkID: "a1", FailedStep: "add m3", ErrorMessage: "timeout"}
	if !strings.HasSuffix(failed.Message(), "failed at add m3: timeout") {
		t.Errorf("Message() = %q", failed.Message())
	}
	if failed.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want error", failed.Severity())
	}
	if failed.StructuredData()[SDIDAction]["failed_step"] != "add m3" {
		t.Errorf("missing failed_step")
	}
}

type recordingSink struct {
	events []Event
	err    error
}

func (s *recordingSink) Save(event Event) error {
	s.events = append(s.events, event)
	return s.err
}

func TestLogFansOutToSinks(t *testing.T) {
	var buf bytes.Buffer
	original := DefaultLogger
	DefaultLogger = NewLogger()
	DefaultLogger.SetWriter(&buf)
	defer func() {
		DefaultLogger = original
		ResetSinks()
		SetEnabled(true)
	}()

	good := &recordingSink{}
	bad := &recordingSink{err: errors.New("broker down")}
	AddSink(bad)
	AddSink(good)
	SetEnabled(true)

	Log(MutationEvent{Action: ActionDelete, Entity: "media", EntityID: "m1", Success: true})
	if len(good.events) != 1 || len(bad.events) != 1 {
		t.Fatalf("sinks got %d and %d events, want 1 each", len(good.events), len(bad.events))
	}
	if !strings.Contains(buf.String(), "deleted media m1") {
		t.Errorf("log line missing: %q", buf.String())
	}

	SetEnabled(false)
	Log(MutationEvent{Action: ActionDelete, Entity: "media", EntityID: "m2", Success: true})
	if len(good.events) != 1 {
		t.Errorf("disabled audit still reached sinks")
	}
}

func TestAuditToggle(t *testing.T) {
	original := IsEnabled()
	defer SetEnabled(original)

	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
