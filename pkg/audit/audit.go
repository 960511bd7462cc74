package audit

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// AppName is written as APP-NAME in every record.
const AppName = "artrights"

// SDID constants for structured data IDs (RFC5424). 32473 is the
// documentation enterprise number from RFC 5612.
const (
	SDIDSubject = "subject@32473"
	SDIDAction  = "action@32473"
	SDIDActor   = "actor@32473"
	SDIDChanges = "changes@32473"
)

// Syslog facility constants
const (
	FacilityUser   = 1  // LOG_USER - user-level messages
	FacilityLocal0 = 16 // LOG_LOCAL0 - application activity
)

// Severity levels matching syslog (RFC5424)
type Severity int

const (
	SeverityEmergency Severity = iota // 0
	SeverityAlert                     // 1
	SeverityCritical                  // 2
	SeverityError                     // 3
	SeverityWarning                   // 4
	SeverityNotice                    // 5
	SeverityInfo                      // 6
	SeverityDebug                     // 7
)

// Event represents an audit event
type Event interface {
	MessageID() string
	Message() string
	Severity() Severity
	Facility() int
	StructuredData() map[string]map[string]string
}

// Sink persists or forwards events in addition to the line log.
type Sink interface {
	Save(event Event) error
}

// Logger handles audit logging in RFC5424 syslog format
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	hostname string
	appName  string
	pid      int
	now      func() time.Time
}

// NewLogger creates a new audit logger
func NewLogger() *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		writer:   os.Stdout,
		hostname: hostname,
		appName:  AppName,
		pid:      os.Getpid(),
		now:      time.Now,
	}
}

// SetWriter sets the output writer for the logger
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// Log writes an audit event in RFC5424 syslog format
// Format: <PRI>VERSION TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG
func (l *Logger) Log(event Event) {
	pri := event.Facility()*8 + int(event.Severity())
	timestamp := l.now().UTC().Format("2006-01-02T15:04:05.000Z")

	sd := formatStructuredData(event.StructuredData())
	if sd == "" {
		sd = "-"
	}
	hostname := l.hostname
	if hostname == "" {
		hostname = "-"
	}

	logLine := fmt.Sprintf("<%d>1 %s %s %s %d %s %s %s\n",
		pri,
		timestamp,
		hostname,
		l.appName,
		l.pid,
		event.MessageID(),
		sd,
		event.Message(),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.writer.Write([]byte(logLine))
}

// formatStructuredData formats the structured data according to RFC5424
// Format: [sdid param1="value1" param2="value2"][sdid2 ...]
// Elements and params are sorted so lines are reproducible.
func formatStructuredData(sd map[string]map[string]string) string {
	if len(sd) == 0 {
		return ""
	}

	ids := make([]string, 0, len(sd))
	for sdid := range sd {
		ids = append(ids, sdid)
	}
	sort.Strings(ids)

	var parts []string
	for _, sdid := range ids {
		params := sd[sdid]
		keys := make([]string, 0, len(params))
		for key := range params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		paramParts := []string{sdid}
		for _, key := range keys {
			paramParts = append(paramParts, fmt.Sprintf("%s=%s", key, escapeSDValue(params[key])))
		}
		parts = append(parts, "["+strings.Join(paramParts, " ")+"]")
	}
	return strings.Join(parts, "")
}

// escapeSDValue escapes special characters in structured data values per RFC5424
func escapeSDValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "]", "\\]")
	return "\"" + value + "\""
}

// Default logger instance
var DefaultLogger = NewLogger()

// Default store for database persistence (nil if AUDIT_DATABASE_URL not set)
var DefaultStore *Store

var (
	auditEnabled     atomic.Bool
	auditEnabledOnce sync.Once
	storeInitOnce    sync.Once

	sinksMu sync.RWMutex
	sinks   []Sink
)

func loadEnabled() {
	auditEnabledOnce.Do(func() {
		auditEnabled.Store(true)
		if env := os.Getenv("ARTRIGHTS_AUDIT_ENABLED"); env != "" {
			auditEnabled.Store(env != "false" && env != "0" && env != "no")
		}
	})
}

// IsEnabled returns whether audit logging is enabled
func IsEnabled() bool {
	loadEnabled()
	return auditEnabled.Load()
}

// SetEnabled overrides ARTRIGHTS_AUDIT_ENABLED.
func SetEnabled(enabled bool) {
	loadEnabled()
	auditEnabled.Store(enabled)
}

// AddSink registers a sink that receives every logged event.
func AddSink(s Sink) {
	sinksMu.Lock()
	defer sinksMu.Unlock()
	sinks = append(sinks, s)
}

// ResetSinks removes every registered sink.
func ResetSinks() {
	sinksMu.Lock()
	defer sinksMu.Unlock()
	sinks = nil
}

// Log writes an event to the default logger, the default store and every
// registered sink, if audit is enabled. Sink failures are reported on stderr.
func Log(event Event) {
	if !IsEnabled() {
		return
	}
	DefaultLogger.Log(event)

	storeInitOnce.Do(func() {
		var err error
		DefaultStore, err = NewStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "audit: failed to connect to audit database: %v\n", err)
		}
	})
	if DefaultStore != nil {
		if err := DefaultStore.Save(event); err != nil {
			fmt.Fprintf(os.Stderr, "audit: failed to save event: %v\n", err)
		}
	}

	sinksMu.RLock()
	defer sinksMu.RUnlock()
	for _, s := range sinks {
		if err := s.Save(event); err != nil {
			fmt.Fprintf(os.Stderr, "audit: sink failed: %v\n", err)
		}
	}
}
