package audit

import (
	"database/sql"
	"encoding/json"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

// Store handles audit message persistence to database
type Store struct {
	db *sql.DB
}

var _ Sink = (*Store)(nil)

// Message represents an audit message for database persistence
type Message struct {
	Facility  int            `json:"facility"`
	Severity  int            `json:"severity"`
	Timestamp time.Time      `json:"timestamp"`
	Hostname  string         `json:"hostname"`
	Appname   string         `json:"appname"`
	Procid    string         `json:"procid"`
	Msgid     string         `json:"msgid"`
	Sdata     map[string]any `json:"sdata"`
	Message   string         `json:"message"`
}

// NewMessage captures event as a Message stamped with the current time.
func NewMessage(event Event) Message {
	hostname, _ := os.Hostname()
	sdata := make(map[string]any, len(event.StructuredData()))
	for id, params := range event.StructuredData() {
		sdata[id] = params
	}
	return Message{
		Facility:  event.Facility(),
		Severity:  int(event.Severity()),
		Timestamp: time.Now().UTC(),
		Hostname:  hostname,
		Appname:   AppName,
		Procid:    strconv.Itoa(os.Getpid()),
		Msgid:     event.MessageID(),
		Sdata:     sdata,
		Message:   event.Message(),
	}
}

// NewStore creates a new audit store from AUDIT_DATABASE_URL
// Returns nil if AUDIT_DATABASE_URL is not set (audit DB disabled)
func NewStore() (*Store, error) {
	dbURL := os.Getenv("AUDIT_DATABASE_URL")
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection
// Useful for testing with sqlmock
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists an audit event to the database
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	msg := NewMessage(event)
	sdataJSON, err := json.Marshal(msg.Sdata)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO messages (facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		msg.Facility,
		msg.Severity,
		msg.Timestamp,
		msg.Hostname,
		msg.Appname,
		msg.Procid,
		msg.Msgid,
		sdataJSON,
		msg.Message,
	)

	return err
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}
