package service

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bidforge/bidforge-go/internal/models"
)

// AuditLog is the process-lifetime, append-only record of agent
// activity. Entries are never pruned within a session; consumers filter
// by timestamp window to isolate one run.
type AuditLog struct {
	mu      sync.Mutex
	entries []models.LogEntry
}

// NewAuditLog creates an empty audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append records a log entry. A non-nil payload is serialized as
// indented JSON; payloads that cannot be serialized fall back to their
// Go string form rather than being dropped.
func (l *AuditLog) Append(agent models.AgentName, message string, payload any) {
	var data string
	if payload != nil {
		if b, err := json.MarshalIndent(payload, "", "  "); err == nil {
			data = string(b)
		} else {
			data = fmt.Sprintf("%v", payload)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, models.LogEntry{
		Timestamp: time.Now(),
		Agent:     agent,
		Message:   message,
		Data:      data,
	})
}

// Entries returns a snapshot copy of all entries in append order.
func (l *AuditLog) Entries() []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.LogEntry(nil), l.entries...)
}

// Since returns the entries recorded at or after t, in append order.
func (l *AuditLog) Since(t time.Time) []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.LogEntry
	for _, entry := range l.entries {
		if !entry.Timestamp.Before(t) {
			out = append(out, entry)
		}
	}
	return out
}
