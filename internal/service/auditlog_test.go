package service

import (
	"strings"
	"testing"
	"time"

	"github.com/bidforge/bidforge-go/internal/models"
)

func TestAuditLogAppendAndSnapshot(t *testing.T) {
	log := NewAuditLog()

	log.Append(models.AgentSystem, "first", nil)
	log.Append(models.AgentPricing, "second", models.Pricing{{Label: "Subtotal", Amount: 100}})

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "first" || entries[0].Data != "" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Agent != models.AgentPricing {
		t.Errorf("entry 1 agent = %s", entries[1].Agent)
	}
	if !strings.Contains(entries[1].Data, `"Subtotal"`) {
		t.Errorf("payload not serialized: %q", entries[1].Data)
	}

	// Snapshot isolation: mutating the copy leaves the log untouched.
	entries[0].Message = "mutated"
	if log.Entries()[0].Message != "first" {
		t.Error("Entries must return a copy")
	}
}

func TestAuditLogSince(t *testing.T) {
	log := NewAuditLog()

	log.Append(models.AgentSystem, "before window", nil)
	time.Sleep(5 * time.Millisecond)
	cutoff := time.Now()
	log.Append(models.AgentExtractor, "inside window", nil)
	log.Append(models.AgentParsing, "also inside", nil)

	window := log.Since(cutoff)
	if len(window) != 2 {
		t.Fatalf("got %d entries in window, want 2", len(window))
	}
	if window[0].Message != "inside window" || window[1].Message != "also inside" {
		t.Errorf("window = %+v", window)
	}

	if got := log.Since(time.Now().Add(time.Hour)); len(got) != 0 {
		t.Errorf("future window returned %d entries", len(got))
	}
}

func TestAuditLogConcurrentAppends(t *testing.T) {
	log := NewAuditLog()

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				log.Append(models.AgentSystem, "entry", nil)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	if got := len(log.Entries()); got != 200 {
		t.Errorf("got %d entries, want 200", got)
	}
}
