package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecordStageAggregates(t *testing.T) {
	c := NewCollector()

	c.RecordStage("TECHNICAL_AGENT", 40*time.Millisecond)
	c.RecordStage("TECHNICAL_AGENT", 20*time.Millisecond)
	c.RecordStage("TECHNICAL_AGENT", 60*time.Millisecond)

	snap := c.Snapshot()
	s, ok := snap.Stages["TECHNICAL_AGENT"]
	if !ok {
		t.Fatal("expected stage snapshot for TECHNICAL_AGENT")
	}

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.TotalTimeMs != 120 {
		t.Errorf("TotalTimeMs = %d, want 120", s.TotalTimeMs)
	}
	if s.AvgTimeMs != 40 {
		t.Errorf("AvgTimeMs = %v, want 40", s.AvgTimeMs)
	}
	if s.MinTimeMs != 20 {
		t.Errorf("MinTimeMs = %d, want 20", s.MinTimeMs)
	}
	if s.MaxTimeMs != 60 {
		t.Errorf("MaxTimeMs = %d, want 60", s.MaxTimeMs)
	}
}

func TestSnapshotOmitsUnrecordedStages(t *testing.T) {
	c := NewCollector()
	c.RecordStage("EXTRACTOR", 5*time.Millisecond)

	snap := c.Snapshot()
	if len(snap.Stages) != 1 {
		t.Fatalf("expected exactly one stage, got %d", len(snap.Stages))
	}
	if _, ok := snap.Stages["PRICING_AGENT"]; ok {
		t.Error("unrecorded stage should not appear in snapshot")
	}
}

func TestConcurrentRecording(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordStage("SALES_AGENT", time.Millisecond)
		}()
	}
	wg.Wait()

	s, ok := c.Snapshot().Stages["SALES_AGENT"]
	if !ok || s.Count != 50 {
		t.Errorf("Count = %d, want 50", s.Count)
	}
}
