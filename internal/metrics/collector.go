// Package metrics provides in-memory stage timing collection for
// pipeline runs.
package metrics

import (
	"math"
	"sync"
	"time"
)

// StageMetrics holds aggregated timings for a single pipeline stage.
type StageMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// StageSnapshot provides computed stats from raw stage metrics.
type StageSnapshot struct {
	Count       int64
	TotalTimeMs int64
	AvgTimeMs   float64
	MinTimeMs   int64
	MaxTimeMs   int64
}

// Snapshot represents all stage statistics at a point in time.
type Snapshot struct {
	ElapsedSeconds float64
	Stages         map[string]StageSnapshot
}

// Collector aggregates in-memory stage timings.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	stages    map[string]*StageMetrics
}

// NewCollector creates a new timing collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		stages:    make(map[string]*StageMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for a stage.
// Caller must hold write lock.
func (c *Collector) getOrCreate(stage string) *StageMetrics {
	m, ok := c.stages[stage]
	if !ok {
		m = &StageMetrics{
			MinTime: time.Duration(math.MaxInt64),
		}
		c.stages[stage] = m
	}
	return m
}

// RecordStage records one timed execution of a pipeline stage.
func (c *Collector) RecordStage(stage string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(stage)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// snapshotStage creates a snapshot for a stage, returning a zero value
// and false if no data was recorded.
func snapshotStage(m *StageMetrics) (StageSnapshot, bool) {
	if m == nil || m.Count == 0 {
		return StageSnapshot{}, false
	}

	return StageSnapshot{
		Count:       m.Count,
		TotalTimeMs: m.TotalTime.Milliseconds(),
		AvgTimeMs:   float64(m.TotalTime.Milliseconds()) / float64(m.Count),
		MinTimeMs:   m.MinTime.Milliseconds(),
		MaxTimeMs:   m.MaxTime.Milliseconds(),
	}, true
}

// Snapshot returns a point-in-time snapshot of all stage metrics.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		ElapsedSeconds: time.Since(c.startTime).Seconds(),
		Stages:         make(map[string]StageSnapshot, len(c.stages)),
	}
	for stage, m := range c.stages {
		if s, ok := snapshotStage(m); ok {
			snap.Stages[stage] = s
		}
	}
	return snap
}
