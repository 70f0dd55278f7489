package main

import (
	"sync"
	"time"
)

// Event types for metrics tracking
const (
	EvtSessionStart = "session_start"
	EvtSessionEnd   = "session_end"
	EvtGameOver     = "game_over"
	EvtElimination  = "elimination"
)

// MetricEvent represents a single trackable event
type MetricEvent struct {
	Type      string
	SessionID string
	Value     int
	Timestamp time.Time
}

// Metrics aggregates game events off the hot path. Events go through a
// buffered channel so the game loop never blocks on tracking.
type Metrics struct {
	events chan MetricEvent
	stop   chan struct{}
	wg     sync.WaitGroup

	mu              sync.RWMutex
	totals          map[string]int
	concurrentConns int
	activeSessions  int
	startedAt       time.Time
}

// MetricsSnapshot is the exported view for the stats endpoint
type MetricsSnapshot struct {
	Uptime          float64        `json:"uptime_s"`
	ConcurrentConns int            `json:"conns"`
	ActiveSessions  int            `json:"sessions"`
	Totals          map[string]int `json:"totals"`
}

// NewMetrics creates the aggregator and starts its background worker
func NewMetrics() *Metrics {
	m := &Metrics{
		events:    make(chan MetricEvent, 1024),
		stop:      make(chan struct{}),
		totals:    make(map[string]int),
		startedAt: time.Now(),
	}
	m.wg.Add(1)
	go m.worker()
	return m
}

// Track enqueues an event (non-blocking)
func (m *Metrics) Track(evtType, sessionID string, value int) {
	select {
	case m.events <- MetricEvent{
		Type:      evtType,
		SessionID: sessionID,
		Value:     value,
		Timestamp: time.Now().UTC(),
	}:
	default:
		// Channel full, drop the event rather than block the game loop
	}
}

// SetConcurrentConns updates the live connection count
func (m *Metrics) SetConcurrentConns(n int) {
	m.mu.Lock()
	m.concurrentConns = n
	m.mu.Unlock()
}

// SetActiveSessions updates the live session count
func (m *Metrics) SetActiveSessions(n int) {
	m.mu.Lock()
	m.activeSessions = n
	m.mu.Unlock()
}

// Snapshot returns the current aggregate view
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]int, len(m.totals))
	for k, v := range m.totals {
		totals[k] = v
	}
	return MetricsSnapshot{
		Uptime:          time.Since(m.startedAt).Seconds(),
		ConcurrentConns: m.concurrentConns,
		ActiveSessions:  m.activeSessions,
		Totals:          totals,
	}
}

// Stop gracefully shuts down the worker
func (m *Metrics) Stop() {
	close(m.stop)
	m.wg.Wait()
}

// worker drains the event channel into the aggregate counters
func (m *Metrics) worker() {
	defer m.wg.Done()

	for {
		select {
		case evt := <-m.events:
			m.apply(evt)
		case <-m.stop:
			close(m.events)
			for evt := range m.events {
				m.apply(evt)
			}
			return
		}
	}
}

func (m *Metrics) apply(evt MetricEvent) {
	m.mu.Lock()
	v := evt.Value
	if v == 0 {
		v = 1
	}
	m.totals[evt.Type] += v
	m.mu.Unlock()
}
