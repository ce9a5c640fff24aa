package runcache

import (
	"errors"
	"sort"
	"sync"
	"time"

	"pkg.jsn.cam/tally/pkg/tally"
)

var ErrRunNotFound = errors.New("run not found")

// Entry is one persisted aggregation run.
type Entry struct {
	ID          string                  `json:"id"`
	CreatedAt   time.Time               `json:"created_at"`
	Input       string                  `json:"input"`
	Combiner    string                  `json:"combiner"`
	GroupColumn string                  `json:"group_column"`
	ValueColumn string                  `json:"value_column"`
	Groups      tally.AggregationResult `json:"groups"`
}

// Cache stores completed runs so results can be listed and re-rendered
// without re-parsing the input file.
type Cache interface {
	Put(e Entry) error
	Get(id string) (Entry, error)
	// List returns every entry, newest first.
	List() ([]Entry, error)
	Close() error
}

// Memory implements Cache with an in-process map (not persistent).
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Put(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[e.ID] = e
	return nil
}

func (m *Memory) Get(id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return Entry{}, ErrRunNotFound
	}
	return e, nil
}

func (m *Memory) List() ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		all = append(all, e)
	}
	sortNewestFirst(all)
	return all, nil
}

func (m *Memory) Close() error { return nil }

func sortNewestFirst(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
