package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var (
	// ErrNotFound is returned when no dashboard is mounted under an id.
	ErrNotFound = errors.New("dashboard not found")
)

// MemoryStore is a concurrency-safe in-memory registry of mounted dashboards.
type MemoryStore struct {
	mu sync.RWMutex

	// key: dashboard id
	data map[string]*weather.Dashboard
	// mount order, oldest first
	order []string

	// retention configuration
	maxSessions int           // max number of mounted dashboards
	maxAge      time.Duration // optional max age of a dashboard
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxSessions is <= 0, it is treated as unlimited.
func NewMemoryStore(maxSessions int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:        make(map[string]*weather.Dashboard),
		maxSessions: maxSessions,
		maxAge:      maxAge,
	}
}

// Save registers a dashboard and enforces retention by count. Evicted
// dashboards are torn down.
func (s *MemoryStore) Save(d *weather.Dashboard) {
	s.mu.Lock()
	if _, ok := s.data[d.ID]; !ok {
		s.order = append(s.order, d.ID)
	}
	s.data[d.ID] = d

	var evicted []*weather.Dashboard
	for s.maxSessions > 0 && len(s.order) > s.maxSessions {
		id := s.order[0]
		s.order = s.order[1:]
		evicted = append(evicted, s.data[id])
		delete(s.data, id)
	}
	s.mu.Unlock()

	for _, old := range evicted {
		old.Close()
	}
}

// Get returns the dashboard mounted under id.
func (s *MemoryStore) Get(id string) (*weather.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// Delete removes the dashboard without tearing it down.
func (s *MemoryStore) Delete(id string) (*weather.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.data, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return d, nil
}

// Expire enforces retention by age relative to now.
func (s *MemoryStore) Expire(now time.Time) int {
	if s.maxAge <= 0 {
		return 0
	}
	cutoff := now.Add(-s.maxAge)

	s.mu.Lock()
	var expired []*weather.Dashboard
	kept := s.order[:0]
	for _, id := range s.order {
		d := s.data[id]
		if d.MountedAt.Before(cutoff) {
			expired = append(expired, d)
			delete(s.data, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	s.mu.Unlock()

	for _, d := range expired {
		d.Close()
	}
	return len(expired)
}

// Len returns the number of mounted dashboards.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var _ weather.Store = (*MemoryStore)(nil)
