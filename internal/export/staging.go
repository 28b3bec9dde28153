package export

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultStagingTTL is how long a staged artifact stays downloadable
const DefaultStagingTTL = 2 * time.Minute

// Staging holds produced artifacts under opaque handles until they are
// downloaded or released. Every handle is released after the TTL whether or
// not it was ever fetched.
type Staging struct {
	mu      sync.Mutex
	items   map[string]*Artifact
	timers  map[string]*time.Timer
	ttl     time.Duration
	verbose bool
}

// NewStaging returns an empty staging area. A non-positive ttl uses DefaultStagingTTL.
func NewStaging(ttl time.Duration, verbose bool) *Staging {
	if ttl <= 0 {
		ttl = DefaultStagingTTL
	}
	return &Staging{
		items:   make(map[string]*Artifact),
		timers:  make(map[string]*time.Timer),
		ttl:     ttl,
		verbose: verbose,
	}
}

// Put stages a and returns its handle. Release is scheduled immediately.
func (s *Staging) Put(a *Artifact) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = a
	s.timers[id] = time.AfterFunc(s.ttl, func() { s.Release(id) })

	if s.verbose {
		log.Printf("[EXPORT] Staged %s as %s for %s", a.Filename, id, s.ttl)
	}
	return id
}

// Get returns the staged artifact, if it has not been released
func (s *Staging) Get(id string) (*Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	return a, ok
}

// Release drops a staged artifact. It reports whether the handle was live.
func (s *Staging) Release(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)

	if s.verbose {
		log.Printf("[EXPORT] Released staged artifact %s", id)
	}
	return true
}

// Len returns the number of live handles
func (s *Staging) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close releases every handle and stops pending timers
func (s *Staging) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	clear(s.items)
}
