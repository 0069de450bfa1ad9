package services

import (
	"log"
	"sync"
	"time"
)

// LeadForms is the global per-visitor form store
var LeadForms *LeadFormStore

// LeadFormStore keeps one LeadForm per visitor ID
type LeadFormStore struct {
	submitter LeadSubmitter
	ttl       time.Duration

	mu    sync.Mutex
	forms map[string]*LeadForm
	stop  chan struct{}
}

// NewLeadFormStore creates a store whose forms submit through s.
// Forms idle for longer than ttl are evicted by Sweep.
func NewLeadFormStore(s LeadSubmitter, ttl time.Duration) *LeadFormStore {
	return &LeadFormStore{
		submitter: s,
		ttl:       ttl,
		forms:     make(map[string]*LeadForm),
		stop:      make(chan struct{}),
	}
}

// InitLeadForms sets up the global store and starts its cleanup loop
func InitLeadForms(s LeadSubmitter, ttl time.Duration) {
	LeadForms = NewLeadFormStore(s, ttl)
	go LeadForms.run(time.Minute)
}

// Get returns the visitor's form, creating an empty one on first use
func (s *LeadFormStore) Get(visitorID string) *LeadForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[visitorID]
	if !ok {
		form = NewLeadForm(s.submitter)
		s.forms[visitorID] = form
	}
	return form
}

// State returns the visitor's form state without creating a form.
// Visitors with no form get an empty state.
func (s *LeadFormStore) State(visitorID string) LeadFormState {
	s.mu.Lock()
	form, ok := s.forms[visitorID]
	s.mu.Unlock()

	if !ok {
		return LeadFormState{}
	}
	return form.Snapshot()
}

// Len returns the number of live forms
func (s *LeadFormStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep evicts idle forms; forms with a submission in flight are kept
func (s *LeadFormStore) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, form := range s.forms {
		if form.idleSince(cutoff) {
			delete(s.forms, id)
			removed++
		}
	}
	return removed
}

// Close stops the cleanup loop
func (s *LeadFormStore) Close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

func (s *LeadFormStore) run(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			if n := s.Sweep(now); n > 0 {
				log.Printf("[INFO] Evicted %d idle lead forms", n)
			}
		}
	}
}
