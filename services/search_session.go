// services/search_session.go
package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SearchSession holds one client's transient filter state plus the most
// recently computed result set. Every edit is pushed through the session's
// FilterNotifier, so a burst of keystrokes costs a single recompute after
// the quiescence window instead of one per edit.
type SearchSession struct {
	ID string

	mu        sync.Mutex
	query     string
	filters   FilterState
	results   []ListingSummary
	searching bool

	notifier *FilterNotifier
}

func (s *SearchSession) snapshot() (string, FilterState, []ListingSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.filters, s.results, s.searching
}

// SearchSessionService is the registry of live search sessions. The listing
// feed is injected as a fetch func so the debounce/filter core stays free of
// storage concerns.
type SearchSessionService struct {
	mu       sync.Mutex
	sessions map[string]*SearchSession
	window   time.Duration
	fetch    func() ([]ListingSummary, error)
}

func NewSearchSessionService(window time.Duration, fetch func() ([]ListingSummary, error)) *SearchSessionService {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &SearchSessionService{
		sessions: make(map[string]*SearchSession),
		window:   window,
		fetch:    fetch,
	}
}

// Open creates a session with default filters and an immediately computed
// (unfiltered) result set.
func (svc *SearchSessionService) Open() (*SearchSession, error) {
	s := &SearchSession{
		ID:      uuid.NewString(),
		filters: DefaultFilterState(),
	}
	s.notifier = NewFilterNotifier(svc.window, func(state FilterState) {
		svc.recompute(s, state)
	})

	listings, err := svc.fetch()
	if err != nil {
		return nil, err
	}
	s.results = FilterListings(listings, "", s.filters)

	svc.mu.Lock()
	svc.sessions[s.ID] = s
	svc.mu.Unlock()
	return s, nil
}

// Update records one field-level edit. The recompute is debounced; until it
// fires the session reports searching=true with the previous results.
func (svc *SearchSessionService) Update(id string, query string, filters FilterState) error {
	s, err := svc.get(id)
	if err != nil {
		return err
	}

	filters = filters.Normalized()

	s.mu.Lock()
	s.query = query
	s.filters = filters
	s.searching = true
	s.mu.Unlock()

	s.notifier.Push(filters)
	return nil
}

// Clear resets the session to default filter state, also debounced so it
// coalesces with surrounding edits.
func (svc *SearchSessionService) Clear(id string) error {
	return svc.Update(id, "", DefaultFilterState())
}

// Results returns the session's current filter state, active-filter chips,
// latest result set and whether a recompute is still pending.
func (svc *SearchSessionService) Results(id string) (FilterState, []string, []ListingSummary, bool, error) {
	s, err := svc.get(id)
	if err != nil {
		return FilterState{}, nil, nil, false, err
	}
	_, filters, results, searching := s.snapshot()
	return filters, filters.Chips(), results, searching, nil
}

// Close tears a session down. The pending debounce timer, if any, is
// cancelled: nothing recomputes for a closed session.
func (svc *SearchSessionService) Close(id string) error {
	svc.mu.Lock()
	s, ok := svc.sessions[id]
	delete(svc.sessions, id)
	svc.mu.Unlock()

	if !ok {
		return errors.New("session_not_found")
	}
	s.notifier.Close()
	return nil
}

func (svc *SearchSessionService) get(id string) (*SearchSession, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	s, ok := svc.sessions[id]
	if !ok {
		return nil, errors.New("session_not_found")
	}
	return s, nil
}

func (svc *SearchSessionService) recompute(s *SearchSession, state FilterState) {
	listings, err := svc.fetch()
	if err != nil {
		// Keep the previous results; the caller can re-trigger manually.
		log.Printf("search session %s: feed fetch failed: %v", s.ID, err)
		s.mu.Lock()
		s.searching = false
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	query := s.query
	s.results = FilterListings(listings, query, state)
	s.searching = false
	s.mu.Unlock()
}
