// Package editor keeps the server side state of the weekly allocation form
// for each user.
package editor

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/theo886/weekly-time-allocation/internal/allocation"
	"github.com/theo886/weekly-time-allocation/internal/cache"
	"github.com/theo886/weekly-time-allocation/internal/types"
)

const (
	MessageSubmitted = "Timesheet submitted successfully!"
	MessageUpdated   = "Timesheet updated successfully!"
)

var ErrUnchanged = errors.New("this week has already been submitted and was not modified since")

// Status is the state of the submit action of a session.
type Status string

const (
	StatusSubmit    Status = "submit"    // The week has not been submitted
	StatusSubmitted Status = "submitted" // The week has been submitted and not changed since
	StatusUpdate    Status = "update"    // The week has been submitted and changed since
)

// Store loads and saves submitted weeks.
type Store interface {
	// Load returns the stored entries of the week. The bool is false if
	// the week has not been submitted.
	Load(userID string, week types.Week) ([]allocation.Stored, bool, error)

	// Save stores the set as the submission of the week.
	Save(user types.User, week types.Week, set allocation.Set) error
}

// Registry holds the sessions of all users.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	store    Store
	cache    *cache.Store

	// Now returns the current time. It decides which week new sessions
	// start in.
	Now func() time.Time
}

// NewRegistry returns an empty Registry using the store for submitted
// weeks.
func NewRegistry(store Store) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		store:    store,
		cache:    cache.New(),
		Now:      time.Now,
	}
}

// Open returns the session of the user. A new session starts at the
// current week.
func (r *Registry) Open(userID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s, nil
	}

	s := &Session{
		registry: r,
		userID:   userID,
	}

	if err := s.load(types.WeekOf(r.Now())); err != nil {
		return nil, err
	}

	r.sessions[userID] = s
	log.Debug().Str("user", userID).Str("week", s.week.String()).Msg("editor session opened")

	return s, nil
}

// Forget drops the cached data of the week. If the user has a session, the
// week is looked up again and an unpinned session showing it reloads it.
func (r *Registry) Forget(userID string, week types.Week) error {
	r.cache.Clear(userID, week.String())

	r.mu.Lock()
	s, ok := r.sessions[userID]
	r.mu.Unlock()

	if !ok {
		return nil
	}

	if _, _, err := r.lookup(userID, week); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pinned || !s.week.Equal(week) {
		return nil
	}

	return s.load(week)
}

// lookup returns the submitted set of the week, first from the cache, then
// from the store. Weeks are cached by their ID so the keys sort by date.
func (r *Registry) lookup(userID string, week types.Week) (allocation.Set, bool, error) {
	key := week.String()

	if entries, ok := r.cache.Get(userID, key); ok {
		return allocation.FromStored(allocation.Set(entries).Stored()), true, nil
	}

	stored, found, err := r.store.Load(userID, week)
	if err != nil || !found {
		return nil, false, err
	}

	set := allocation.FromStored(stored)
	r.cache.Set(userID, key, set)

	return set, true, nil
}

// View is a snapshot of a session.
type View struct {
	UserID    string         `json:"userId" example:"a3f1c6e2-0b7e-4c55-a0f4-17c2e1b9d0aa"` // ID of the user the session belongs to
	Week      types.Week     `json:"week" swaggertype:"primitive,string" example:"2025-03-10"`
	WeekRange string         `json:"weekRange" example:"3/10/2025 - 3/16/2025"`
	Pinned    bool           `json:"pinned" example:"false"` // Navigation carries the entries over to the next week
	Entries   allocation.Set `json:"entries"`
	Total     int            `json:"total" example:"100"`
	Error     string         `json:"error" example:"Duplicate projects are not allowed"` // Validation message, empty if the entries are valid
	Status    Status         `json:"status" example:"submit"`
	CanSubmit bool           `json:"canSubmit" example:"true"`

	// Weeks known to be submitted, oldest first
	SubmittedWeeks []types.Week `json:"submittedWeeks" swaggertype:"array,string" example:"2025-03-03,2025-03-10"`
}

// submittedWeeks returns the weeks of the user that are in the cache.
func (r *Registry) submittedWeeks(userID string) []types.Week {
	keys := r.cache.Keys(userID)
	weeks := make([]types.Week, 0, len(keys))

	for _, k := range keys {
		w, err := types.ParseWeek(k)
		if err != nil {
			log.Error().Str("user", userID).Str("key", k).Msg("invalid week key in cache")
			continue
		}
		weeks = append(weeks, w)
	}

	return weeks
}

// Session is the editor state of one user.
type Session struct {
	mu       sync.Mutex
	registry *Registry

	userID    string
	week      types.Week
	pinned    bool
	set       allocation.Set
	submitted bool
	modified  bool
}

// load shows the week, either as submitted or with the default entries.
func (s *Session) load(week types.Week) error {
	set, found, err := s.registry.lookup(s.userID, week)
	if err != nil {
		return err
	}

	if !found {
		set = allocation.New()
	}

	s.week = week
	s.set = set
	s.submitted = found
	s.modified = false

	return nil
}

// touch records a change of the entries.
func (s *Session) touch() {
	if s.submitted {
		s.modified = true
	}
}

func (s *Session) status() Status {
	switch {
	case s.submitted && s.modified:
		return StatusUpdate
	case s.submitted:
		return StatusSubmitted
	default:
		return StatusSubmit
	}
}

func (s *Session) view() View {
	var message string
	if err := s.set.Validate(); err != nil {
		message = err.Error()
	}

	status := s.status()
	entries := make(allocation.Set, len(s.set))
	copy(entries, s.set)

	return View{
		UserID:    s.userID,
		Week:      s.week,
		WeekRange: s.week.Range(),
		Pinned:    s.pinned,
		Entries:   entries,
		Total:     s.set.Total(),
		Error:     message,
		Status:    status,
		CanSubmit: s.set.Submittable() == nil && status != StatusSubmitted,

		SubmittedWeeks: s.registry.submittedWeeks(s.userID),
	}
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view()
}

// AddEntry appends an entry.
func (s *Session) AddEntry() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = s.set.Add()
	s.touch()

	return s.view()
}

// RemoveEntry removes the entry with the given ID.
func (s *Session) RemoveEntry(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.set.Remove(id)
	if err != nil {
		return s.view(), err
	}

	if len(set) != len(s.set) {
		s.touch()
	}
	s.set = set

	return s.view(), nil
}

// UpdateEntry sets a field of the entry with the given ID.
func (s *Session) UpdateEntry(id string, field allocation.Field, value string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.set.Update(id, field, value)
	if err != nil {
		return s.view(), err
	}

	s.set = set
	s.touch()

	return s.view(), nil
}

// TogglePin switches pin mode on or off.
func (s *Session) TogglePin() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pinned = !s.pinned

	return s.view()
}

// Navigate moves the session by the given number of weeks.
func (s *Session) Navigate(weeks int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.goTo(s.week.AddWeeks(weeks))
}

// GoTo moves the session to the week.
func (s *Session) GoTo(week types.Week) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.goTo(week)
}

func (s *Session) goTo(week types.Week) (View, error) {
	if s.pinned {
		s.week = week
		s.set = s.set.Clone()
		s.submitted = false
		s.modified = false

		return s.view(), nil
	}

	if err := s.load(week); err != nil {
		return s.view(), err
	}

	return s.view(), nil
}

// Submit stores the entries of the current week for the user and returns
// the confirmation message.
func (s *Session) Submit(user types.User) (string, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set.Submittable(); err != nil {
		return "", s.view(), err
	}

	if s.status() == StatusSubmitted {
		return "", s.view(), ErrUnchanged
	}

	user = user.Trimmed()
	user.ID = s.userID

	if err := s.registry.store.Save(user, s.week, s.set); err != nil {
		return "", s.view(), err
	}

	s.registry.cache.Set(s.userID, s.week.String(), s.set)

	message := MessageSubmitted
	if s.submitted {
		message = MessageUpdated
	}

	s.submitted = true
	s.modified = false

	log.Info().Str("user", s.userID).Str("week", s.week.String()).Int("entries", len(s.set)).Msg(message)

	return message, s.view(), nil
}
