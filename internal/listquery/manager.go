package listquery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"sync"
)

// ErrPersist wraps a failure to write the state to its Store. The in-memory
// transition has already been applied when it is returned.
var ErrPersist = errors.New("persist list query state")

// ChangeFunc is called after every committed transition; it is the signal
// that the list must be fetched again.
type ChangeFunc func(prev, next State)

// Manager is the single owner of one view's query state. Rendering code reads
// the state and asks for transitions through it; it never touches the Store.
type Manager struct {
	mu        sync.Mutex
	store     Store
	key       Key
	known     KnownCodes
	state     State
	draft     *string
	listeners []ChangeFunc
}

// Option configures a Manager.
type Option func(*Manager)

// WithKnownCodes restricts the status codes kept when loading a state.
func WithKnownCodes(known KnownCodes) Option {
	return func(m *Manager) {
		m.known = known
	}
}

// NewManager creates a Manager for key, starting from Default until Load.
func NewManager(store Store, key Key, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		key:   key,
		state: Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Key returns the store key this manager writes to.
func (m *Manager) Key() Key {
	return m.key
}

// OnChange registers fn to be called after each committed transition.
func (m *Manager) OnChange(fn ChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Load reads the persisted state. Missing, unreadable and malformed data all
// yield Default; Load never fails.
func (m *Manager) Load(ctx context.Context) State {
	state := Default()

	data, err := m.store.Load(ctx, m.key)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		slog.Warn("failed to load list query state, using defaults", "key", m.key.String(), "error", err)
	default:
		decoded, err := Decode(data)
		if err != nil {
			slog.Debug("discarding malformed list query state", "key", m.key.String(), "error", err)
			break
		}
		state = decoded.Sanitize(m.known)
	}

	m.mu.Lock()
	m.state = state
	m.mu.Unlock()

	return state.Clone()
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// QueryParams returns the list-fetch query for the current state.
func (m *Manager) QueryParams() url.Values {
	return m.State().QueryParams()
}

// SetSearchTerm records a typed term as a draft. The committed state, the
// store and the listeners are left alone until CommitSearch.
func (m *Manager) SetSearchTerm(term string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = &term
}

// PendingSearch returns the draft term, if one is waiting for a commit.
func (m *Manager) PendingSearch() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.draft == nil {
		return "", false
	}
	return *m.draft, true
}

// DiscardSearch drops the draft term and reports whether there was one.
func (m *Manager) DiscardSearch() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	had := m.draft != nil
	m.draft = nil
	return had
}

// CommitSearch applies the draft term from the first page, persists it and
// signals a refetch. Without a draft it returns the current state.
func (m *Manager) CommitSearch(ctx context.Context) (State, error) {
	if _, ok := m.PendingSearch(); !ok {
		return m.State(), nil
	}
	// The transition runs under the lock, so it commits the newest draft.
	return m.apply(ctx, func(s State) State {
		if m.draft != nil {
			s = s.WithSearchTerm(*m.draft)
		}
		return s.MoveTo(FirstPage)
	})
}

// SetFilters merges f into the state and starts over at the first page.
func (m *Manager) SetFilters(ctx context.Context, f FilterFields) (State, error) {
	if f.IsEmpty() {
		return m.State(), nil
	}
	return m.apply(ctx, func(s State) State {
		return s.WithFilters(f)
	})
}

// ClearFilters drops every filter; the page and the search term are kept.
func (m *Manager) ClearFilters(ctx context.Context) (State, error) {
	return m.apply(ctx, State.Cleared)
}

// NextPage moves one page forward.
func (m *Manager) NextPage(ctx context.Context) (State, error) {
	return m.apply(ctx, State.Next)
}

// PreviousPage moves one page back; it never goes below the first page.
func (m *Manager) PreviousPage(ctx context.Context) (State, error) {
	return m.apply(ctx, State.Previous)
}

// MoveToPage jumps to page n. Callers disable controls past the last known
// page; the manager only enforces the lower bound.
func (m *Manager) MoveToPage(ctx context.Context, n int) (State, error) {
	return m.apply(ctx, func(s State) State {
		return s.MoveTo(n)
	})
}

// apply runs a transition, writes the result through to the store and
// notifies listeners. The store write happens under the lock so that writes
// land in transition order. Any draft search term is dropped.
func (m *Manager) apply(ctx context.Context, transition func(State) State) (State, error) {
	m.mu.Lock()
	prev := m.state
	next := transition(prev)
	m.draft = nil
	m.state = next
	persistErr := m.persist(ctx, next)
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	m.notify(listeners, prev, next)
	return next.Clone(), persistErr
}

// Reset returns the view to Default and removes its persisted state. Stores
// that cannot delete get Default written instead.
func (m *Manager) Reset(ctx context.Context) (State, error) {
	m.mu.Lock()
	prev := m.state
	next := Default()
	m.draft = nil
	m.state = next
	var err error
	if d, ok := m.store.(Deleter); ok {
		if derr := d.Delete(ctx, m.key); derr != nil {
			err = fmt.Errorf("%w for %s: %w", ErrPersist, m.key.String(), derr)
		}
	} else {
		err = m.persist(ctx, next)
	}
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	m.notify(listeners, prev, next)
	return next.Clone(), err
}

func (m *Manager) notify(listeners []ChangeFunc, prev, next State) {
	for _, fn := range listeners {
		fn(prev.Clone(), next.Clone())
	}
}

func (m *Manager) persist(ctx context.Context, s State) error {
	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := m.store.Save(ctx, m.key, data); err != nil {
		return fmt.Errorf("%w for %s: %w", ErrPersist, m.key.String(), err)
	}
	return nil
}
