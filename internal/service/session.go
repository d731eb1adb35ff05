package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/listquery"
	"github.com/mtlprog/proposedesk/internal/upstream"
)

// session is one mounted view of one account: its state manager, the
// last-wins fetcher and the search debouncer.
type session struct {
	key       listquery.Key
	view      domain.View
	manager   *listquery.Manager
	fetcher   *upstream.Fetcher[domain.ProposePage]
	users     *upstream.Fetcher[domain.UserPage]
	debouncer *listquery.Debouncer

	mu       sync.Mutex
	lastUsed time.Time
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastUsed = now
	s.mu.Unlock()
}

func (s *session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastUsed)
}

// commitPendingSearch commits a typed search that is still waiting for its
// quiet period, so closing a session does not lose it.
func (s *session) commitPendingSearch(ctx context.Context) {
	s.debouncer.Cancel()
	if _, ok := s.manager.PendingSearch(); !ok {
		return
	}
	if _, err := s.manager.CommitSearch(ctx); err != nil {
		slog.Warn("failed to persist pending search",
			"key", s.key.String(),
			"error", err,
		)
	}
}

func (s *session) close(ctx context.Context) {
	s.commitPendingSearch(ctx)
	s.fetcher.Cancel()
	s.users.Cancel()
}

// sessionFor returns the session of (account, view), creating and loading it
// on first use.
func (svc *ListService) sessionFor(ctx context.Context, accountID string, view domain.View) (*session, error) {
	if err := svc.validator.ValidateView(view); err != nil {
		return nil, err
	}
	key := listquery.Key{Owner: accountID, View: string(view)}
	now := svc.now()

	svc.mu.Lock()
	sess, ok := svc.sessions[key]
	svc.mu.Unlock()
	if ok {
		sess.touch(now)
		return sess, nil
	}

	sess = svc.newSession(key, view, now)
	sess.manager.Load(ctx)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if existing, ok := svc.sessions[key]; ok {
		existing.touch(now)
		return existing, nil
	}
	svc.sessions[key] = sess
	svc.metrics.SessionOpened()

	return sess, nil
}

func (svc *ListService) newSession(key listquery.Key, view domain.View, now time.Time) *session {
	sess := &session{
		key:      key,
		view:     view,
		manager:  listquery.NewManager(svc.store, key, listquery.WithKnownCodes(svc.catalog.KnownCodes())),
		lastUsed: now,
	}
	sess.fetcher = upstream.NewFetcher(svc.cachedList, upstream.WithStaleHook(svc.metrics.StaleResponse))
	sess.users = upstream.NewFetcher(svc.cachedUsers, upstream.WithStaleHook(svc.metrics.StaleResponse))
	sess.debouncer = listquery.NewDebouncer(svc.opts.SearchDebounce, func() {
		svc.commitSearch(sess)
	})
	sess.manager.OnChange(func(_, next listquery.State) {
		svc.metrics.StateChanged(string(view))
		slog.Debug("list query changed",
			"key", key.String(),
			"page", next.Page,
			"filters", next.HasFilters(),
		)
		if svc.opts.Prefetch {
			go svc.prefetch(sess)
		}
	})
	return sess
}

func (svc *ListService) commitSearch(sess *session) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
	defer cancel()
	if _, err := sess.manager.CommitSearch(ctx); err != nil {
		slog.Warn("failed to persist search", "key", sess.key.String(), "error", err)
	}
}

// prefetch loads the page of the current state so the next read is served
// from the fetcher. A newer prefetch or read supersedes it.
func (svc *ListService) prefetch(sess *session) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
	defer cancel()
	var err error
	if sess.view.ListsProposes() {
		_, err = sess.fetcher.Fetch(ctx, sess.manager.QueryParams())
	} else {
		_, err = sess.users.Fetch(ctx, directoryParams(sess.manager.State()))
	}
	if err != nil && !errors.Is(err, upstream.ErrStaleResponse) && !errors.Is(err, context.Canceled) {
		slog.Warn("prefetch failed", "key", sess.key.String(), "error", err)
	}
}

// EvictIdle closes sessions unused for longer than the idle timeout and
// returns how many were closed.
func (svc *ListService) EvictIdle(ctx context.Context) int {
	now := svc.now()

	svc.mu.Lock()
	var idle []*session
	for key, sess := range svc.sessions {
		if sess.idleSince(now) > svc.opts.SessionIdle {
			idle = append(idle, sess)
			delete(svc.sessions, key)
		}
	}
	svc.mu.Unlock()

	for _, sess := range idle {
		sess.close(ctx)
		svc.metrics.SessionClosed()
	}
	if len(idle) > 0 {
		slog.Debug("evicted idle sessions", "count", len(idle))
	}
	return len(idle)
}

// RunJanitor evicts idle sessions periodically until ctx is done.
func (svc *ListService) RunJanitor(ctx context.Context) {
	interval := max(svc.opts.SessionIdle/2, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.EvictIdle(ctx)
		}
	}
}

// Close commits pending searches and cancels in-flight fetches of every session.
func (svc *ListService) Close(ctx context.Context) {
	svc.mu.Lock()
	sessions := svc.sessions
	svc.sessions = make(map[listquery.Key]*session)
	svc.mu.Unlock()

	for _, sess := range sessions {
		sess.close(ctx)
		svc.metrics.SessionClosed()
	}
}

// SessionCount returns the number of sessions held in memory.
func (svc *ListService) SessionCount() int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return len(svc.sessions)
}
