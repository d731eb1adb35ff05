package upstream

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/mtlprog/proposedesk/internal/domain"
)

// ErrStaleResponse reports a response that arrived after a newer fetch was issued.
var ErrStaleResponse = fmt.Errorf("stale response: %w", domain.ErrStaleRequest)

// ListFunc loads one page of type T for a list query.
type ListFunc[T any] func(ctx context.Context, params url.Values) (*T, error)

// Result is an accepted list response.
type Result[T any] struct {
	Generation uint64
	Params     url.Values
	Page       *T
	FetchedAt  time.Time
}

// Fetcher applies the last-issued-wins rule to list fetches of one session.
// Issuing a fetch cancels the one in flight; a response belonging to an older
// generation is discarded and never becomes Latest.
type Fetcher[T any] struct {
	list    ListFunc[T]
	onStale func()

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	latest *Result[T]
	// invalidated is the newest generation issued before the last Invalidate.
	invalidated uint64
}

type fetcherOptions struct {
	onStale func()
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*fetcherOptions)

// WithStaleHook registers fn to run whenever a response is discarded.
func WithStaleHook(fn func()) FetcherOption {
	return func(o *fetcherOptions) { o.onStale = fn }
}

// NewFetcher creates a Fetcher around list.
func NewFetcher[T any](list ListFunc[T], opts ...FetcherOption) *Fetcher[T] {
	var o fetcherOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Fetcher[T]{list: list, onStale: o.onStale}
}

// Fetch issues a new request and waits for it. It returns ErrStaleResponse
// when another Fetch (or Cancel) happened before this one completed.
func (f *Fetcher[T]) Fetch(ctx context.Context, params url.Values) (*Result[T], error) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	if f.cancel != nil {
		f.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()
	defer cancel()

	page, err := f.list(fetchCtx, params)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		if f.onStale != nil {
			f.onStale()
		}
		return nil, ErrStaleResponse
	}
	f.cancel = nil

	if err != nil {
		return nil, err
	}

	res := &Result[T]{
		Generation: gen,
		Params:     cloneValues(params),
		Page:       page,
		FetchedAt:  time.Now().UTC(),
	}
	if gen <= f.invalidated {
		// Issued before the data changed: hand it to the caller, never keep it.
		return res, nil
	}
	f.latest = res
	return res, nil
}

// Latest returns the newest accepted result.
func (f *Fetcher[T]) Latest() (*Result[T], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.latest != nil
}

// Generation returns the number of fetches issued so far.
func (f *Fetcher[T]) Generation() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen
}

// Cancel aborts the in-flight fetch, if any; its response will be discarded.
func (f *Fetcher[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// Invalidate forgets the latest result so the next read must fetch. A fetch
// in flight still answers its caller but does not become Latest.
func (f *Fetcher[T]) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = nil
	f.invalidated = f.gen
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
