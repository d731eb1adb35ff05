package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mtlprog/proposedesk/internal/cache"
	"github.com/mtlprog/proposedesk/internal/config"
	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/export"
	"github.com/mtlprog/proposedesk/internal/listquery"
	"github.com/mtlprog/proposedesk/internal/metrics"
)

const (
	backgroundTimeout = 15 * time.Second

	proposesCachePrefix = "proposes:"
	usersCachePrefix    = "users:"
	suppliersCacheKey   = "suppliers"
)

// ProposeSource is the REST API as seen by the list service.
type ProposeSource interface {
	ListProposes(ctx context.Context, params url.Values) (*domain.ProposePage, error)
	GetPropose(ctx context.Context, id int64) (*domain.Propose, error)
	ListSuppliers(ctx context.Context) ([]domain.User, error)
	ListUsers(ctx context.Context, params url.Values) (*domain.UserPage, error)
	UpdateProposeStatus(ctx context.Context, id int64, status string) error
}

// Options tunes the list service. Zero values take the config defaults.
type Options struct {
	CacheTTL       time.Duration
	SearchDebounce time.Duration
	SessionIdle    time.Duration
	MaxExportPages int
	// Prefetch loads the new page in the background after every state change.
	Prefetch bool
}

func (o Options) withDefaults() Options {
	if o.CacheTTL <= 0 {
		o.CacheTTL = config.DefaultCacheTTL
	}
	if o.SearchDebounce <= 0 {
		o.SearchDebounce = config.DefaultSearchDebounce
	}
	if o.SessionIdle <= 0 {
		o.SessionIdle = config.DefaultSessionIdle
	}
	if o.MaxExportPages <= 0 {
		o.MaxExportPages = config.MaxExportPages
	}
	return o
}

// StateResult is the current query state of a view.
type StateResult struct {
	View          domain.View
	State         listquery.State
	Query         url.Values
	SearchPending bool
	// PendingSearch is the typed term waiting for its quiet period.
	PendingSearch string
}

// ListResult is one fetched page of a view.
type ListResult struct {
	View      domain.View
	State     listquery.State
	Page      *domain.ProposePage
	Controls  PageControls
	FetchedAt time.Time
}

// BoardResult is one fetched page grouped into kanban columns.
type BoardResult struct {
	View      domain.View
	State     listquery.State
	Columns   []BoardColumnView
	Controls  PageControls
	FetchedAt time.Time
}

// ExportFile is a rendered export.
type ExportFile struct {
	Format      export.Format
	Filename    string
	ContentType string
	Rows        int
	Data        []byte
}

// ListService keeps one list-query session per (account, view) and serves
// pages of the REST API for it.
type ListService struct {
	store     listquery.Store
	source    ProposeSource
	cache     cache.Cache
	catalog   *config.Catalog
	metrics   *metrics.Metrics
	validator *Validator
	exporter  *export.Exporter
	opts      Options
	now       func() time.Time

	mu       sync.Mutex
	sessions map[listquery.Key]*session

	// cacheEpoch counts page cache invalidations. A page fetched across an
	// invalidation is not written back.
	cacheMu    sync.RWMutex
	cacheEpoch uint64
}

// NewListService creates a new ListService. A nil cache is replaced by an
// in-memory one.
func NewListService(
	store listquery.Store,
	source ProposeSource,
	c cache.Cache,
	catalog *config.Catalog,
	m *metrics.Metrics,
	opts Options,
) *ListService {
	if c == nil {
		c = cache.NewMemory()
	}
	if m == nil {
		m = metrics.New()
	}
	return &ListService{
		store:     store,
		source:    source,
		cache:     c,
		catalog:   catalog,
		metrics:   m,
		validator: NewValidator(catalog),
		exporter:  export.NewExporter(catalog),
		opts:      opts.withDefaults(),
		now:       time.Now,
		sessions:  make(map[listquery.Key]*session),
	}
}

// Catalog returns the status catalog in use.
func (svc *ListService) Catalog() *config.Catalog {
	return svc.catalog
}

// State returns the current query state of the view.
func (svc *ListService) State(ctx context.Context, accountID string, view domain.View) (*StateResult, error) {
	sess, err := svc.sessionFor(ctx, accountID, view)
	if err != nil {
		return nil, err
	}
	return svc.stateResult(sess, sess.manager.State(), nil), nil
}

// NextPage moves the view one page forward.
func (svc *ListService) NextPage(ctx context.Context, accountID string, view domain.View) (*StateResult, error) {
	return svc.mutate(ctx, accountID, view, func(m *listquery.Manager) (listquery.State, error) {
		return m.NextPage(ctx)
	})
}

// PreviousPage moves the view one page back, never below the first page.
func (svc *ListService) PreviousPage(ctx context.Context, accountID string, view domain.View) (*StateResult, error) {
	return svc.mutate(ctx, accountID, view, func(m *listquery.Manager) (listquery.State, error) {
		return m.PreviousPage(ctx)
	})
}

// MoveToPage jumps to page n; values below 1 land on the first page.
func (svc *ListService) MoveToPage(ctx context.Context, accountID string, view domain.View, n int) (*StateResult, error) {
	return svc.mutate(ctx, accountID, view, func(m *listquery.Manager) (listquery.State, error) {
		return m.MoveToPage(ctx, n)
	})
}

// SetFilters merges a partial filter update after validating it.
func (svc *ListService) SetFilters(
	ctx context.Context,
	accountID string,
	view domain.View,
	f listquery.FilterFields,
) (*StateResult, error) {
	if !view.ListsProposes() && view.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoFilters, view)
	}
	if err := svc.validator.ValidateFilters(f); err != nil {
		return nil, err
	}
	return svc.mutate(ctx, accountID, view, func(m *listquery.Manager) (listquery.State, error) {
		return m.SetFilters(ctx, f)
	})
}

// ClearFilters drops every filter and keeps the page and search term.
func (svc *ListService) ClearFilters(ctx context.Context, accountID string, view domain.View) (*StateResult, error) {
	return svc.mutate(ctx, accountID, view, func(m *listquery.Manager) (listquery.State, error) {
		return m.ClearFilters(ctx)
	})
}

// Search records a typed term. The term is committed when the quiet period
// elapses, right away when commit is set, or right away when it is empty.
func (svc *ListService) Search(
	ctx context.Context,
	accountID string,
	view domain.View,
	term string,
	commit bool,
) (*StateResult, error) {
	sess, err := svc.sessionFor(ctx, accountID, view)
	if err != nil {
		return nil, err
	}

	sess.manager.SetSearchTerm(term)
	if !commit && strings.TrimSpace(term) != "" {
		sess.debouncer.Trigger()
		return svc.stateResult(sess, sess.manager.State(), nil), nil
	}

	sess.debouncer.Cancel()
	state, err := sess.manager.CommitSearch(ctx)
	return svc.stateResult(sess, state, err), nil
}

// ResetView drops the view's state, typed search included, and removes it
// from the store.
func (svc *ListService) ResetView(ctx context.Context, accountID string, view domain.View) (*StateResult, error) {
	sess, err := svc.sessionFor(ctx, accountID, view)
	if err != nil {
		return nil, err
	}
	sess.debouncer.Cancel()
	state, err := sess.manager.Reset(ctx)
	return svc.stateResult(sess, state, err), nil
}

func (svc *ListService) mutate(
	ctx context.Context,
	accountID string,
	view domain.View,
	op func(m *listquery.Manager) (listquery.State, error),
) (*StateResult, error) {
	sess, err := svc.sessionFor(ctx, accountID, view)
	if err != nil {
		return nil, err
	}
	// A page or filter change drops the search still being typed.
	sess.debouncer.Cancel()
	state, err := op(sess.manager)
	return svc.stateResult(sess, state, err), nil
}

// stateResult builds the response of a transition. A failed write is logged:
// the transition already applied in memory and the next one retries the write.
func (svc *ListService) stateResult(sess *session, state listquery.State, persistErr error) *StateResult {
	if persistErr != nil {
		slog.Warn("list query state not persisted",
			"key", sess.key.String(),
			"error", persistErr,
		)
	}
	pending, ok := sess.manager.PendingSearch()
	return &StateResult{
		View:          sess.view,
		State:         state,
		Query:         state.QueryParams(),
		SearchPending: ok,
		PendingSearch: pending,
	}
}

// Proposes returns the page of the view's current state. The newest accepted
// response is reused while it matches the state and is younger than the cache
// TTL; refresh forces a new upstream request.
func (svc *ListService) Proposes(ctx context.Context, accountID string, view domain.View, refresh bool) (*ListResult, error) {
	if err := svc.validator.ValidateProposeView(view); err != nil {
		return nil, err
	}
	sess, err := svc.sessionFor(ctx, accountID, view)
	if err != nil {
		return nil, err
	}

	state := sess.manager.State()
	params := state.QueryParams()

	res, ok := sess.fetcher.Latest()
	if refresh || !ok || !sameQuery(res.Params, params) || svc.now().Sub(res.FetchedAt) > svc.opts.CacheTTL {
		if refresh {
			ctx = withoutCache(ctx)
		}
		res, err = sess.fetcher.Fetch(ctx, params)
		if err != nil {
			return nil, err
		}
	}

	return &ListResult{
		View:      view,
		State:     state,
		Page:      res.Page,
		Controls:  NewPageControls(res.Page.Pagination),
		FetchedAt: res.FetchedAt,
	}, nil
}

// Board returns the view's current page grouped into kanban columns.
func (svc *ListService) Board(ctx context.Context, accountID string, view domain.View, refresh bool) (*BoardResult, error) {
	list, err := svc.Proposes(ctx, accountID, view, refresh)
	if err != nil {
		return nil, err
	}
	return &BoardResult{
		View:      list.View,
		State:     list.State,
		Columns:   GroupBoard(svc.catalog, list.Page.Proposes),
		Controls:  list.Controls,
		FetchedAt: list.FetchedAt,
	}, nil
}

// Export renders every page of the view's current filters. It reads at most
// MaxExportPages pages and fails with ErrExportTooLarge beyond that.
func (svc *ListService) Export(ctx context.Context, accountID string, view domain.View, format string) (*ExportFile, error) {
	if err := svc.validator.ValidateProposeView(view); err != nil {
		return nil, err
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	sess, err := svc.sessionFor(ctx, accountID, view)
	if err != nil {
		return nil, err
	}
	state := sess.manager.State()

	var rows []domain.Propose
	for page := listquery.FirstPage; ; page++ {
		if page > svc.opts.MaxExportPages {
			return nil, fmt.Errorf("%w: more than %d pages", domain.ErrExportTooLarge, svc.opts.MaxExportPages)
		}
		p, err := svc.cachedList(ctx, state.MoveTo(page).QueryParams())
		if err != nil {
			return nil, fmt.Errorf("export page %d: %w", page, err)
		}
		rows = append(rows, p.Proposes...)
		if !p.Pagination.HasNextPage || p.IsEmpty() {
			break
		}
	}

	now := svc.now()
	report := export.Report{
		Title:       "Proposes",
		Filters:     svc.describe(state),
		Proposes:    rows,
		GeneratedAt: now,
	}

	var buf bytes.Buffer
	if err := svc.exporter.Write(&buf, f, report); err != nil {
		return nil, err
	}

	slog.Info("export rendered",
		"key", sess.key.String(),
		"format", f,
		"rows", len(rows),
	)

	return &ExportFile{
		Format:      f,
		Filename:    f.Filename(now),
		ContentType: f.ContentType(),
		Rows:        len(rows),
		Data:        buf.Bytes(),
	}, nil
}

// MoveToColumn sets the status of a propose to the one of a kanban column and
// drops every cached page, since all lists may contain it.
func (svc *ListService) MoveToColumn(ctx context.Context, proposeID int64, columnID string) (config.BoardColumn, error) {
	col, err := svc.validator.ValidateColumn(columnID)
	if err != nil {
		return config.BoardColumn{}, err
	}
	if proposeID <= 0 {
		return config.BoardColumn{}, fmt.Errorf("%w: id %d", domain.ErrProposeNotFound, proposeID)
	}

	if err := svc.source.UpdateProposeStatus(ctx, proposeID, col.Status); err != nil {
		return config.BoardColumn{}, fmt.Errorf("move propose %d to %s: %w", proposeID, col.ID, err)
	}

	svc.invalidateLists(ctx)

	slog.Info("propose moved",
		"propose_id", proposeID,
		"column", col.ID,
		"status", col.Status,
	)
	return col, nil
}

// invalidateLists drops the page cache and every session's newest result.
// Fetches still in flight are cancelled so they cannot bring the old pages back.
func (svc *ListService) invalidateLists(ctx context.Context) {
	svc.cacheMu.Lock()
	svc.cacheEpoch++
	err := svc.cache.DeletePrefix(ctx, proposesCachePrefix)
	svc.cacheMu.Unlock()
	if err != nil {
		slog.Warn("failed to invalidate page cache", "error", err)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, sess := range svc.sessions {
		sess.fetcher.Invalidate()
	}
}

// Propose returns a single propose. It is never cached so the kanban detail
// reflects moves made by other clients.
func (svc *ListService) Propose(ctx context.Context, id int64) (*domain.Propose, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrProposeNotFound, id)
	}
	p, err := svc.source.GetPropose(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get propose %d: %w", id, err)
	}
	return p, nil
}

// Suppliers lists the users that can be picked as assignee.
func (svc *ListService) Suppliers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if svc.cacheGet(ctx, suppliersCacheKey, &users) {
		return users, nil
	}

	users, err := svc.source.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	svc.cacheSet(ctx, suppliersCacheKey, users)
	return users, nil
}

type skipCacheKey struct{}

func withoutCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipCacheKey{}, true)
}

func cacheSkipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipCacheKey{}).(bool)
	return skip
}

// cachedList is the fetcher's list function: the page cache in front of the REST API.
func (svc *ListService) cachedList(ctx context.Context, params url.Values) (*domain.ProposePage, error) {
	key := proposesCachePrefix + params.Encode()

	var page domain.ProposePage
	if !cacheSkipped(ctx) && svc.cacheGet(ctx, key, &page) {
		return &page, nil
	}

	svc.cacheMu.RLock()
	epoch := svc.cacheEpoch
	svc.cacheMu.RUnlock()

	p, err := svc.source.ListProposes(ctx, params)
	if err != nil {
		return nil, err
	}

	svc.cacheMu.RLock()
	defer svc.cacheMu.RUnlock()
	if svc.cacheEpoch != epoch {
		slog.Debug("page changed while fetching, not caching", "key", key)
		return p, nil
	}
	svc.cacheSet(ctx, key, p)
	return p, nil
}

func (svc *ListService) cacheGet(ctx context.Context, key string, out any) bool {
	data, ok, err := svc.cache.Get(ctx, key)
	switch {
	case err != nil:
		svc.metrics.CacheLookup(metrics.CacheError)
		slog.Warn("cache lookup failed", "key", key, "error", err)
		return false
	case !ok:
		svc.metrics.CacheLookup(metrics.CacheMiss)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		svc.metrics.CacheLookup(metrics.CacheError)
		slog.Debug("discarding undecodable cache entry", "key", key, "error", err)
		return false
	}
	svc.metrics.CacheLookup(metrics.CacheHit)
	return true
}

func (svc *ListService) cacheSet(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		slog.Warn("failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := svc.cache.Set(ctx, key, data, svc.opts.CacheTTL); err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}

// describe lists the active filters of state in human-readable form.
func (svc *ListService) describe(state listquery.State) []string {
	var out []string
	if state.SearchTerm != "" {
		out = append(out, "Search: "+state.SearchTerm)
	}
	if len(state.ProposeStatus) > 0 {
		out = append(out, "Status: "+labels(state.ProposeStatus, svc.catalog.ProposeLabel))
	}
	if len(state.InspectionStatus) > 0 {
		out = append(out, "Inspection: "+labels(state.InspectionStatus, svc.catalog.InspectionLabel))
	}
	if state.AssigneeID != "" {
		out = append(out, "Assignee: "+state.AssigneeID)
	}
	if !state.ProposeDate.IsZero() {
		out = append(out, "Scheduled: "+describeRange(state.ProposeDate))
	}
	if !state.InspectionDate.IsZero() {
		out = append(out, "Delivery: "+describeRange(state.InspectionDate))
	}
	return out
}

func labels(codes []string, label func(string) string) string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = label(c)
	}
	return strings.Join(out, ", ")
}

func describeRange(r listquery.DateRange) string {
	from, to := "...", "..."
	if r.From != nil {
		from = r.From.UTC().Format("2006-01-02")
	}
	if r.To != nil {
		to = r.To.UTC().Format("2006-01-02")
	}
	return from + " to " + to
}

func sameQuery(a, b url.Values) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		if !slices.Equal(va, b[k]) {
			return false
		}
	}
	return true
}
