package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/proposedesk/internal/cache"
	"github.com/mtlprog/proposedesk/internal/config"
	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/listquery"
	"github.com/mtlprog/proposedesk/internal/service"
)

const (
	accountA = "00000000-0000-0000-0000-000000000011"
	accountB = "00000000-0000-0000-0000-000000000012"
)

type statusUpdate struct {
	id     int64
	status string
}

// fakeSource serves totalPages pages of pageSize proposes each.
type fakeSource struct {
	mu            sync.Mutex
	totalPages    int
	pageSize      int
	err           error
	calls         []url.Values
	suppliers     []domain.User
	supplierCalls int
	updates       []statusUpdate
	// gate, when set, holds each list answer after it was read until closed.
	gate    chan struct{}
	entered chan struct{}
}

func newFakeSource(totalPages int) *fakeSource {
	return &fakeSource{
		totalPages: totalPages,
		pageSize:   2,
		suppliers:  []domain.User{{ID: 42, Username: "joao"}},
	}
}

func (f *fakeSource) ListProposes(_ context.Context, params url.Values) (*domain.ProposePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}

	page, _ := strconv.Atoi(params.Get(listquery.KeyPage))
	out := &domain.ProposePage{
		Proposes: []domain.Propose{},
		Pagination: domain.Pagination{
			CurrentPage:     page,
			PageSize:        f.pageSize,
			TotalProposes:   f.totalPages * f.pageSize,
			TotalPages:      f.totalPages,
			HasNextPage:     page < f.totalPages,
			HasPreviousPage: page > 1,
		},
	}
	if page <= f.totalPages {
		statuses := []domain.ProposeStatus{domain.ProposeStatusInProgress, domain.ProposeStatusDelivered}
		for i := range f.pageSize {
			p := domain.Propose{
				ID:     int64((page-1)*f.pageSize + i + 1),
				Title:  "propose",
				Status: statuses[i%len(statuses)],
			}
			for _, u := range f.updates {
				if u.id == p.ID {
					p.Status = domain.ProposeStatus(u.status)
				}
			}
			out.Proposes = append(out.Proposes, p)
		}
	}

	if gate := f.gate; gate != nil {
		f.mu.Unlock()
		f.entered <- struct{}{}
		<-gate
		f.mu.Lock()
	}
	return out, nil
}

func (f *fakeSource) GetPropose(_ context.Context, id int64) (*domain.Propose, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if id > int64(f.totalPages*f.pageSize) {
		return nil, domain.ErrProposeNotFound
	}
	return &domain.Propose{ID: id, Title: "propose", Status: domain.ProposeStatusInProgress}, nil
}

func (f *fakeSource) ListSuppliers(context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.supplierCalls++
	return f.suppliers, f.err
}

// ListUsers serves a directory of totalPages pages; a search term keeps only
// the first user of each page.
func (f *fakeSource) ListUsers(_ context.Context, params url.Values) (*domain.UserPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}

	page, _ := strconv.Atoi(params.Get(listquery.KeyPage))
	out := &domain.UserPage{Pagination: domain.Pagination{
		CurrentPage:     page,
		PageSize:        f.pageSize,
		TotalPages:      f.totalPages,
		HasNextPage:     page < f.totalPages,
		HasPreviousPage: page > 1,
	}}
	if page <= f.totalPages {
		for i := range f.pageSize {
			out.Users = append(out.Users, domain.User{
				ID:       int64((page-1)*f.pageSize + i + 1),
				Username: "user" + strconv.Itoa((page-1)*f.pageSize+i+1),
			})
		}
	}
	if params.Get(listquery.KeySearchTerm) != "" && len(out.Users) > 1 {
		out.Users = out.Users[:1]
	}
	return out, nil
}

func (f *fakeSource) UpdateProposeStatus(_ context.Context, id int64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, statusUpdate{id: id, status: status})
	return nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSource) lastCall() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func mustCatalog(t *testing.T) *config.Catalog {
	t.Helper()
	c, err := config.LoadCatalog("")
	require.NoError(t, err)
	return c
}

func newService(t *testing.T, store listquery.Store, source *fakeSource, opts service.Options) *service.ListService {
	t.Helper()
	svc := service.NewListService(store, source, cache.NewMemory(), mustCatalog(t), nil, opts)
	t.Cleanup(func() { svc.Close(context.Background()) })
	return svc
}

func persisted(t *testing.T, store listquery.Store, account string, view domain.View) listquery.State {
	t.Helper()
	data, err := store.Load(context.Background(), listquery.Key{Owner: account, View: string(view)})
	require.NoError(t, err)
	state, err := listquery.Decode(data)
	require.NoError(t, err)
	return state
}

type failingStore struct{}

func (failingStore) Load(context.Context, listquery.Key) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Save(context.Context, listquery.Key, []byte) error {
	return errors.New("connection refused")
}

func TestListService_StateDefaultsAndUnknownView(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(3), service.Options{})
	ctx := context.Background()

	res, err := svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.Page)
	assert.Equal(t, "1", res.Query.Get(listquery.KeyPage))

	_, err = svc.State(ctx, accountA, domain.View("calendar"))
	assert.ErrorIs(t, err, domain.ErrUnknownView)
}

func TestListService_StateSurvivesRestart(t *testing.T) {
	store := listquery.NewMemoryStore()
	ctx := context.Background()

	svc := newService(t, store, newFakeSource(3), service.Options{})
	_, err := svc.NextPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	_, err = svc.SetFilters(ctx, accountA, domain.ViewBoard, listquery.FilterFields{ProposeStatus: &[]string{"F"}})
	require.NoError(t, err)

	restarted := newService(t, store, newFakeSource(3), service.Options{})
	table, err := restarted.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	board, err := restarted.State(ctx, accountA, domain.ViewBoard)
	require.NoError(t, err)

	assert.Equal(t, 2, table.State.Page)
	assert.Empty(t, table.State.ProposeStatus, "views keep independent state")
	assert.Equal(t, []string{"F"}, board.State.ProposeStatus)
}

func TestListService_PagingScenario(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(3), service.Options{})
	ctx := context.Background()

	_, err := svc.MoveToPage(ctx, accountA, domain.ViewProposes, 2)
	require.NoError(t, err)
	res, err := svc.NextPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 3, res.State.Page)

	res, err = svc.MoveToPage(ctx, accountA, domain.ViewProposes, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.Page)

	res, err = svc.PreviousPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.Page)
}

func TestListService_SetFiltersValidates(t *testing.T) {
	store := listquery.NewMemoryStore()
	svc := newService(t, store, newFakeSource(3), service.Options{})
	ctx := context.Background()
	_, err := svc.MoveToPage(ctx, accountA, domain.ViewProposes, 3)
	require.NoError(t, err)

	_, err = svc.SetFilters(ctx, accountA, domain.ViewProposes, listquery.FilterFields{ProposeStatus: &[]string{"X"}})
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)

	res, err := svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 3, res.State.Page, "rejected update leaves the state alone")

	assignee := "42"
	res, err = svc.SetFilters(ctx, accountA, domain.ViewProposes, listquery.FilterFields{AssigneeID: &assignee})
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.Page)
	assert.Equal(t, "42", persisted(t, store, accountA, domain.ViewProposes).AssigneeID)
}

func TestListService_ClearFiltersKeepsPageAndSearch(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(5), service.Options{})
	ctx := context.Background()

	_, err := svc.SetFilters(ctx, accountA, domain.ViewProposes, listquery.FilterFields{ProposeStatus: &[]string{"F"}})
	require.NoError(t, err)
	_, err = svc.Search(ctx, accountA, domain.ViewProposes, "foo", true)
	require.NoError(t, err)
	_, err = svc.MoveToPage(ctx, accountA, domain.ViewProposes, 4)
	require.NoError(t, err)

	res, err := svc.ClearFilters(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)

	assert.Equal(t, 4, res.State.Page)
	assert.Equal(t, "foo", res.State.SearchTerm)
	assert.False(t, res.State.HasFilters())
}

func TestListService_SearchIsDebounced(t *testing.T) {
	store := listquery.NewMemoryStore()
	svc := newService(t, store, newFakeSource(3), service.Options{SearchDebounce: 30 * time.Millisecond})
	ctx := context.Background()
	_, err := svc.MoveToPage(ctx, accountA, domain.ViewProposes, 2)
	require.NoError(t, err)

	for _, term := range []string{"c", "ca", "cas"} {
		res, err := svc.Search(ctx, accountA, domain.ViewProposes, term, false)
		require.NoError(t, err)
		assert.True(t, res.SearchPending)
	}
	assert.Empty(t, persisted(t, store, accountA, domain.ViewProposes).SearchTerm)

	assert.Eventually(t, func() bool {
		return persisted(t, store, accountA, domain.ViewProposes).SearchTerm == "cas"
	}, time.Second, 5*time.Millisecond)

	res, err := svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.Page)
	assert.False(t, res.SearchPending)
}

func TestListService_SearchCommitAndClear(t *testing.T) {
	store := listquery.NewMemoryStore()
	svc := newService(t, store, newFakeSource(3), service.Options{SearchDebounce: time.Hour})
	ctx := context.Background()

	res, err := svc.Search(ctx, accountA, domain.ViewProposes, "laudo", true)
	require.NoError(t, err)
	assert.False(t, res.SearchPending)
	assert.Equal(t, "laudo", persisted(t, store, accountA, domain.ViewProposes).SearchTerm)

	_, err = svc.Search(ctx, accountA, domain.ViewProposes, "lau", false)
	require.NoError(t, err)
	res, err = svc.Search(ctx, accountA, domain.ViewProposes, "", false)
	require.NoError(t, err)

	assert.False(t, res.SearchPending, "deleting the term commits right away")
	assert.Empty(t, persisted(t, store, accountA, domain.ViewProposes).SearchTerm)
}

func TestListService_ProposesReusesLatestResult(t *testing.T) {
	source := newFakeSource(3)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{CacheTTL: time.Minute})
	ctx := context.Background()

	res, err := svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)
	assert.Len(t, res.Page.Proposes, 2)
	assert.Equal(t, []int{1, 2, 3}, res.Controls.Links)
	assert.False(t, res.Controls.PreviousEnabled)
	assert.True(t, res.Controls.NextEnabled)

	_, err = svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)
	assert.Equal(t, 1, source.callCount())

	_, err = svc.NextPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	res, err = svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)
	assert.Equal(t, 2, source.callCount())
	assert.Equal(t, "2", source.lastCall().Get(listquery.KeyPage))
	assert.Equal(t, 2, res.Page.Pagination.CurrentPage)

	_, err = svc.Proposes(ctx, accountA, domain.ViewProposes, true)
	require.NoError(t, err)
	assert.Equal(t, 3, source.callCount(), "refresh bypasses the cache")
}

func TestListService_CacheIsSharedAcrossAccounts(t *testing.T) {
	source := newFakeSource(3)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{CacheTTL: time.Minute})
	ctx := context.Background()

	_, err := svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)
	_, err = svc.Proposes(ctx, accountB, domain.ViewProposes, false)
	require.NoError(t, err)

	assert.Equal(t, 1, source.callCount())
}

func TestListService_OutboundQuery(t *testing.T) {
	source := newFakeSource(3)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{})
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.SetFilters(ctx, accountA, domain.ViewProposes, listquery.FilterFields{
		ProposeStatus: &[]string{"R", "A"},
		ProposeDate:   &listquery.DateRange{From: &from},
	})
	require.NoError(t, err)
	_, err = svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)

	q := source.lastCall()
	assert.Equal(t, "1", q.Get(listquery.KeyPage))
	assert.Equal(t, `["A","R"]`, q.Get(listquery.KeyProposeStatus))
	assert.Equal(t, "2024-03-01T00:00:00Z", q.Get(listquery.KeyProposeDateFrom))
	assert.NotContains(t, q, listquery.KeySearchTerm)
	assert.NotContains(t, q, listquery.KeyInspectionStatus)
}

func TestListService_UpstreamFailureLeavesStateAlone(t *testing.T) {
	source := newFakeSource(3)
	source.err = domain.ErrUpstream
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{})
	ctx := context.Background()
	_, err := svc.MoveToPage(ctx, accountA, domain.ViewProposes, 2)
	require.NoError(t, err)

	_, err = svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	res, err := svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.State.Page)
}

func TestListService_PageBeyondEndIsEmpty(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(3), service.Options{})
	ctx := context.Background()
	_, err := svc.MoveToPage(ctx, accountA, domain.ViewProposes, 99)
	require.NoError(t, err)

	res, err := svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)

	assert.True(t, res.Page.IsEmpty())
	assert.Equal(t, []int{1, 2, 3}, res.Controls.Links)
	assert.False(t, res.Controls.NextEnabled)
}

func TestListService_PersistFailureKeepsTransition(t *testing.T) {
	svc := newService(t, failingStore{}, newFakeSource(3), service.Options{})
	ctx := context.Background()

	res, err := svc.NextPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.State.Page)

	res, err = svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.State.Page)
}

func TestListService_Board(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(1), service.Options{})

	res, err := svc.Board(context.Background(), accountA, domain.ViewBoard, false)
	require.NoError(t, err)

	require.Len(t, res.Columns, 6)
	assert.Equal(t, "progress", res.Columns[0].ID)
	assert.Len(t, res.Columns[0].Proposes, 1)
	assert.Equal(t, "completed", res.Columns[5].ID)
	assert.Len(t, res.Columns[5].Proposes, 1)
}

func TestListService_ExportAllPages(t *testing.T) {
	source := newFakeSource(3)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{})
	ctx := context.Background()
	_, err := svc.MoveToPage(ctx, accountA, domain.ViewProposes, 2)
	require.NoError(t, err)

	file, err := svc.Export(ctx, accountA, domain.ViewProposes, "csv")
	require.NoError(t, err)

	assert.Equal(t, 6, file.Rows)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)

	res, err := svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.State.Page, "export does not move the view")
}

func TestListService_ExportLimits(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(5), service.Options{MaxExportPages: 2})
	ctx := context.Background()

	_, err := svc.Export(ctx, accountA, domain.ViewProposes, "pdf")
	assert.ErrorIs(t, err, domain.ErrExportTooLarge)

	_, err = svc.Export(ctx, accountA, domain.ViewProposes, "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestListService_MoveToColumn(t *testing.T) {
	source := newFakeSource(1)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{CacheTTL: time.Minute})
	ctx := context.Background()

	_, err := svc.Proposes(ctx, accountA, domain.ViewBoard, false)
	require.NoError(t, err)

	_, err = svc.MoveToColumn(ctx, 1, "archive")
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)

	col, err := svc.MoveToColumn(ctx, 1, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "R", col.Status)
	assert.Equal(t, []statusUpdate{{id: 1, status: "R"}}, source.updates)

	_, err = svc.Proposes(ctx, accountA, domain.ViewBoard, false)
	require.NoError(t, err)
	assert.Equal(t, 2, source.callCount(), "moving a card invalidates cached pages")
}

func TestListService_Propose(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(1), service.Options{})
	ctx := context.Background()

	p, err := svc.Propose(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)

	_, err = svc.Propose(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProposeNotFound)

	_, err = svc.Propose(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrProposeNotFound)
}

func TestListService_Suppliers(t *testing.T) {
	source := newFakeSource(1)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{CacheTTL: time.Minute})
	ctx := context.Background()

	for range 3 {
		users, err := svc.Suppliers(ctx)
		require.NoError(t, err)
		assert.Equal(t, "joao", users[0].Username)
	}
	assert.Equal(t, 1, source.supplierCalls)
}

func TestListService_EvictIdleCommitsPendingSearch(t *testing.T) {
	store := listquery.NewMemoryStore()
	svc := newService(t, store, newFakeSource(1), service.Options{
		SearchDebounce: time.Hour,
		SessionIdle:    time.Millisecond,
	})
	ctx := context.Background()

	_, err := svc.Search(ctx, accountA, domain.ViewProposes, "pending", false)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.SessionCount())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, svc.EvictIdle(ctx))
	assert.Zero(t, svc.SessionCount())
	assert.Equal(t, "pending", persisted(t, store, accountA, domain.ViewProposes).SearchTerm)
}

func TestListService_Prefetch(t *testing.T) {
	source := newFakeSource(3)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{Prefetch: true, CacheTTL: time.Minute})
	ctx := context.Background()

	_, err := svc.NextPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return source.callCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	res, err := svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page.Pagination.CurrentPage)
	assert.Equal(t, 1, source.callCount())
}

func TestListService_PageMoveDropsTypedSearch(t *testing.T) {
	store := listquery.NewMemoryStore()
	source := newFakeSource(3)
	svc := newService(t, store, source, service.Options{SearchDebounce: 30 * time.Millisecond})
	ctx := context.Background()

	res, err := svc.Search(ctx, accountA, domain.ViewProposes, "foo", false)
	require.NoError(t, err)
	assert.True(t, res.SearchPending)
	assert.Equal(t, "foo", res.PendingSearch)
	assert.Empty(t, res.State.SearchTerm)

	_, err = svc.Proposes(ctx, accountA, domain.ViewProposes, false)
	require.NoError(t, err)
	assert.False(t, source.lastCall().Has(listquery.KeySearchTerm), "a typed term is not sent before it is committed")

	res, err = svc.NextPage(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.State.Page)
	assert.False(t, res.SearchPending)
	assert.Empty(t, persisted(t, store, accountA, domain.ViewProposes).SearchTerm)

	time.Sleep(80 * time.Millisecond)

	res, err = svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.State.Page, "the quiet period does not undo the page move")
	assert.Empty(t, res.State.SearchTerm)
	assert.Equal(t, 2, persisted(t, store, accountA, domain.ViewProposes).Page)
}

func TestListService_MoveDuringFetchIsNotCached(t *testing.T) {
	source := newFakeSource(1)
	source.gate = make(chan struct{})
	source.entered = make(chan struct{}, 1)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{CacheTTL: time.Minute})
	ctx := context.Background()

	done := make(chan *service.ListResult, 1)
	go func() {
		res, err := svc.Proposes(ctx, accountA, domain.ViewBoard, false)
		assert.NoError(t, err)
		done <- res
	}()
	<-source.entered

	_, err := svc.MoveToColumn(ctx, 1, "completed")
	require.NoError(t, err)

	source.mu.Lock()
	close(source.gate)
	source.gate = nil
	source.mu.Unlock()

	before := <-done
	require.NotNil(t, before)
	assert.Equal(t, domain.ProposeStatusInProgress, before.Page.Proposes[0].Status)

	for _, account := range []string{accountA, accountB} {
		res, err := svc.Proposes(ctx, account, domain.ViewBoard, false)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposeStatusDelivered, res.Page.Proposes[0].Status, "pre-move page survived invalidation")
	}
}

func TestListService_ResetView(t *testing.T) {
	store := listquery.NewMemoryStore()
	svc := newService(t, store, newFakeSource(3), service.Options{SearchDebounce: 30 * time.Millisecond})
	ctx := context.Background()

	_, err := svc.SetFilters(ctx, accountA, domain.ViewProposes, listquery.FilterFields{ProposeStatus: &[]string{"F"}})
	require.NoError(t, err)
	_, err = svc.MoveToPage(ctx, accountA, domain.ViewProposes, 3)
	require.NoError(t, err)
	_, err = svc.Search(ctx, accountA, domain.ViewProposes, "typed", false)
	require.NoError(t, err)

	res, err := svc.ResetView(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.True(t, listquery.Default().Equal(res.State))
	assert.False(t, res.SearchPending)

	_, err = store.Load(ctx, listquery.Key{Owner: accountA, View: string(domain.ViewProposes)})
	assert.ErrorIs(t, err, listquery.ErrNotFound)

	time.Sleep(80 * time.Millisecond)
	res, err = svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Empty(t, res.State.SearchTerm)

	_, err = svc.ResetView(ctx, accountA, domain.View("calendar"))
	assert.ErrorIs(t, err, domain.ErrUnknownView)
}

func TestListService_UsersView(t *testing.T) {
	source := newFakeSource(3)
	svc := newService(t, listquery.NewMemoryStore(), source, service.Options{CacheTTL: time.Minute})
	ctx := context.Background()

	res, err := svc.Users(ctx, accountA, false)
	require.NoError(t, err)
	assert.Len(t, res.Page.Users, 2)
	assert.Equal(t, url.Values{"page": {"1"}, "searchTerm": {""}}, source.lastCall())
	assert.Equal(t, []int{1, 2, 3}, res.Controls.Links)

	_, err = svc.NextPage(ctx, accountA, domain.ViewUsers)
	require.NoError(t, err)
	_, err = svc.Search(ctx, accountA, domain.ViewUsers, " ana ", true)
	require.NoError(t, err)

	res, err = svc.Users(ctx, accountA, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.Page, "a committed search starts over")
	assert.Equal(t, url.Values{"page": {"1"}, "searchTerm": {"ana"}}, source.lastCall())
	assert.Len(t, res.Page.Users, 1)

	calls := source.callCount()
	_, err = svc.Users(ctx, accountA, false)
	require.NoError(t, err)
	assert.Equal(t, calls, source.callCount(), "the newest result is reused")

	table, err := svc.State(ctx, accountA, domain.ViewProposes)
	require.NoError(t, err)
	assert.Empty(t, table.State.SearchTerm, "the directory keeps its own state")
}

func TestListService_UsersViewRejectsProposeOperations(t *testing.T) {
	svc := newService(t, listquery.NewMemoryStore(), newFakeSource(1), service.Options{})
	ctx := context.Background()

	_, err := svc.SetFilters(ctx, accountA, domain.ViewUsers, listquery.FilterFields{AssigneeID: ptr("1")})
	assert.ErrorIs(t, err, domain.ErrNoFilters)

	_, err = svc.Proposes(ctx, accountA, domain.ViewUsers, false)
	assert.ErrorIs(t, err, domain.ErrUnknownView)

	_, err = svc.Export(ctx, accountA, domain.ViewUsers, "csv")
	assert.ErrorIs(t, err, domain.ErrUnknownView)
}
