package listquery_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/proposedesk/internal/listquery"
)

var testKey = listquery.Key{Owner: "00000000-0000-0000-0000-000000000011", View: "proposes"}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (s failingStore) Load(context.Context, listquery.Key) ([]byte, error) { return nil, s.err }
func (s failingStore) Save(context.Context, listquery.Key, []byte) error { return s.err }

type failingDeleter struct {
	failingStore
}

func (s failingDeleter) Delete(context.Context, listquery.Key) error { return s.err }

// saveOnlyStore is a Store without Delete.
type saveOnlyStore struct {
	mem *listquery.MemoryStore
}

func (s saveOnlyStore) Load(ctx context.Context, key listquery.Key) ([]byte, error) {
	return s.mem.Load(ctx, key)
}

func (s saveOnlyStore) Save(ctx context.Context, key listquery.Key, data []byte) error {
	return s.mem.Save(ctx, key, data)
}

func newLoadedManager(t *testing.T, store listquery.Store, opts ...listquery.Option) *listquery.Manager {
	t.Helper()
	m := listquery.NewManager(store, testKey, opts...)
	m.Load(context.Background())
	return m
}

func TestManager_LoadMissingReturnsDefault(t *testing.T) {
	m := listquery.NewManager(listquery.NewMemoryStore(), testKey)

	state := m.Load(context.Background())

	assert.True(t, listquery.Default().Equal(state))
}

func TestManager_LoadMalformedReturnsDefault(t *testing.T) {
	store := listquery.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), testKey, []byte("{not json")))
	m := listquery.NewManager(store, testKey)

	var state listquery.State
	require.NotPanics(t, func() { state = m.Load(context.Background()) })

	assert.True(t, listquery.Default().Equal(state))
}

func TestManager_LoadStoreFailureReturnsDefault(t *testing.T) {
	m := listquery.NewManager(failingStore{err: errors.New("connection refused")}, testKey)

	assert.True(t, listquery.Default().Equal(m.Load(context.Background())))
}

func TestManager_LoadDropsUnknownCodes(t *testing.T) {
	store := listquery.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), testKey, []byte(`{"page":2,"proposeStatus":["A","X"]}`)))
	m := listquery.NewManager(store, testKey, listquery.WithKnownCodes(listquery.KnownCodes{Propose: []string{"A", "R", "C"}}))

	state := m.Load(context.Background())

	assert.Equal(t, 2, state.Page)
	assert.Equal(t, []string{"A"}, state.ProposeStatus)
}

func TestManager_TransitionsPersist(t *testing.T) {
	ctx := context.Background()
	store := listquery.NewMemoryStore()
	m := newLoadedManager(t, store)

	_, err := m.NextPage(ctx)
	require.NoError(t, err)
	_, err = m.NextPage(ctx)
	require.NoError(t, err)

	reloaded := listquery.NewManager(store, testKey).Load(ctx)
	assert.Equal(t, 3, reloaded.Page)
}

func TestManager_AssigneeScenario(t *testing.T) {
	ctx := context.Background()
	m := newLoadedManager(t, listquery.NewMemoryStore())
	_, err := m.SetFilters(ctx, listquery.FilterFields{ProposeStatus: ptr([]string{"P"})})
	require.NoError(t, err)
	_, err = m.MoveToPage(ctx, 3)
	require.NoError(t, err)

	state, err := m.SetFilters(ctx, listquery.FilterFields{AssigneeID: ptr("42")})
	require.NoError(t, err)

	assert.Equal(t, 1, state.Page)
	assert.Equal(t, []string{"P"}, state.ProposeStatus)
	assert.Equal(t, "42", state.AssigneeID)
}

func TestManager_ClearFiltersScenario(t *testing.T) {
	ctx := context.Background()
	store := listquery.NewMemoryStore()
	seed, err := listquery.Encode(listquery.State{Page: 4, SearchTerm: "foo", ProposeStatus: []string{"F"}})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testKey, seed))
	m := newLoadedManager(t, store)

	state, err := m.ClearFilters(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, state.Page)
	assert.Equal(t, "foo", state.SearchTerm)
	assert.Empty(t, state.ProposeStatus)

	persisted := listquery.NewManager(store, testKey).Load(ctx)
	assert.True(t, state.Equal(persisted))
}

func TestManager_PreviousPageOnFirstPage(t *testing.T) {
	m := newLoadedManager(t, listquery.NewMemoryStore())

	state, err := m.PreviousPage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, state.Page)
	assert.Equal(t, "1", m.QueryParams().Get(listquery.KeyPage))
}

func TestManager_SetSearchTermIsLocal(t *testing.T) {
	ctx := context.Background()
	store := listquery.NewMemoryStore()
	m := newLoadedManager(t, store)
	_, err := m.MoveToPage(ctx, 3)
	require.NoError(t, err)
	var signals int
	m.OnChange(func(_, _ listquery.State) { signals++ })

	m.SetSearchTerm("cas")
	m.SetSearchTerm("casa")

	pending, ok := m.PendingSearch()
	assert.True(t, ok)
	assert.Equal(t, "casa", pending)
	assert.Empty(t, m.State().SearchTerm, "the draft stays out of the committed state")
	assert.Equal(t, 3, m.State().Page)
	assert.False(t, m.QueryParams().Has(listquery.KeySearchTerm))
	assert.Zero(t, signals)
	assert.Empty(t, listquery.NewManager(store, testKey).Load(ctx).SearchTerm)

	state, err := m.CommitSearch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "casa", state.SearchTerm)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, 1, signals)
	assert.Equal(t, "casa", listquery.NewManager(store, testKey).Load(ctx).SearchTerm)
	_, ok = m.PendingSearch()
	assert.False(t, ok)
}

func TestManager_TransitionDiscardsDraftSearch(t *testing.T) {
	ctx := context.Background()
	store := listquery.NewMemoryStore()
	m := newLoadedManager(t, store)

	m.SetSearchTerm("foo")
	state, err := m.NextPage(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, state.Page)
	assert.Empty(t, state.SearchTerm)
	_, ok := m.PendingSearch()
	assert.False(t, ok)

	persisted := listquery.NewManager(store, testKey).Load(ctx)
	assert.Equal(t, 2, persisted.Page)
	assert.Empty(t, persisted.SearchTerm)

	state, err = m.CommitSearch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Page, "nothing left to commit")
}

func TestManager_CommitSearchWithoutDraftDoesNotSignal(t *testing.T) {
	m := newLoadedManager(t, listquery.NewMemoryStore())
	var signals int
	m.OnChange(func(_, _ listquery.State) { signals++ })

	_, err := m.CommitSearch(context.Background())
	require.NoError(t, err)

	assert.Zero(t, signals)
}

func TestManager_DiscardSearch(t *testing.T) {
	m := newLoadedManager(t, listquery.NewMemoryStore())
	m.SetSearchTerm("foo")

	assert.True(t, m.DiscardSearch())
	assert.False(t, m.DiscardSearch())
	_, ok := m.PendingSearch()
	assert.False(t, ok)
}

func TestManager_ResetDeletesPersistedState(t *testing.T) {
	ctx := context.Background()
	store := listquery.NewMemoryStore()
	m := newLoadedManager(t, store)
	_, err := m.SetFilters(ctx, listquery.FilterFields{ProposeStatus: ptr([]string{"P"})})
	require.NoError(t, err)
	_, err = m.MoveToPage(ctx, 4)
	require.NoError(t, err)
	m.SetSearchTerm("foo")
	var signals int
	m.OnChange(func(_, _ listquery.State) { signals++ })

	state, err := m.Reset(ctx)
	require.NoError(t, err)

	assert.True(t, listquery.Default().Equal(state))
	assert.Equal(t, 1, signals)
	_, ok := m.PendingSearch()
	assert.False(t, ok)
	_, err = store.Load(ctx, testKey)
	assert.ErrorIs(t, err, listquery.ErrNotFound)
}

func TestManager_ResetWithoutDeleterSavesDefault(t *testing.T) {
	ctx := context.Background()
	store := saveOnlyStore{mem: listquery.NewMemoryStore()}
	m := newLoadedManager(t, store)
	_, err := m.MoveToPage(ctx, 4)
	require.NoError(t, err)

	_, err = m.Reset(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, listquery.NewManager(store, testKey).Load(ctx).Page)
}

func TestManager_ResetDeleteFailure(t *testing.T) {
	m := newLoadedManager(t, failingDeleter{failingStore{err: errors.New("read only")}})

	state, err := m.Reset(context.Background())

	assert.ErrorIs(t, err, listquery.ErrPersist)
	assert.True(t, listquery.Default().Equal(state))
}

func TestManager_OnChangeReceivesPreviousAndNext(t *testing.T) {
	m := newLoadedManager(t, listquery.NewMemoryStore())
	var prev, next listquery.State
	m.OnChange(func(p, n listquery.State) { prev, next = p, n })

	_, err := m.MoveToPage(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, prev.Page)
	assert.Equal(t, 5, next.Page)
}

func TestManager_EmptyFilterUpdateDoesNotSignal(t *testing.T) {
	m := newLoadedManager(t, listquery.NewMemoryStore())
	var signals int
	m.OnChange(func(_, _ listquery.State) { signals++ })

	_, err := m.SetFilters(context.Background(), listquery.FilterFields{})
	require.NoError(t, err)

	assert.Zero(t, signals)
}

func TestManager_PersistFailureKeepsTransition(t *testing.T) {
	m := newLoadedManager(t, failingStore{err: errors.New("disk full")})

	state, err := m.NextPage(context.Background())

	assert.ErrorIs(t, err, listquery.ErrPersist)
	assert.Equal(t, 2, state.Page)
	assert.Equal(t, 2, m.State().Page)
}

func TestManager_StateIsACopy(t *testing.T) {
	m := newLoadedManager(t, listquery.NewMemoryStore())
	_, err := m.SetFilters(context.Background(), listquery.FilterFields{ProposeStatus: ptr([]string{"A"})})
	require.NoError(t, err)

	state := m.State()
	state.ProposeStatus[0] = "Z"

	assert.Equal(t, []string{"A"}, m.State().ProposeStatus)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	var runs atomic.Int32
	d := listquery.NewDebouncer(30*time.Millisecond, func() { runs.Add(1) })

	for range 5 {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_Cancel(t *testing.T) {
	var runs atomic.Int32
	d := listquery.NewDebouncer(20*time.Millisecond, func() { runs.Add(1) })

	d.Trigger()
	assert.True(t, d.Pending())
	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
