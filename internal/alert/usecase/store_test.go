package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-client/internal/alert"
	"notification-client/internal/model"
	"notification-client/pkg/log"
)

// fakeRepo serves canned pages. When gate is set, List blocks on it after
// signalling entered.
type fakeRepo struct {
	mu      sync.Mutex
	pages   map[int][]model.Alert
	listErr error
	listed  []int

	markErr error
	marked  [][]int64

	entered chan struct{}
	gate    chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{pages: make(map[int][]model.Alert)}
}

func (r *fakeRepo) List(ctx context.Context, opts alert.ListOptions) ([]model.Alert, error) {
	r.mu.Lock()
	r.listed = append(r.listed, opts.Page)
	gate, entered := r.gate, r.entered
	r.mu.Unlock()

	if gate != nil {
		entered <- struct{}{}
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return cloneAlerts(r.pages[opts.Page]), nil
}

func (r *fakeRepo) MarkRead(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.markErr != nil {
		return r.markErr
	}
	r.marked = append(r.marked, append([]int64(nil), ids...))
	return nil
}

func (r *fakeRepo) block() {
	r.mu.Lock()
	r.entered = make(chan struct{}, 1)
	r.gate = make(chan struct{})
	r.mu.Unlock()
}

func (r *fakeRepo) listCalls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.listed...)
}

func alertRange(from, to int64) []model.Alert {
	var out []model.Alert
	for id := from; id <= to; id++ {
		out = append(out, newAlert(id))
	}
	return out
}

func newAlert(id int64) model.Alert {
	return model.Alert{ID: id, Payload: []byte(fmt.Sprintf(`{"id":%d}`, id))}
}

func ids(from, to int64) []int64 {
	var out []int64
	for id := from; id <= to; id++ {
		out = append(out, id)
	}
	return out
}

func assertNoDuplicates(t *testing.T, snap alert.Snapshot) {
	t.Helper()
	seen := make(map[int64]bool)
	for _, a := range snap.Alerts {
		assert.False(t, seen[a.ID], "duplicate id %d", a.ID)
		seen[a.ID] = true
	}
}

func TestStoreInitialize(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)

	require.NoError(t, store.Initialize(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, ids(1, 10), snap.IDs())
	assert.True(t, snap.HasMore)
	assert.Equal(t, 0, snap.Page)
	assert.Len(t, snap.UnreadIDs(), 10)
}

func TestStoreInitializeShortPage(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 4)
	store := NewStore(log.NewNop(), repo)

	require.NoError(t, store.Initialize(context.Background()))
	assert.False(t, store.Snapshot().HasMore)

	require.NoError(t, store.LoadMore(context.Background()))
	assert.Equal(t, []int{0}, repo.listCalls())
}

func TestStoreInitializeFailureKeepsState(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	require.NoError(t, store.Initialize(context.Background()))

	repo.listErr = errors.New("network down")
	err := store.Initialize(context.Background())
	require.ErrorIs(t, err, alert.ErrFetchFailed)
	assert.Equal(t, ids(1, 10), store.Snapshot().IDs())
}

func TestStoreInitializeFirstFailureLeavesEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("bad gateway")
	store := NewStore(log.NewNop(), repo)

	require.Error(t, store.Initialize(context.Background()))
	snap := store.Snapshot()
	assert.Empty(t, snap.Alerts)
	assert.True(t, snap.HasMore)
}

func TestStoreLoadMore(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	repo.pages[1] = alertRange(11, 20)
	repo.pages[2] = alertRange(21, 23)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.LoadMore(ctx))

	snap := store.Snapshot()
	assert.Equal(t, ids(1, 20), snap.IDs())
	assert.Equal(t, 1, snap.Page)
	assert.True(t, snap.HasMore)

	require.NoError(t, store.LoadMore(ctx))
	snap = store.Snapshot()
	assert.Equal(t, ids(1, 23), snap.IDs())
	assert.Equal(t, 2, snap.Page)
	assert.False(t, snap.HasMore)

	// Exhausted: no further network call and no change.
	require.NoError(t, store.LoadMore(ctx))
	assert.Equal(t, []int{0, 1, 2}, repo.listCalls())
	assert.Equal(t, snap, store.Snapshot())
}

func TestStoreLoadMoreFailureKeepsCursor(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	repo.pages[1] = alertRange(11, 20)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	repo.listErr = errors.New("timeout")
	require.ErrorIs(t, store.LoadMore(ctx), alert.ErrFetchFailed)
	assert.Equal(t, 0, store.Snapshot().Page)

	repo.listErr = nil
	require.NoError(t, store.LoadMore(ctx))
	assert.Equal(t, 1, store.Snapshot().Page)
	assert.Equal(t, []int{0, 1, 1}, repo.listCalls())
}

func TestStoreRecordIncoming(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	assert.True(t, store.RecordIncoming(ctx, newAlert(11)))

	snap := store.Snapshot()
	assert.Equal(t, append([]int64{11}, ids(1, 10)...), snap.IDs())
	assert.Equal(t, 0, snap.Page)
	assert.True(t, snap.HasMore)
}

func TestStoreDuplicateKeepsExisting(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))
	store.ApplyReadState([]int64{3})

	assert.False(t, store.RecordIncoming(ctx, newAlert(3)))

	snap := store.Snapshot()
	assert.Equal(t, ids(1, 10), snap.IDs())
	a, ok := snap.Find(3)
	require.True(t, ok)
	assert.True(t, a.IsRead)
}

func TestStoreNoDuplicatesAcrossPushAndLoadMore(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	// The server page shifted: page 1 overlaps ids already held.
	repo.pages[1] = append(alertRange(9, 10), alertRange(31, 38)...)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	store.RecordIncoming(ctx, newAlert(31))
	require.NoError(t, store.LoadMore(ctx))

	snap := store.Snapshot()
	assertNoDuplicates(t, snap)
	assert.Equal(t, []int64{31, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 32, 33, 34, 35, 36, 37, 38}, snap.IDs())
	// hasMore follows the returned count, not the number inserted.
	assert.True(t, snap.HasMore)
}

func TestStorePushDuringLoadMore(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	repo.pages[1] = alertRange(11, 20)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	repo.block()
	done := make(chan error, 1)
	go func() { done <- store.LoadMore(ctx) }()
	<-repo.entered

	store.RecordIncoming(ctx, newAlert(21))
	// A second LoadMore while one is in flight is a no-op.
	require.NoError(t, store.LoadMore(ctx))

	close(repo.gate)
	require.NoError(t, <-done)

	snap := store.Snapshot()
	want := append([]int64{21}, ids(1, 20)...)
	assert.Equal(t, want, snap.IDs())
	assert.Equal(t, []int{0, 1}, repo.listCalls())
}

func TestStorePushDuringInitialize(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()

	repo.block()
	done := make(chan error, 1)
	go func() { done <- store.Initialize(ctx) }()
	<-repo.entered

	store.RecordIncoming(ctx, newAlert(42))
	store.RecordIncoming(ctx, newAlert(5))

	close(repo.gate)
	require.NoError(t, <-done)

	snap := store.Snapshot()
	assertNoDuplicates(t, snap)
	assert.Equal(t, append([]int64{42}, ids(1, 10)...), snap.IDs())
}

func TestStoreResetDiscardsInFlight(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	repo.pages[1] = alertRange(11, 20)
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	repo.block()
	done := make(chan error, 1)
	go func() { done <- store.LoadMore(ctx) }()
	<-repo.entered

	store.Reset()
	close(repo.gate)
	require.ErrorIs(t, <-done, alert.ErrStaleResult)

	snap := store.Snapshot()
	assert.Empty(t, snap.Alerts)
	assert.True(t, snap.HasMore)
	assert.Equal(t, 0, snap.Page)
}

func TestStoreApplyReadStateIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	require.NoError(t, store.Initialize(context.Background()))

	store.ApplyReadState([]int64{2, 99})
	once := store.Snapshot()
	store.ApplyReadState([]int64{2, 99})
	assert.Equal(t, once, store.Snapshot())

	a, _ := once.Find(2)
	assert.True(t, a.IsRead)
	assert.Len(t, once.UnreadIDs(), 9)
}

func TestStoreApplyProcessedActionFirstWriteWins(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	require.NoError(t, store.Initialize(context.Background()))

	assert.True(t, store.ApplyProcessedAction(4, "rejected"))
	assert.False(t, store.ApplyProcessedAction(4, "accepted"))
	assert.False(t, store.ApplyProcessedAction(99, "accepted"))
	assert.False(t, store.ApplyProcessedAction(5, model.ProcessedNone))

	a, _ := store.Snapshot().Find(4)
	assert.Equal(t, model.ProcessedAction("rejected"), a.ProcessedAction)
}

func TestStoreObserversRunInOrder(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(log.NewNop(), repo)
	ctx := context.Background()

	var calls []string
	store.Subscribe(func(alert.Snapshot) { calls = append(calls, "first") })
	unsubscribe := store.Subscribe(func(alert.Snapshot) { calls = append(calls, "second") })
	store.Subscribe(func(s alert.Snapshot) { calls = append(calls, fmt.Sprintf("third:%d", len(s.Alerts))) })

	store.RecordIncoming(ctx, newAlert(1))
	assert.Equal(t, []string{"first", "second", "third:1"}, calls)

	calls = nil
	unsubscribe()
	store.RecordIncoming(ctx, newAlert(1))
	assert.Empty(t, calls, "duplicate insert is not a change")

	store.RecordIncoming(ctx, newAlert(2))
	assert.Equal(t, []string{"first", "third:2"}, calls)
}
