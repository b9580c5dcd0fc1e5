package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-client/internal/alert"
	"notification-client/pkg/log"
)

func newReadFixture(t *testing.T) (*fakeRepo, alert.Store, alert.ReadSync) {
	t.Helper()
	repo := newFakeRepo()
	repo.pages[0] = alertRange(1, 10)
	store := NewStore(log.NewNop(), repo)
	rs := NewReadSync(log.NewNop(), repo, store)
	require.NoError(t, store.Initialize(context.Background()))
	return repo, store, rs
}

func TestReadSyncCloseAcknowledgesUnread(t *testing.T) {
	repo, store, rs := newReadFixture(t)
	ctx := context.Background()
	assert.Len(t, rs.Unread(), 10)

	store.RecordIncoming(ctx, newAlert(11))
	assert.Len(t, rs.Unread(), 11)

	require.NoError(t, rs.SetVisible(ctx, true))
	assert.Empty(t, repo.marked, "opening the feed does not acknowledge")

	require.NoError(t, rs.SetVisible(ctx, false))

	require.Len(t, repo.marked, 1)
	assert.Equal(t, append([]int64{11}, ids(1, 10)...), repo.marked[0])
	assert.Empty(t, rs.Unread())
	assert.Empty(t, store.Snapshot().UnreadIDs())
}

func TestReadSyncCloseWithoutUnread(t *testing.T) {
	repo, store, rs := newReadFixture(t)
	ctx := context.Background()
	store.ApplyReadState(ids(1, 10))

	require.NoError(t, rs.SetVisible(ctx, true))
	require.NoError(t, rs.SetVisible(ctx, false))
	assert.Empty(t, repo.marked)
}

func TestReadSyncOnlyOpenToClosedTriggers(t *testing.T) {
	repo, _, rs := newReadFixture(t)
	ctx := context.Background()

	require.NoError(t, rs.SetVisible(ctx, false))
	require.NoError(t, rs.SetVisible(ctx, false))
	assert.Empty(t, repo.marked)
}

func TestReadSyncFailureLeavesState(t *testing.T) {
	repo, store, rs := newReadFixture(t)
	ctx := context.Background()
	repo.markErr = errors.New("503")

	require.NoError(t, rs.SetVisible(ctx, true))
	err := rs.SetVisible(ctx, false)
	require.ErrorIs(t, err, alert.ErrReadFailed)

	assert.Len(t, rs.Unread(), 10)
	assert.Len(t, store.Snapshot().UnreadIDs(), 10)
}

func TestReadAlertsManual(t *testing.T) {
	repo, store, rs := newReadFixture(t)
	ctx := context.Background()

	require.NoError(t, rs.ReadAlerts(ctx, nil))
	assert.Empty(t, repo.marked)

	require.NoError(t, rs.ReadAlerts(ctx, []int64{1, 2}))
	assert.Equal(t, [][]int64{{1, 2}}, repo.marked)
	assert.Equal(t, ids(3, 10), rs.Unread())

	store.Reset()
	assert.Empty(t, rs.Unread())
}
