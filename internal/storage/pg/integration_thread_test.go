package pg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonb-dev/anonb/internal/domain"
	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

func TestCreateAndGetThread(t *testing.T) {
	created, err := storage.CreateThread("it-create", "first post", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.Equal(t, "it-create", created.Board)
	assert.Equal(t, "first post", created.Text)
	assert.Equal(t, "pw1", created.DeletePassword)
	assert.False(t, created.Reported)
	assert.Empty(t, created.Replies)
	assert.True(t, created.BumpedOn.Equal(created.CreatedOn))

	fetched, err := storage.GetThread(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, fetched.Id)
	assert.Equal(t, created.Text, fetched.Text)
	assert.NotNil(t, fetched.Replies)
	assert.Empty(t, fetched.Replies)
}

func TestGetThread_NotFound(t *testing.T) {
	_, err := storage.GetThread(999999999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err, 0))
}

func TestListThreads_WindowAndOrder(t *testing.T) {
	board := "it-window"
	var ids []domain.ThreadId
	for i := 0; i < 15; i++ {
		thread, err := storage.CreateThread(board, "post", "pw")
		require.NoError(t, err)
		ids = append(ids, thread.Id)
	}

	listed, err := storage.ListThreads(board, 10)
	require.NoError(t, err)
	require.Len(t, listed, 10)

	// the 10 most recent of the 15 must be listed; bumped_on ties are
	// broken by id, so on equal timestamps insertion order still wins
	newest := make(map[domain.ThreadId]bool, 10)
	for _, id := range ids[5:] {
		newest[id] = true
	}
	for _, thread := range listed {
		assert.True(t, newest[thread.Id], "thread %d is not among the 10 most recent", thread.Id)
	}

	// total order: bumped_on descending, id descending on ties
	for i := 0; i < len(listed)-1; i++ {
		a, b := listed[i], listed[i+1]
		if a.BumpedOn.Equal(b.BumpedOn) {
			assert.Greater(t, a.Id, b.Id)
		} else {
			assert.True(t, a.BumpedOn.After(b.BumpedOn))
		}
	}
}

func TestListThreads_UnknownBoard(t *testing.T) {
	listed, err := storage.ListThreads("it-no-such-board", 10)
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestListThreads_BumpReorders(t *testing.T) {
	board := "it-bump"
	first, err := storage.CreateThread(board, "first", "pw")
	require.NoError(t, err)
	second, err := storage.CreateThread(board, "second", "pw")
	require.NoError(t, err)

	// replying to the older thread moves it to the top
	_, err = storage.CreateReply(first.Id, "bump", "rpw")
	require.NoError(t, err)

	listed, err := storage.ListThreads(board, 10)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.Id, listed[0].Id)
	assert.Equal(t, second.Id, listed[1].Id)
}

func TestReportThread(t *testing.T) {
	thread, err := storage.CreateThread("it-report", "post", "pw")
	require.NoError(t, err)

	require.NoError(t, storage.ReportThread(thread.Id))

	fetched, err := storage.GetThread(thread.Id)
	require.NoError(t, err)
	assert.True(t, fetched.Reported)

	// reporting again stays true; there is no un-report path
	require.NoError(t, storage.ReportThread(thread.Id))
	fetched, err = storage.GetThread(thread.Id)
	require.NoError(t, err)
	assert.True(t, fetched.Reported)
}

func TestReportThread_NotFound(t *testing.T) {
	err := storage.ReportThread(999999999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err, 0))
}

func TestDeleteThread_Cascades(t *testing.T) {
	thread, err := storage.CreateThread("it-delete", "post", "pw")
	require.NoError(t, err)
	_, err = storage.CreateReply(thread.Id, "child", "rpw")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteThread(thread.Id))

	_, err = storage.GetThread(thread.Id)
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err, 0))

	// replies went with the thread: reporting one now reports a missing thread
	err = storage.ReportReply(thread.Id, 1)
	require.Error(t, err)
	assert.Equal(t, "thread_id not found", err.Error())
}
