package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/engage-go/internal/domain/poll"
)

func nextUpdate(t *testing.T, sub *LiveResults) poll.Results {
	t.Helper()
	select {
	case r, ok := <-sub.Updates():
		require.True(t, ok, "update channel closed early: %v", sub.Err())
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a tally update")
		return poll.Results{}
	}
}

func TestWatchPollResults_StreamsTallies(t *testing.T) {
	c, _ := setupTestEnvironment(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	polls, err := c.ListPolls(ctx)
	require.NoError(t, err)
	p := polls[0]

	sub, err := c.WatchPollResults(ctx, p.ID)
	require.NoError(t, err)
	defer sub.Close()

	// The server pushes the current tally on connect.
	initial := nextUpdate(t, sub)
	assert.Equal(t, p.ID, initial.PollID)
	assert.Equal(t, int64(0), initial.TotalVotes)

	_, err = c.Vote(ctx, p.ID, []string{p.Options[0].ID})
	require.NoError(t, err)

	after := nextUpdate(t, sub)
	assert.Equal(t, int64(1), after.TotalVotes)

	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Err())
}

func TestWatchPollResults_CloseUnblocksAbandonedStream(t *testing.T) {
	c, _ := setupTestEnvironment(t)
	ctx := context.Background()

	polls, err := c.ListPolls(ctx)
	require.NoError(t, err)
	p := polls[0]

	sub, err := c.WatchPollResults(ctx, p.ID)
	require.NoError(t, err)

	// Stop draining Updates and push well past its buffer, so the reader
	// is parked on a full channel when Close arrives.
	for i := 0; i < 20; i++ {
		_, err = c.Vote(ctx, p.ID, []string{p.Options[0].ID})
		require.NoError(t, err)
	}
	require.NoError(t, sub.Close())

	// The channel only closes when the read goroutine has exited; a reader
	// still stuck on the send would keep it open forever.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("update channel still open after Close, read goroutine leaked")
		}
	}
}

func TestWatchPollResults_UnknownPoll(t *testing.T) {
	c, _ := setupTestEnvironment(t)

	_, err := c.WatchPollResults(context.Background(), "missing")
	require.Error(t, err)
}

func TestWatchPollResults_ContextCancelEndsStream(t *testing.T) {
	c, _ := setupTestEnvironment(t)

	polls, err := c.ListPolls(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := c.WatchPollResults(ctx, polls[0].ID)
	require.NoError(t, err)

	nextUpdate(t, sub)
	cancel()

	select {
	case _, ok := <-sub.Updates():
		if ok {
			// A broadcast could race the cancel; the channel still has to
			// close right after.
			_, ok = <-sub.Updates()
			assert.False(t, ok)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("update channel did not close after cancel")
	}
}
