package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/campuspulse/engage-go/internal/domain/user"
	"github.com/campuspulse/engage-go/internal/forms/mock"
)

// --------------------- Setup ---------------------

func setupResolver(t *testing.T, cfg ResolverConfig) (*TeamResolver, *mock.MockUserSearcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	searcher := mock.NewMockUserSearcher(ctrl)
	resolver := NewTeamResolver(searcher, cfg)
	t.Cleanup(resolver.Close)
	return resolver, searcher
}

func member(id, first string) user.TeamMember {
	return user.TeamMember{ID: id, FirstName: first, LastName: "Test", Email: first + "@campus.edu"}
}

// --------------------- Selection ---------------------

func TestResolver_FiltersSelectedFromResults(t *testing.T) {
	resolver, searcher := setupResolver(t, ResolverConfig{})

	u1, u2, u3 := member("u1", "ana"), member("u2", "anais"), member("u3", "andre")
	assert.NoError(t, resolver.AddMember(u2))

	searcher.EXPECT().SearchUsers(gomock.Any(), "an").Return([]user.TeamMember{u1, u2, u3}, nil)

	results, err := resolver.Search(context.Background(), "an")
	assert.NoError(t, err)
	// u2 is already selected: the directory may return it but the
	// suggestions must not.
	assert.Equal(t, []user.TeamMember{u1, u3}, results)
}

func TestResolver_AddMemberRespectsCap(t *testing.T) {
	resolver, _ := setupResolver(t, ResolverConfig{MaxMembers: 2})

	assert.NoError(t, resolver.AddMember(member("u1", "a")))
	assert.NoError(t, resolver.AddMember(member("u2", "b")))
	assert.True(t, resolver.Full())

	err := resolver.AddMember(member("u3", "c"))
	assert.ErrorIs(t, err, ErrTeamFull)
	assert.Len(t, resolver.Members(), 2)
}

func TestResolver_AddMemberTwiceIsNoOp(t *testing.T) {
	resolver, _ := setupResolver(t, ResolverConfig{})

	u := member("u1", "a")
	assert.NoError(t, resolver.AddMember(u))
	assert.NoError(t, resolver.AddMember(u))
	assert.Len(t, resolver.Members(), 1)
}

func TestResolver_RemoveMemberFreesSlot(t *testing.T) {
	resolver, _ := setupResolver(t, ResolverConfig{MaxMembers: 1})

	assert.NoError(t, resolver.AddMember(member("u1", "a")))
	assert.True(t, resolver.Full())

	resolver.RemoveMember("u1")
	assert.False(t, resolver.Full())
	assert.NoError(t, resolver.AddMember(member("u2", "b")))
}

// --------------------- Query handling ---------------------

func TestResolver_ShortQueryClearsResults(t *testing.T) {
	resolver, searcher := setupResolver(t, ResolverConfig{Debounce: time.Millisecond})

	done := make(chan SearchSnapshot, 1)
	resolver.OnUpdate(func(s SearchSnapshot) { done <- s })

	searcher.EXPECT().SearchUsers(gomock.Any(), "ana").Return([]user.TeamMember{member("u1", "ana")}, nil)
	resolver.SetQuery("ana")
	<-done
	assert.Len(t, resolver.Results(), 1)

	// A single character suppresses the dropdown and clears suggestions.
	resolver.SetQuery("a")
	snap := resolver.Snapshot()
	assert.Equal(t, SearchIdle, snap.State)
	assert.Empty(t, snap.Results)
}

func TestResolver_BlockingSearchRejectsShortQuery(t *testing.T) {
	resolver, _ := setupResolver(t, ResolverConfig{})

	_, err := resolver.Search(context.Background(), "a")
	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestResolver_DebounceCollapsesKeystrokes(t *testing.T) {
	resolver, searcher := setupResolver(t, ResolverConfig{Debounce: 40 * time.Millisecond})

	done := make(chan SearchSnapshot, 1)
	resolver.OnUpdate(func(s SearchSnapshot) { done <- s })

	// Only the final query may reach the searcher.
	searcher.EXPECT().SearchUsers(gomock.Any(), "carol").
		Return([]user.TeamMember{member("u1", "carol")}, nil)

	resolver.SetQuery("ca")
	resolver.SetQuery("car")
	resolver.SetQuery("carol")

	select {
	case snap := <-done:
		assert.Equal(t, SearchDone, snap.State)
		assert.Equal(t, "carol", snap.Query)
		assert.Len(t, snap.Results, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never settled")
	}
}

func TestResolver_StaleResponseDiscarded(t *testing.T) {
	resolver, searcher := setupResolver(t, ResolverConfig{Debounce: time.Millisecond})

	firstDispatched := make(chan struct{})
	releaseFirst := make(chan struct{})
	searcher.EXPECT().SearchUsers(gomock.Any(), "aa").
		DoAndReturn(func(ctx context.Context, query string) ([]user.TeamMember, error) {
			close(firstDispatched)
			<-releaseFirst
			return []user.TeamMember{member("stale", "old")}, nil
		})
	searcher.EXPECT().SearchUsers(gomock.Any(), "ab").
		Return([]user.TeamMember{member("fresh", "new")}, nil)

	done := make(chan SearchSnapshot, 2)
	resolver.OnUpdate(func(s SearchSnapshot) { done <- s })

	resolver.SetQuery("aa")
	<-firstDispatched
	resolver.SetQuery("ab")

	snap := <-done
	assert.Equal(t, "ab", snap.Query)

	// The slow response for the superseded query arrives late and must be
	// dropped, not overwrite the fresher results.
	close(releaseFirst)
	time.Sleep(50 * time.Millisecond)

	final := resolver.Snapshot()
	assert.Equal(t, SearchDone, final.State)
	assert.Len(t, final.Results, 1)
	assert.Equal(t, "fresh", final.Results[0].ID)
}

// --------------------- Failure handling ---------------------

func TestResolver_FailureDistinctFromEmpty(t *testing.T) {
	resolver, searcher := setupResolver(t, ResolverConfig{})

	searcher.EXPECT().SearchUsers(gomock.Any(), "down").Return(nil, errors.New("directory unavailable"))
	_, err := resolver.Search(context.Background(), "down")
	assert.Error(t, err)

	snap := resolver.Snapshot()
	assert.Equal(t, SearchFailed, snap.State)
	assert.Error(t, snap.Err)
	assert.Empty(t, snap.Results)

	searcher.EXPECT().SearchUsers(gomock.Any(), "nobody").Return([]user.TeamMember{}, nil)
	results, err := resolver.Search(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, results)

	snap = resolver.Snapshot()
	assert.Equal(t, SearchDone, snap.State)
	assert.NoError(t, snap.Err)
}

func TestResolver_CloseSuppressesPendingSearch(t *testing.T) {
	// No EXPECT on the searcher: a dispatched search after Close would fail
	// the test as an unexpected call.
	resolver, _ := setupResolver(t, ResolverConfig{Debounce: 30 * time.Millisecond})

	resolver.SetQuery("never")
	resolver.Close()
	time.Sleep(80 * time.Millisecond)
}
