package forms

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/campuspulse/engage-go/internal/domain/user"
	"golang.org/x/time/rate"
)

var (
	ErrTeamFull      = errors.New("team is already at maximum size")
	ErrQueryTooShort = errors.New("query must be at least 2 characters")
)

// UserSearcher finds directory users matching a free-text query.
type UserSearcher interface {
	SearchUsers(ctx context.Context, query string) ([]user.TeamMember, error)
}

// SearchState distinguishes "search failed" from "search found nothing", so
// callers can render the two differently instead of showing a misleading
// empty result list.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchPending
	SearchDone
	SearchFailed
)

// SearchSnapshot is the resolver's current suggestion state as one value.
type SearchSnapshot struct {
	Query   string
	State   SearchState
	Results []user.TeamMember
	Err     error
}

// ResolverConfig bounds a TeamResolver. Zero fields fall back to the
// defaults the platform front-ends use.
type ResolverConfig struct {
	Debounce       time.Duration
	MinQueryLength int
	MaxMembers     int
	SearchRate     rate.Limit
	SearchBurst    int
}

func (c ResolverConfig) withDefaults() ResolverConfig {
	if c.Debounce <= 0 {
		c.Debounce = 300 * time.Millisecond
	}
	if c.MinQueryLength <= 0 {
		c.MinQueryLength = 2
	}
	if c.MaxMembers <= 0 {
		c.MaxMembers = 5
	}
	if c.SearchRate <= 0 {
		c.SearchRate = 5
	}
	if c.SearchBurst <= 0 {
		c.SearchBurst = 10
	}
	return c
}

// TeamResolver turns free-text queries into a bounded, deduplicated team
// selection for one team question. Searches are debounced, rate limited and
// keyed by the query that produced them: a response for a superseded query is
// discarded, so out-of-order completions cannot overwrite fresher results.
// Close releases the debounce timer and cancels any in-flight search.
type TeamResolver struct {
	searcher UserSearcher
	cfg      ResolverConfig
	limiter  *rate.Limiter

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    *time.Timer
	query    string
	state    SearchState
	results  []user.TeamMember
	lastErr  error
	selected []user.TeamMember
	onUpdate func(SearchSnapshot)
}

func NewTeamResolver(searcher UserSearcher, cfg ResolverConfig) *TeamResolver {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &TeamResolver{
		searcher: searcher,
		cfg:      cfg,
		limiter:  rate.NewLimiter(cfg.SearchRate, cfg.SearchBurst),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// OnUpdate registers a callback invoked whenever an asynchronous search
// settles. Intended for render loops; may be left unset.
func (r *TeamResolver) OnUpdate(fn func(SearchSnapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = fn
}

// SetQuery records a keystroke. Queries shorter than the minimum clear the
// suggestions and suppress any pending search; otherwise the debounce timer
// restarts and the search fires once input goes quiet.
func (r *TeamResolver) SetQuery(query string) {
	query = strings.TrimSpace(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.query = query

	if len(query) < r.cfg.MinQueryLength {
		r.state = SearchIdle
		r.results = nil
		r.lastErr = nil
		return
	}

	r.state = SearchPending
	q := query
	r.timer = time.AfterFunc(r.cfg.Debounce, func() {
		r.runSearch(q)
	})
}

// Search performs an immediate, blocking search with the same dedup and
// bookkeeping as the debounced path. Line-oriented callers (the CLI) use this
// instead of SetQuery.
func (r *TeamResolver) Search(ctx context.Context, query string) ([]user.TeamMember, error) {
	query = strings.TrimSpace(query)
	if len(query) < r.cfg.MinQueryLength {
		return nil, ErrQueryTooShort
	}

	r.mu.Lock()
	r.query = query
	r.state = SearchPending
	r.mu.Unlock()

	results, err := r.doSearch(ctx, query)
	r.settle(query, results, err)
	if err != nil {
		return nil, err
	}
	return r.Results(), nil
}

func (r *TeamResolver) runSearch(query string) {
	results, err := r.doSearch(r.ctx, query)
	if errors.Is(err, context.Canceled) {
		return
	}
	r.settle(query, results, err)
}

func (r *TeamResolver) doSearch(ctx context.Context, query string) ([]user.TeamMember, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.searcher.SearchUsers(ctx, query)
}

// settle records a completed search, dropping it when the query has been
// superseded since dispatch.
func (r *TeamResolver) settle(query string, results []user.TeamMember, err error) {
	r.mu.Lock()
	if query != r.query {
		r.mu.Unlock()
		return
	}

	if err != nil {
		r.state = SearchFailed
		r.results = nil
		r.lastErr = err
	} else {
		r.state = SearchDone
		r.results = r.filterSelectedLocked(results)
		r.lastErr = nil
	}
	fn := r.onUpdate
	snap := r.snapshotLocked()
	r.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// filterSelectedLocked drops already-chosen members from search results even
// when the directory returns them.
func (r *TeamResolver) filterSelectedLocked(results []user.TeamMember) []user.TeamMember {
	filtered := make([]user.TeamMember, 0, len(results))
	for _, m := range results {
		if !r.isSelectedLocked(m.ID) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func (r *TeamResolver) isSelectedLocked(id string) bool {
	for _, m := range r.selected {
		if m.ID == id {
			return true
		}
	}
	return false
}

// AddMember moves a suggestion into the selection. Adding an already-selected
// member is a no-op; adding past the maximum team size fails.
func (r *TeamResolver) AddMember(m user.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isSelectedLocked(m.ID) {
		return nil
	}
	if len(r.selected) >= r.cfg.MaxMembers {
		return ErrTeamFull
	}
	r.selected = append(r.selected, m)
	r.results = r.filterSelectedLocked(r.results)
	return nil
}

func (r *TeamResolver) RemoveMember(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.selected {
		if m.ID == id {
			r.selected = append(r.selected[:i], r.selected[i+1:]...)
			return
		}
	}
}

// Members returns a copy of the current selection.
func (r *TeamResolver) Members() []user.TeamMember {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]user.TeamMember(nil), r.selected...)
}

// Full reports whether the selection reached the maximum team size; callers
// disable the search input while it holds.
func (r *TeamResolver) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.selected) >= r.cfg.MaxMembers
}

// Results returns a copy of the current suggestions.
func (r *TeamResolver) Results() []user.TeamMember {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]user.TeamMember(nil), r.results...)
}

func (r *TeamResolver) Snapshot() SearchSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *TeamResolver) snapshotLocked() SearchSnapshot {
	return SearchSnapshot{
		Query:   r.query,
		State:   r.state,
		Results: append([]user.TeamMember(nil), r.results...),
		Err:     r.lastErr,
	}
}

// Close stops the debounce timer and cancels any in-flight search. Safe to
// call on every exit path; subsequent searches fail with context.Canceled.
func (r *TeamResolver) Close() {
	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.mu.Unlock()
	r.cancel()
}
