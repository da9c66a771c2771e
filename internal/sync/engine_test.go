package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forkfeed/forkfeed/internal/follow"
	"github.com/forkfeed/forkfeed/internal/store"
)

// memSlot is an in-memory durable slot for tests
type memSlot struct {
	data []byte
	ok   bool
}

func (s *memSlot) Load() ([]byte, bool, error) { return s.data, s.ok, nil }

func (s *memSlot) Save(d []byte) error {
	s.data = append([]byte(nil), d...)
	s.ok = true
	return nil
}

func newTestEngine(t *testing.T, fb *fakeBackend, session *Session) *Engine {
	t.Helper()
	follows, err := follow.NewLocalSource(&memSlot{})
	if err != nil {
		t.Fatalf("NewLocalSource: %v", err)
	}
	e := NewEngine(fb, store.New(), follows, nil, session)
	// Deterministic, strictly increasing clock
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	e.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return e
}

func TestFetchServesFreshFromStore(t *testing.T) {
	fb := newFakeBackend()
	e := newTestEngine(t, fb, &Session{UserID: "me"})
	ctx := context.Background()

	if err := e.Fetch(ctx, KindRecipes); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := e.Fetch(ctx, KindRecipes); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if got := fb.fetchCalls[KindRecipes]; got != 1 {
		t.Errorf("backend fetches = %d, want 1 (fresh entry served from store)", got)
	}

	e.Invalidate(ctx, KindRecipes)
	if err := e.Fetch(ctx, KindRecipes); err != nil {
		t.Fatalf("Fetch after invalidate: %v", err)
	}
	if got := fb.fetchCalls[KindRecipes]; got != 2 {
		t.Errorf("backend fetches after invalidate = %d, want 2", got)
	}
}

func TestFetchFailureIsRecordedAndRetriable(t *testing.T) {
	fb := newFakeBackend()
	fb.failFetch[KindRecipes] = errors.New("connection refused")
	e := newTestEngine(t, fb, &Session{UserID: "me"})
	ctx := context.Background()

	err := e.Fetch(ctx, KindRecipes)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("Fetch error = %v, want ErrBackendUnavailable", err)
	}
	if e.FetchError(KindRecipes) == nil {
		t.Error("FetchError should report the recorded error state")
	}

	// An errored entry is served from its recorded state; re-fetching needs
	// an explicit invalidation.
	if err := e.Fetch(ctx, KindRecipes); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("second Fetch error = %v, want ErrBackendUnavailable", err)
	}
	if got := fb.fetchCalls[KindRecipes]; got != 1 {
		t.Errorf("backend fetches while errored = %d, want 1", got)
	}

	// Retry by re-invalidating once the backend recovers
	delete(fb.failFetch, KindRecipes)
	e.Invalidate(ctx, KindRecipes)
	if err := e.Fetch(ctx, KindRecipes); err != nil {
		t.Fatalf("Fetch after recovery: %v", err)
	}
	if e.FetchError(KindRecipes) != nil {
		t.Error("FetchError should clear after a successful fetch")
	}
}

func TestFetchScopedKindsEmptyWithoutSession(t *testing.T) {
	fb := newFakeBackend()
	e := newTestEngine(t, fb, nil)
	ctx := context.Background()

	if err := e.Fetch(ctx, KindFavorites); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := fb.fetchCalls[KindFavorites]; got != 0 {
		t.Errorf("backend fetches = %d, want 0 (no actor, no round trip)", got)
	}
	if favs := e.Store().FavoriteSet(); len(favs) != 0 {
		t.Errorf("favorites without session = %v, want empty", favs)
	}
}

func TestFetchFollowsGoesThroughSource(t *testing.T) {
	fb := newFakeBackend()
	// An edge in the backend table must NOT show up: the selected source is
	// the local mirror, and mode is decided once, not per call site.
	fb.follows = append(fb.follows, followEdge("me", "u9"))
	e := newTestEngine(t, fb, &Session{UserID: "me"})
	ctx := context.Background()

	if err := e.ToggleFollow(ctx, "u1"); err != nil {
		t.Fatalf("ToggleFollow: %v", err)
	}
	if err := e.Fetch(ctx, KindFollows); err != nil {
		t.Fatalf("Fetch follows: %v", err)
	}
	if !e.Store().IsFollowing("u1") {
		t.Error("u1 missing from follow set")
	}
	if e.Store().IsFollowing("u9") {
		t.Error("backend edge leaked through the local source")
	}
	if e.FollowMode() != follow.ModeLocal {
		t.Errorf("mode = %s, want local", e.FollowMode())
	}
}
