package sync

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/cache"
	"github.com/forkfeed/forkfeed/internal/follow"
	"github.com/forkfeed/forkfeed/internal/store"
	"github.com/forkfeed/forkfeed/pkg/logging"
)

// Kind identifies one entity collection
type Kind string

const (
	KindRecipes      Kind = "recipes"
	KindUsers        Kind = "users"
	KindFavorites    Kind = "favorites"
	KindRecents      Kind = "recently_viewed"
	KindReviews      Kind = "reviews"
	KindShoppingList Kind = "shopping_list"
	KindMealPlan     Kind = "meal_plan"
	KindShares       Kind = "shared_recipes"
	KindFollows      Kind = "follows"
)

// AllKinds lists every collection kind
var AllKinds = []Kind{
	KindRecipes, KindUsers, KindFavorites, KindRecents, KindReviews,
	KindShoppingList, KindMealPlan, KindShares, KindFollows,
}

// scopedKinds are parameterized by the current user id
var scopedKinds = map[Kind]bool{
	KindFavorites:    true,
	KindRecents:      true,
	KindShoppingList: true,
	KindMealPlan:     true,
	KindShares:       true,
	KindFollows:      true,
}

// Key identifies one cached fetch result
type Key struct {
	Kind  Kind
	Scope string
}

type entryState int

const (
	stateStale entryState = iota
	stateFresh
	stateError
)

type entry struct {
	state     entryState
	err       error
	fetchedAt time.Time
}

// Session identifies the authenticated user for this engine instance. A nil
// session means no actor: reads of scoped collections come back empty and
// writes fail with ErrNotAuthenticated.
type Session struct {
	UserID string
}

// Engine is the client-resident sync engine: it owns the query layer
// ((kind, scope) keyed fetching with invalidation) and the mutation layer
// (named write operations). The UI reads derived views over the entity
// store; the engine is the only thing that writes to it.
type Engine struct {
	backend Backend // nil when the backend is not configured
	store   *store.Store
	follows follow.Source
	mirror  *cache.Mirror
	session *Session
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	entries map[Key]*entry
}

// NewEngine wires the sync engine. backend may be nil (not configured);
// mirror may be nil (disabled); session may be nil (not authenticated).
// follows must already be selected by the capability probe.
func NewEngine(backend Backend, st *store.Store, follows follow.Source, mirror *cache.Mirror, session *Session) *Engine {
	return &Engine{
		backend: backend,
		store:   st,
		follows: follows,
		mirror:  mirror,
		session: session,
		logger:  logging.WithComponent("sync-engine"),
		now:     func() time.Time { return time.Now().UTC() },
		entries: map[Key]*entry{},
	}
}

// Session returns the engine's session, or nil when not authenticated
func (e *Engine) Session() *Session {
	return e.session
}

// Store returns the entity store the derived views read from
func (e *Engine) Store() *store.Store {
	return e.store
}

// FollowMode reports which storage backs the follow graph this session
func (e *Engine) FollowMode() follow.Mode {
	return e.follows.Mode()
}

func (e *Engine) requireSession() (*Session, error) {
	if e.session == nil || e.session.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	return e.session, nil
}

func (e *Engine) keyFor(kind Kind) Key {
	key := Key{Kind: kind}
	if scopedKinds[kind] && e.session != nil {
		key.Scope = e.session.UserID
	}
	return key
}
