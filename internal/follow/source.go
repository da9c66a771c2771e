package follow

import (
	"context"

	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/pkg/logging"
)

// Mode identifies which storage backs the follow graph for this session
type Mode string

const (
	// ModeRemote serves the follow graph from the backend follows table
	ModeRemote Mode = "remote"
	// ModeLocal serves the follow graph from the on-device persisted list
	ModeLocal Mode = "local"
)

// Source is the single consultation point for the follow relation. Exactly
// one implementation is selected per session; call sites never re-check
// configuration.
type Source interface {
	Mode() Mode
	FollowingIDs(ctx context.Context) ([]string, error)
	// Toggle adds or removes a followed user and reports the new membership
	Toggle(ctx context.Context, userID string) (bool, error)
}

// RemoteBackend is the backend surface the remote source needs
type RemoteBackend interface {
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	InsertFollow(ctx context.Context, followerID, followingID string) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
}

// Select probes capability once and returns the follow source for the
// session. Remote requires a configured backend, an authenticated user, and
// one successful follow-graph read; anything else falls back to the local
// mirror. There is no local-to-remote promotion afterwards.
func Select(ctx context.Context, configured bool, backend RemoteBackend, sessionUserID string, slot Slot) (Source, error) {
	logger := logging.WithComponent("follow")

	if configured && backend != nil && sessionUserID != "" {
		if _, err := backend.FollowingIDs(ctx, sessionUserID); err == nil {
			logger.Info("Follow graph using remote backend")
			return &remoteSource{backend: backend, userID: sessionUserID}, nil
		} else {
			logger.Warn("Remote follow-graph read failed, falling back to local mirror", zap.Error(err))
		}
	} else {
		logger.Info("Backend not available for follow graph, using local mirror")
	}

	return NewLocalSource(slot)
}
