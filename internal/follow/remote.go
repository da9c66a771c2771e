package follow

import (
	"context"
)

// remoteSource serves the follow graph from the backend follows table.
// Toggle reads current membership and inserts or deletes the edge, the same
// read-then-write shape as favorite toggling.
type remoteSource struct {
	backend RemoteBackend
	userID  string
}

func (r *remoteSource) Mode() Mode {
	return ModeRemote
}

func (r *remoteSource) FollowingIDs(ctx context.Context) ([]string, error) {
	return r.backend.FollowingIDs(ctx, r.userID)
}

func (r *remoteSource) Toggle(ctx context.Context, userID string) (bool, error) {
	ids, err := r.backend.FollowingIDs(ctx, r.userID)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == userID {
			if err := r.backend.DeleteFollow(ctx, r.userID, userID); err != nil {
				return true, err
			}
			return false, nil
		}
	}

	if err := r.backend.InsertFollow(ctx, r.userID, userID); err != nil {
		return false, err
	}
	return true, nil
}
