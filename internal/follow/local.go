package follow

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// localSource serves the follow graph from an in-memory list mirrored to a
// durable slot. Reads always serve memory; the slot is a write-behind mirror
// for restart durability. A toggle is committed only after both the memory
// update and the durable write succeed.
type localSource struct {
	mu   sync.Mutex
	slot Slot
	ids  []string
}

// NewLocalSource loads the persisted follow list once and returns the local
// source. A never-written slot starts empty.
func NewLocalSource(slot Slot) (Source, error) {
	s := &localSource{slot: slot}

	data, ok, err := slot.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &s.ids); err != nil {
			return nil, fmt.Errorf("corrupt follow slot: %w", err)
		}
	}

	return s, nil
}

func (l *localSource) Mode() Mode {
	return ModeLocal
}

func (l *localSource) FollowingIDs(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ids...), nil
}

func (l *localSource) Toggle(ctx context.Context, userID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]string, 0, len(l.ids)+1)
	following := true
	for _, id := range l.ids {
		if id == userID {
			following = false
			continue
		}
		next = append(next, id)
	}
	if following {
		next = append(next, userID)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return false, err
	}
	if err := l.slot.Save(data); err != nil {
		// Not committed: memory keeps the pre-toggle list
		return false, err
	}

	l.ids = next
	return following, nil
}
