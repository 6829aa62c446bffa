package registry

import (
	"sync"

	"github.com/xpekfdls/yacht/core/internal/model"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

type entry struct {
	mu    sync.Mutex
	match *model.Match
}

// Registry is the in-memory home of every live match, keyed by room
// code. The map lock serializes create/destroy; each entry carries its
// own lock so operations on different rooms never contend.
type Registry struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]*entry
}

func New() *Registry {
	return &Registry{rooms: make(map[model.RoomCode]*entry)}
}

// Put registers a freshly created match under its code. The caller
// retries with a new code on ErrCodeConflict.
func (r *Registry) Put(code model.RoomCode, m *model.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.rooms[code]; taken {
		return usecase_match.ErrCodeConflict
	}
	r.rooms[code] = &entry{match: m}
	return nil
}

// Acquire locks the room and hands out its match together with the
// release function. Every read-validate-mutate sequence must run
// between Acquire and release.
func (r *Registry) Acquire(code model.RoomCode) (*model.Match, func(), error) {
	r.mu.RLock()
	e, ok := r.rooms[code]
	r.mu.RUnlock()
	if !ok {
		return nil, nil, usecase_match.ErrRoomNotFound
	}

	e.mu.Lock()
	return e.match, e.mu.Unlock, nil
}

// Remove drops a room from the registry. Callers invoke it while still
// holding the room lock, so a goroutine blocked in Acquire wakes up on
// a match that is already empty and fails validation instead of
// resurrecting the room.
func (r *Registry) Remove(code model.RoomCode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rooms, code)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms)
}
