package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/xpekfdls/yacht/core/internal/model"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

func newMatch(code model.RoomCode) *model.Match {
	return model.NewMatch(code, model.Participant{ID: uuid.New(), Name: "creator"})
}

func TestPutConflict(t *testing.T) {
	r := New()

	if err := r.Put("AAAAAA", newMatch("AAAAAA")); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	err := r.Put("AAAAAA", newMatch("AAAAAA"))
	if !errors.Is(err, usecase_match.ErrCodeConflict) {
		t.Fatalf("expected code conflict, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", r.Len())
	}
}

func TestAcquireUnknownRoom(t *testing.T) {
	r := New()

	_, _, err := r.Acquire("NOPE42")
	if !errors.Is(err, usecase_match.ErrRoomNotFound) {
		t.Fatalf("expected room not found, got %v", err)
	}
}

func TestAcquireSerializesSameRoom(t *testing.T) {
	r := New()
	if err := r.Put("RACE01", newMatch("RACE01")); err != nil {
		t.Fatal(err)
	}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			m, release, err := r.Acquire("RACE01")
			if err != nil {
				t.Error(err)
				return
			}
			// Round is only touched under the room lock; racing
			// increments would lose updates and fail the final count.
			m.Round++
			release()
		}()
	}
	wg.Wait()

	m, release, err := r.Acquire("RACE01")
	if err != nil {
		t.Fatal(err)
	}
	defer release()
	if m.Round != workers {
		t.Fatalf("Round = %d, expected %d", m.Round, workers)
	}
}

func TestRemove(t *testing.T) {
	r := New()
	if err := r.Put("GONE99", newMatch("GONE99")); err != nil {
		t.Fatal(err)
	}

	_, release, err := r.Acquire("GONE99")
	if err != nil {
		t.Fatal(err)
	}
	r.Remove("GONE99")
	release()

	if _, _, err := r.Acquire("GONE99"); !errors.Is(err, usecase_match.ErrRoomNotFound) {
		t.Fatalf("expected room not found after remove, got %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, expected 0", r.Len())
	}
}
