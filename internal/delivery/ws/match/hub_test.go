package ws_match

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xpekfdls/yacht/core/internal/model"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

func testClient(h *Hub, code model.RoomCode, buffer int) *Client {
	return &Client{
		Hub:           h,
		Send:          make(chan []byte, buffer),
		RoomCode:      code,
		ParticipantID: uuid.New(),
	}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.Send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message within a second")
	}
	return nil
}

func TestBroadcastReachesEveryClientInRoom(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()

	first := testClient(h, "ROOM01", 4)
	second := testClient(h, "ROOM01", 4)
	outsider := testClient(h, "OTHER1", 4)
	h.RegisterClient(first)
	h.RegisterClient(second)
	h.RegisterClient(outsider)

	h.BroadcastToRoom("ROOM01", usecase_match.Event{
		Type:    usecase_match.EventDiceUpdated,
		Payload: usecase_match.DiceView{Dice: []int{1, 2, 3, 4, 5}},
	})

	for _, c := range []*Client{first, second} {
		var event usecase_match.Event
		if err := json.Unmarshal(receive(t, c), &event); err != nil {
			t.Fatalf("malformed event: %v", err)
		}
		if event.Type != usecase_match.EventDiceUpdated {
			t.Errorf("event type = %s, expected %s", event.Type, usecase_match.EventDiceUpdated)
		}
	}

	select {
	case msg := <-outsider.Send:
		t.Errorf("outsider received %s", msg)
	default:
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()

	slow := testClient(h, "ROOM02", 1)
	healthy := testClient(h, "ROOM02", 4)
	h.RegisterClient(slow)
	h.RegisterClient(healthy)

	// Two events: the first fills the slow client's buffer, the second
	// must not wait for it.
	for i := 0; i < 2; i++ {
		h.BroadcastToRoom("ROOM02", usecase_match.Event{Type: usecase_match.EventDiceUpdated})
	}

	receive(t, healthy)
	receive(t, healthy)
	receive(t, slow)
	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Error("slow client still receiving after overflow")
		}
	case <-time.After(time.Second):
		t.Error("slow client's channel was not closed")
	}
}

func TestDirectSendAfterDropIsSafe(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()

	slow := testClient(h, "ROOM04", 1)
	h.RegisterClient(slow)

	// Overflow the buffer so the hub drops the client and closes Send.
	for i := 0; i < 2; i++ {
		h.BroadcastToRoom("ROOM04", usecase_match.Event{Type: usecase_match.EventDiceUpdated})
	}
	receive(t, slow)
	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected closed channel, got a message")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// A rejection aimed at the dropped client must be a no-op, not a
	// send on a closed channel.
	c := &Controller{}
	c.sendEvent(slow, usecase_match.Event{Type: usecase_match.EventOperationRejected})
	if slow.TrySend([]byte("late")) {
		t.Error("TrySend succeeded on a dropped client")
	}
}

func TestUnregisterClosesSendAndEmptiesRoom(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()

	c := testClient(h, "ROOM03", 1)
	h.RegisterClient(c)
	h.RemoveClient(c)

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Error("expected closed channel, got a message")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// Broadcasting to the now empty room must not panic or deliver.
	h.BroadcastToRoom("ROOM03", usecase_match.Event{Type: usecase_match.EventSnapshot})
	time.Sleep(50 * time.Millisecond)
}
