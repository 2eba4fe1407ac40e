package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID, role string) *Client {
	return &Client{
		UserID: userID,
		Role:   role,
		Hub:    hub,
		Send:   make(chan Event, 8),
	}
}

func TestHub_PublishToUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	alice := newTestClient(hub, "alice", "business")
	bob := newTestClient(hub, "bob", "job_seeker")
	hub.register <- alice
	hub.register <- bob

	// Both connections of the same user receive the event.
	alice2 := newTestClient(hub, "alice", "business")
	hub.register <- alice2
	time.Sleep(10 * time.Millisecond)

	hub.PublishToUser("alice", Event{Type: "verification.decided"})

	for _, c := range []*Client{alice, alice2} {
		select {
		case ev := <-c.Send:
			assert.Equal(t, "verification.decided", ev.Type)
		case <-time.After(time.Second):
			t.Fatal("expected event was not delivered")
		}
	}

	select {
	case <-bob.Send:
		t.Fatal("event leaked to another user")
	default:
	}
}

func TestHub_PublishToRoles(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	staff := newTestClient(hub, "staff-1", "staff_verification")
	admin := newTestClient(hub, "admin-1", "admin")
	biz := newTestClient(hub, "biz-1", "business")
	hub.register <- staff
	hub.register <- admin
	hub.register <- biz
	time.Sleep(10 * time.Millisecond)

	hub.PublishToRoles(map[string]bool{"staff_verification": true, "admin": true, "ceo": true},
		Event{Type: "verification.submitted"})

	for _, c := range []*Client{staff, admin} {
		select {
		case ev := <-c.Send:
			require.Equal(t, "verification.submitted", ev.Type)
		case <-time.After(time.Second):
			t.Fatal("staff client did not receive the event")
		}
	}

	select {
	case <-biz.Send:
		t.Fatal("staff event leaked to a business client")
	default:
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, "alice", "business")
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	// Publishing after disconnect delivers nothing and does not panic.
	hub.PublishToUser("alice", Event{Type: "noop"})

	_, open := <-client.Send
	assert.False(t, open)
}
