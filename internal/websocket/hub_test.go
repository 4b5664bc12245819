package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveEvent(t *testing.T, c *Client) Event {
	t.Helper()

	select {
	case event, ok := <-c.send:
		require.True(t, ok, "send channel closed before event arrived")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	first := NewClient(hub, nil, 1)
	second := NewClient(hub, nil, 2)
	hub.Register(first)
	hub.Register(second)

	hub.Broadcast(EventArticleCreated, map[string]string{"title": "hello"})

	for _, client := range []*Client{first, second} {
		event := receiveEvent(t, client)
		assert.Equal(t, EventArticleCreated, event.Type)
	}
}

func TestHub_UnregisteredClientGetsNothing(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(hub, nil, 1)
	hub.Register(client)
	hub.Unregister(client)

	hub.Broadcast(EventGifCreated, nil)

	// Unregister closes the client's send channel, so a zero-value read
	// means the channel is closed rather than carrying an event.
	select {
	case event, ok := <-client.send:
		assert.False(t, ok, "expected closed channel, got event %v", event)
	case <-time.After(time.Second):
		t.Fatal("send channel was never closed")
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(hub, nil, 1)
	hub.Register(client)

	// Fill the client's buffer without draining it.
	for i := 0; i < cap(client.send); i++ {
		require.True(t, client.Send(Event{Type: EventCommentCreated}))
	}

	hub.Broadcast(EventCommentCreated, nil)

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients) == 0
	}, 2*time.Second, 10*time.Millisecond, "slow client was never dropped")
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub, nil, 1)
	hub.Register(client)

	hub.Stop()

	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "expected send channel closed on hub stop")
	case <-time.After(time.Second):
		t.Fatal("send channel was never closed")
	}

	// Registering after stop is a no-op rather than a panic.
	hub.Unregister(client)
	hub.Broadcast(EventArticleCreated, nil)
}
