package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(conversationID, userID int64, buffer int) *Client {
	return &Client{
		send:           make(chan []byte, buffer),
		conversationID: conversationID,
		userID:         userID,
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	return hub
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := startHub(t)

	client := newTestClient(1, 10, 4)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount(1) == 1 }, time.Second, 10*time.Millisecond)

	event := &Event{ConversationID: 1, SenderID: 10, Content: "hello", Timestamp: time.Now()}
	hub.BroadcastToConversation(event)

	select {
	case data := <-client.send:
		var got Event
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "hello", got.Content)
		assert.Equal(t, int64(10), got.SenderID)
	case <-time.After(time.Second):
		t.Fatal("client did not receive the broadcast")
	}
}

func TestHubBroadcastStaysInConversation(t *testing.T) {
	hub := startHub(t)

	inConv := newTestClient(1, 10, 4)
	otherConv := newTestClient(2, 20, 4)
	hub.register <- inConv
	hub.register <- otherConv
	require.Eventually(t, func() bool {
		return hub.ClientCount(1) == 1 && hub.ClientCount(2) == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastToConversation(&Event{ConversationID: 1, SenderID: 10, Content: "hi"})

	select {
	case <-inConv.send:
	case <-time.After(time.Second):
		t.Fatal("participant did not receive the broadcast")
	}
	select {
	case <-otherConv.send:
		t.Fatal("client in another conversation received the broadcast")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := startHub(t)

	client := newTestClient(1, 10, 4)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount(1) == 1 }, time.Second, 10*time.Millisecond)

	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount(1) == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := startHub(t)

	// zero buffer and no reader, every send would block
	slow := newTestClient(1, 10, 0)
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.ClientCount(1) == 1 }, time.Second, 10*time.Millisecond)

	hub.BroadcastToConversation(&Event{ConversationID: 1, SenderID: 10, Content: "hi"})

	require.Eventually(t, func() bool { return hub.ClientCount(1) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubNotifiesListeners(t *testing.T) {
	hub := startHub(t)

	listener := make(chan *Event, 4)
	hub.AddListener(listener)

	hub.BroadcastToConversation(&Event{ConversationID: 9, SenderID: 10, Content: "persist me"})

	select {
	case event := <-listener:
		assert.Equal(t, int64(9), event.ConversationID)
		assert.Equal(t, "persist me", event.Content)
	case <-time.After(time.Second):
		t.Fatal("listener did not receive the event")
	}
}
