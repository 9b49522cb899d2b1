package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m.Start(ctx)
	return m
}

// register hands the client to the manager and waits for the registration
// loop to process it.
func register(t *testing.T, m *Manager, client *Client) {
	t.Helper()
	m.Register <- client

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.mutex.RLock()
		ok := m.clients[client]
		m.mutex.RUnlock()
		if ok {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("client was not registered before deadline")
}

func TestPushDeliversFrame(t *testing.T) {
	m := startManager(t)
	client := &Client{UserID: "user-1", Send: make(chan []byte, 4)}
	register(t, m, client)

	m.Push(client, Envelope{Type: "events", Data: []string{"e1"}})

	var env Envelope
	require.NoError(t, json.Unmarshal(<-client.Send, &env))
	assert.Equal(t, "events", env.Type)
}

func TestPushToUnregisteredClientIsDropped(t *testing.T) {
	m := startManager(t)
	client := &Client{UserID: "user-1", Send: make(chan []byte, 4)}

	m.Push(client, Envelope{Type: "events"})

	assert.Empty(t, client.Send)
}

func TestSendToUserFansOutToEveryConnection(t *testing.T) {
	m := startManager(t)
	first := &Client{UserID: "user-1", Send: make(chan []byte, 4)}
	second := &Client{UserID: "user-1", Send: make(chan []byte, 4)}
	other := &Client{UserID: "user-2", Send: make(chan []byte, 4)}
	register(t, m, first)
	register(t, m, second)
	register(t, m, other)

	m.SendToUser("user-1", Envelope{Type: "message"})

	assert.Len(t, first.Send, 1)
	assert.Len(t, second.Send, 1)
	assert.Empty(t, other.Send)
}

func TestPushRacesWithUnregister(t *testing.T) {
	m := startManager(t)

	// Unregistering closes Send; a concurrent Push on the same client must
	// observe the removal instead of sending on the closed channel.
	for i := 0; i < 200; i++ {
		client := &Client{UserID: "user-1", Send: make(chan []byte, 1)}
		register(t, m, client)

		done := make(chan struct{})
		go func() {
			for j := 0; j < 20; j++ {
				m.Push(client, Envelope{Type: "events"})
			}
			close(done)
		}()

		m.Unregister <- client
		<-done
	}
}
