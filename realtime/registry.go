// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
)

// Client is one open live-count subscriber
type Client interface {
	ID() string
	Send(payload []byte) error
	Close()
}

// Registry tracks open subscribers and keeps each one informed of how many
// are connected. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	clients map[string]Client

	// serializes broadcasts so subscribers see counts in snapshot order
	broadcastMu sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Register adds c to the set and broadcasts the new count to every member,
// c included.
func (r *Registry) Register(c Client) {
	r.mu.Lock()
	r.clients[c.ID()] = c
	count := len(r.clients)
	r.mu.Unlock()

	slog.Debug("subscriber registered", "conn_id", c.ID(), "online", count)

	r.BroadcastCount()
}

// Deregister removes c from the set. It reports whether c was present;
// removing an absent client is a no-op. Callers broadcast afterwards.
func (r *Registry) Deregister(c Client) bool {
	r.mu.Lock()
	_, ok := r.clients[c.ID()]
	if ok {
		delete(r.clients, c.ID())
	}
	count := len(r.clients)
	r.mu.Unlock()

	if ok {
		slog.Debug("subscriber deregistered", "conn_id", c.ID(), "online", count)
	}
	return ok
}

// Count returns the number of open subscribers
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// BroadcastCount pushes the current count to a snapshot of the members.
// A failed push never stops delivery to the others and is not reported to
// the caller. Members that failed are deregistered once the pass is done,
// and the survivors are sent the smaller count.
func (r *Registry) BroadcastCount() {
	r.broadcastMu.Lock()
	defer r.broadcastMu.Unlock()

	// Every pass that fails removes at least one member, so this ends
	for r.broadcastOnce() {
	}
}

// broadcastOnce runs a single pass and reports whether any member was reaped
func (r *Registry) broadcastOnce() bool {
	members := r.snapshot()

	payload, err := json.Marshal(models.OnlineCountMessage{
		Type:  models.MessageOnlineCount,
		Count: len(members),
	})
	if err != nil {
		slog.Error("failed to encode online count", "error", err)
		return false
	}

	var failed []Client
	for _, c := range members {
		if err := c.Send(payload); err != nil {
			logSendFailure(c, err)
			failed = append(failed, c)
		}
	}

	reaped := false
	for _, c := range failed {
		if r.Deregister(c) {
			reaped = true
		}
	}
	return reaped
}

// Close empties the set and closes every member
func (r *Registry) Close() {
	r.mu.Lock()
	members := make([]Client, 0, len(r.clients))
	for _, c := range r.clients {
		members = append(members, c)
	}
	r.clients = make(map[string]Client)
	r.mu.Unlock()

	for _, c := range members {
		c.Close()
	}
}

func (r *Registry) snapshot() []Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := make([]Client, 0, len(r.clients))
	for _, c := range r.clients {
		members = append(members, c)
	}
	return members
}

func logSendFailure(c Client, err error) {
	if errors.Is(err, ErrConnectionClosed) {
		slog.Debug("subscriber already closed", "conn_id", c.ID())
		return
	}
	slog.Warn("failed to push online count", "conn_id", c.ID(), "error", err)
}
