// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime maintains the live viewer count pushed over websockets.

# Registry

Registry owns the set of open subscribers:

	registry := realtime.NewRegistry()
	registry.Register(conn)      // add, then broadcast the new count
	registry.Deregister(conn)    // remove; no-op if absent
	registry.BroadcastCount()    // push {"type":"online_count","count":N}
	n := registry.Count()

BroadcastCount snapshots the set under the lock and sends outside it.
Broadcasts are serialized, so counts reach subscribers in the order the
snapshots were taken. A failed push is logged and the member is dropped
after the pass; it is never returned to the caller and never stops delivery
to the others.

# Connections

Conn adapts a gorilla websocket to the Client interface:

	c := realtime.NewConn(ws, remoteIP)
	c.Start()                 // write loop with periodic pings
	registry.Register(c)
	err := c.ReadUntilClosed()
	c.Close()
	registry.Deregister(c)
	registry.BroadcastCount()

Outbound messages go through a small buffered queue. A subscriber that
lets the queue fill is disconnected and Send reports ErrSendBufferFull.
Sending to a closed connection reports ErrConnectionClosed.
*/
package realtime
