// Package broadcast fans job change notifications out to live
// connections. Handlers publish new-job and delete-job events here and
// the stream endpoint subscribes each client to its own buffered
// channel. Delivery is best-effort with no replay.
package broadcast
