// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// NameAddedEvent is published when a name is successfully inserted. It
// carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type NameAddedEvent struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Origin  string `json:"origin,omitempty"`
	AddedAt string `json:"added_at"`
}
