// Package queue defines message payloads exchanged over the message broker
// together with the publisher and consumer for them.
package queue

// AllocationCompletedQueue is the durable queue allocation events go to.
const AllocationCompletedQueue = "allocation.completed"

// AllocationCompletedEvent is published when an allocation has been stored.
// It carries enough to log or notify without querying the database.
type AllocationCompletedEvent struct {
    AllocationID  string              `json:"allocation_id"`
    Tables        int                 `json:"tables"`
    SeatsPerTable int                 `json:"seats_per_table"`
    Seed          uint64              `json:"seed"`
    Seated        int                 `json:"seated"`
    FreeSeats     int                 `json:"free_seats"`
    Assignments   map[string][]string `json:"assignments"` // table label -> occupants in seat order
    CompletedAt   string              `json:"completed_at"`
    RequestedBy   string              `json:"requested_by,omitempty"`
}
