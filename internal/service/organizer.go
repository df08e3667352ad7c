// Package service runs allocations on behalf of the HTTP layer: it draws
// the seating plan, stores it and announces it on the message broker.
package service

//go:generate mockgen -destination=../mocks/mock_organizer.go -package=mocks . AllocationStore,EventPublisher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/iliyamo/openspace-organizer/internal/allocator"
	"github.com/iliyamo/openspace-organizer/internal/model"
	"github.com/iliyamo/openspace-organizer/internal/queue"
	"github.com/iliyamo/openspace-organizer/internal/repository"
)

// Page sizes accepted by List.
const (
	DefaultListLimit = 20  // used when the caller gives no limit
	MaxListLimit     = 100 // larger limits are clamped to this
)

// AllocationStore persists allocations.  *repository.AllocationRepo
// implements it.
type AllocationStore interface {
	Create(ctx context.Context, space *model.OpenSpace) error
	GetByID(ctx context.Context, id string) (*model.OpenSpace, error)
	List(ctx context.Context, limit int) ([]repository.AllocationSummary, error)
	RemoveOccupant(ctx context.Context, id, name string) error
}

// EventPublisher announces stored allocations.  *queue.Publisher
// implements it.
type EventPublisher interface {
	PublishAllocationCompleted(ctx context.Context, event queue.AllocationCompletedEvent) error
}

// Organizer coordinates allocator, store and publisher.
type Organizer struct {
	layout    model.Layout
	store     AllocationStore
	publisher EventPublisher
	log       *slog.Logger
}

// NewOrganizer builds an Organizer for layout.  publisher may be nil, in
// which case no events are sent.
func NewOrganizer(layout model.Layout, store AllocationStore, publisher EventPublisher, log *slog.Logger) *Organizer {
	if store == nil {
		panic("nil store passed to NewOrganizer")
	}
	return &Organizer{
		layout:    layout,
		store:     store,
		publisher: publisher,
		log:       log.With("component", "organizer"),
	}
}

// Layout returns the layout every allocation is drawn on.
func (o *Organizer) Layout() model.Layout { return o.layout }

// Organize seats names, stores the result under a fresh ID and publishes an
// AllocationCompletedEvent.  Names are trimmed and blanks dropped first.
// A nil seed draws a random one.  Publishing failures are logged but do not
// fail the call; the allocation is already stored.
func (o *Organizer) Organize(ctx context.Context, names []string, seed *uint64, requestedBy string) (*model.OpenSpace, error) {
	cleaned := lo.Compact(lo.Map(names, func(n string, _ int) string { return strings.TrimSpace(n) }))

	var s uint64
	if seed != nil {
		s = *seed
	} else {
		var err error
		if s, err = allocator.NewSeed(); err != nil {
			return nil, err
		}
	}

	space, err := allocator.New(o.layout, s).Assign(cleaned)
	if err != nil {
		return nil, err
	}
	space.ID = uuid.NewString()

	if err := o.store.Create(ctx, space); err != nil {
		return nil, fmt.Errorf("store allocation: %w", err)
	}
	o.log.Info("allocation stored", "allocation_id", space.ID, "seated", len(cleaned), "free", space.LeftCapacity())

	if o.publisher != nil {
		if err := o.publisher.PublishAllocationCompleted(ctx, CompletedEvent(space, requestedBy)); err != nil {
			o.log.Warn("allocation event not published", "allocation_id", space.ID, "error", err)
		}
	}
	return space, nil
}

// Get loads a stored allocation.
func (o *Organizer) Get(ctx context.Context, id string) (*model.OpenSpace, error) {
	return o.store.GetByID(ctx, id)
}

// List returns recent allocations.  limit is clamped to
// [1, MaxListLimit]; zero or negative means DefaultListLimit.
func (o *Organizer) List(ctx context.Context, limit int) ([]repository.AllocationSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	return o.store.List(ctx, limit)
}

// Unseat frees the seat held by name in allocation id.
func (o *Organizer) Unseat(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return repository.ErrOccupantNotFound
	}
	if err := o.store.RemoveOccupant(ctx, id, name); err != nil {
		return err
	}
	o.log.Info("occupant removed", "allocation_id", id, "name", name)
	return nil
}

// CompletedEvent builds the broker payload for a stored allocation.
func CompletedEvent(space *model.OpenSpace, requestedBy string) queue.AllocationCompletedEvent {
	assignments := make(map[string][]string, len(space.Tables))
	for _, t := range space.Tables {
		assignments[t.Label()] = t.Occupants()
	}
	return queue.AllocationCompletedEvent{
		AllocationID:  space.ID,
		Tables:        space.Layout.Tables,
		SeatsPerTable: space.Layout.SeatsPerTable,
		Seed:          space.Seed,
		Seated:        len(space.Occupants()),
		FreeSeats:     space.LeftCapacity(),
		Assignments:   assignments,
		CompletedAt:   space.CreatedAt.UTC().Format(time.RFC3339),
		RequestedBy:   requestedBy,
	}
}
