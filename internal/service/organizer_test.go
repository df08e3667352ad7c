package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iliyamo/openspace-organizer/internal/allocator"
	"github.com/iliyamo/openspace-organizer/internal/mocks"
	"github.com/iliyamo/openspace-organizer/internal/model"
	"github.com/iliyamo/openspace-organizer/internal/queue"
	"github.com/iliyamo/openspace-organizer/internal/repository"
	"github.com/iliyamo/openspace-organizer/internal/service"
)

var discard = slog.New(slog.DiscardHandler)

func TestOrganizer_Organize_StoresAndPublishes(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAllocationStore(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	var stored *model.OpenSpace
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, space *model.OpenSpace) error {
			stored = space
			return nil
		})
	var published queue.AllocationCompletedEvent
	publisher.EXPECT().PublishAllocationCompleted(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev queue.AllocationCompletedEvent) error {
			published = ev
			return nil
		})

	o := service.NewOrganizer(model.Layout{Tables: 2, SeatsPerTable: 3}, store, publisher, discard)
	space, err := o.Organize(ctx, []string{" Ada ", "Grace", "", "Linus", "  "}, lo.ToPtr(uint64(8)), "organizer")
	req.NoError(err)

	req.Same(stored, space)
	req.NotEmpty(space.ID)
	req.Equal(uint64(8), space.Seed)
	req.ElementsMatch([]string{"Ada", "Grace", "Linus"}, space.Occupants())

	req.Equal(space.ID, published.AllocationID)
	req.Equal(3, published.Seated)
	req.Equal(3, published.FreeSeats)
	req.Equal("organizer", published.RequestedBy)
	req.Len(published.Assignments, 2)
}

func TestOrganizer_Organize_SeedMakesPlanReproducible(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAllocationStore(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	o := service.NewOrganizer(model.DefaultLayout, store, nil, discard)
	roster := []string{"A", "B", "C", "D", "E", "F", "G"}
	first, err := o.Organize(context.Background(), roster, lo.ToPtr(uint64(5)), "")
	req.NoError(err)
	second, err := o.Organize(context.Background(), roster, lo.ToPtr(uint64(5)), "")
	req.NoError(err)

	req.NotEqual(first.ID, second.ID)
	req.Equal(first.Tables, second.Tables)
}

func TestOrganizer_Organize_CapacityErrorStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAllocationStore(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	o := service.NewOrganizer(model.Layout{Tables: 2, SeatsPerTable: 2}, store, publisher, discard)
	_, err := o.Organize(context.Background(), []string{"A", "B", "C", "D", "E"}, nil, "")
	require.ErrorIs(t, err, allocator.ErrCapacity)
}

func TestOrganizer_Organize_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAllocationStore(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	boom := errors.New("connection refused")
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

	o := service.NewOrganizer(model.DefaultLayout, store, publisher, discard)
	_, err := o.Organize(context.Background(), []string{"A"}, nil, "")
	require.ErrorIs(t, err, boom)
}

func TestOrganizer_Organize_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAllocationStore(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	publisher.EXPECT().PublishAllocationCompleted(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	o := service.NewOrganizer(model.DefaultLayout, store, publisher, discard)
	space, err := o.Organize(context.Background(), []string{"A", "B"}, nil, "")
	require.NoError(t, err)
	require.NotNil(t, space)
}

func TestOrganizer_List_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: service.DefaultListLimit},
		{name: "negative", limit: -3, want: service.DefaultListLimit},
		{name: "within range", limit: 7, want: 7},
		{name: "too large", limit: 1000, want: service.MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockAllocationStore(ctrl)
			store.EXPECT().List(gomock.Any(), tt.want).Return([]repository.AllocationSummary{}, nil)

			o := service.NewOrganizer(model.DefaultLayout, store, nil, discard)
			_, err := o.List(context.Background(), tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestOrganizer_Unseat(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAllocationStore(ctrl)
	store.EXPECT().RemoveOccupant(gomock.Any(), "alloc-1", "Ada").Return(nil)
	store.EXPECT().RemoveOccupant(gomock.Any(), "alloc-1", "Nobody").Return(repository.ErrOccupantNotFound)

	o := service.NewOrganizer(model.DefaultLayout, store, nil, discard)
	req.NoError(o.Unseat(context.Background(), "alloc-1", " Ada "))
	req.ErrorIs(o.Unseat(context.Background(), "alloc-1", "Nobody"), repository.ErrOccupantNotFound)
	req.ErrorIs(o.Unseat(context.Background(), "alloc-1", "  "), repository.ErrOccupantNotFound)
}

func TestCompletedEvent(t *testing.T) {
	req := require.New(t)
	space := model.NewOpenSpace(model.Layout{Tables: 2, SeatsPerTable: 2})
	space.ID = "alloc-1"
	space.Tables[0].AssignSeat("Ada")

	ev := service.CompletedEvent(space, "")
	req.Equal([]string{"Ada"}, ev.Assignments["Table 1"])
	req.Empty(ev.Assignments["Table 2"])
	req.Equal(1, ev.Seated)
	req.Equal(3, ev.FreeSeats)
}
