package allocator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/openspace-organizer/internal/model"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("colleague-%02d", i+1)
	}
	return out
}

func TestAllocator_Assign_EveryNameSeatedOnce(t *testing.T) {
	layout := model.DefaultLayout

	for _, n := range []int{0, 1, 5, 23, 24} {
		t.Run(fmt.Sprintf("%d names", n), func(t *testing.T) {
			req := require.New(t)
			for seed := uint64(0); seed < 20; seed++ {
				roster := names(n)
				space, err := New(layout, seed).Assign(roster)
				req.NoError(err)
				req.Len(space.Tables, layout.Tables)

				req.ElementsMatch(roster, space.Occupants())
				req.Equal(layout.Capacity()-n, space.LeftCapacity())

				for _, table := range space.Tables {
					req.Len(table.Seats, layout.SeatsPerTable)
					for _, s := range table.Seats {
						req.Equal(s.Occupied, s.Occupant != "")
					}
				}
			}
		})
	}
}

func TestAllocator_Assign_FillsTablesInOrder(t *testing.T) {
	req := require.New(t)
	space, err := New(model.Layout{Tables: 3, SeatsPerTable: 4}, 7).Assign(names(6))
	req.NoError(err)

	req.Equal(0, space.Tables[0].LeftCapacity())
	req.Equal(2, space.Tables[1].LeftCapacity())
	req.Equal(4, space.Tables[2].LeftCapacity())
	req.True(space.Tables[1].Seats[0].Occupied)
	req.True(space.Tables[1].Seats[1].Occupied)
}

func TestAllocator_Assign_FullCapacityFillsEverySeat(t *testing.T) {
	req := require.New(t)
	space, err := New(model.DefaultLayout, 42).Assign(names(24))
	req.NoError(err)
	req.Equal(0, space.LeftCapacity())
}

func TestAllocator_Assign_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout model.Layout
		names  []string
		want   error
	}{
		{
			name:   "more names than seats",
			layout: model.Layout{Tables: 2, SeatsPerTable: 2},
			names:  []string{"A", "B", "C", "D", "E"},
			want:   ErrCapacity,
		},
		{
			name:   "duplicate name",
			layout: model.DefaultLayout,
			names:  []string{"A", "B", "A"},
			want:   ErrDuplicateName,
		},
		{
			name:   "no tables",
			layout: model.Layout{Tables: 0, SeatsPerTable: 4},
			names:  nil,
			want:   ErrInvalidLayout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space, err := New(tt.layout, 1).Assign(tt.names)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, space)
		})
	}
}

func TestAllocator_Assign_SameSeedSamePlan(t *testing.T) {
	req := require.New(t)
	roster := names(17)

	first, err := New(model.DefaultLayout, 99).Assign(roster)
	req.NoError(err)
	second, err := New(model.DefaultLayout, 99).Assign(roster)
	req.NoError(err)

	req.Equal(first.Tables, second.Tables)
	req.Equal(uint64(99), first.Seed)
}

func TestAllocator_Assign_DoesNotMutateInput(t *testing.T) {
	req := require.New(t)
	roster := names(10)
	before := append([]string(nil), roster...)

	_, err := New(model.DefaultLayout, 3).Assign(roster)
	req.NoError(err)
	req.Equal(before, roster)
}

func TestRender_ListsTablesAndBlankSeats(t *testing.T) {
	req := require.New(t)
	space := model.NewOpenSpace(model.Layout{Tables: 2, SeatsPerTable: 2})
	space.Tables[0].AssignSeat("A")
	space.Tables[0].AssignSeat("B")
	space.Tables[1].AssignSeat("C")

	want := "Table 1:\nA\nB\nTable 2:\nC\n\n"
	req.Equal(want, Render(space))
	req.Equal(Render(space), Render(space))
}

func TestRenderGrid_ContainsEveryTableAndName(t *testing.T) {
	req := require.New(t)
	space, err := New(model.Layout{Tables: 2, SeatsPerTable: 3}, 5).Assign([]string{"Ada", "Grace", "Linus", "Ken"})
	req.NoError(err)

	out := RenderGrid(space)
	for _, s := range []string{"Table 1", "Table 2", "Seat 1", "Seat 3", "Ada", "Grace", "Linus", "Ken"} {
		req.True(strings.Contains(out, s), "missing %q in\n%s", s, out)
	}
	req.Equal(out, RenderGrid(space))
}
