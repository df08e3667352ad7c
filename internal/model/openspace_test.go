package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeat_SetOccupant_OnlyWhenFree(t *testing.T) {
	req := require.New(t)
	var s Seat

	req.True(s.SetOccupant("Ada"))
	req.False(s.SetOccupant("Grace"))
	req.Equal("Ada", s.Occupant)

	req.Equal("Ada", s.RemoveOccupant())
	req.False(s.Occupied)
	req.Empty(s.Occupant)
	req.True(s.SetOccupant("Grace"))
}

func TestTable_AssignSeat_FillsInOrder(t *testing.T) {
	req := require.New(t)
	table := NewTable(2, 3)

	req.Equal("Table 2", table.Label())
	req.Equal(3, table.LeftCapacity())
	req.True(table.AssignSeat("A"))
	req.True(table.AssignSeat("B"))
	req.True(table.HasFreeSpot())
	req.True(table.AssignSeat("C"))
	req.False(table.HasFreeSpot())
	req.False(table.AssignSeat("D"))

	req.Equal([]string{"A", "B", "C"}, table.Occupants())
	for i, s := range table.Seats {
		req.Equal(i+1, s.Number)
	}
}

func TestOpenSpace_FindAndRemove(t *testing.T) {
	req := require.New(t)
	space := NewOpenSpace(Layout{Tables: 2, SeatsPerTable: 2})
	req.Equal(4, space.Capacity())

	space.Tables[0].AssignSeat("A")
	space.Tables[1].AssignSeat("B")
	space.Tables[1].AssignSeat("C")
	req.Equal(1, space.LeftCapacity())
	req.Equal([]string{"A", "B", "C"}, space.Occupants())

	table, seat, ok := space.Find("C")
	req.True(ok)
	req.Equal(2, table)
	req.Equal(2, seat)

	req.True(space.RemoveOccupant("C"))
	req.False(space.RemoveOccupant("C"))
	_, _, ok = space.Find("C")
	req.False(ok)
	req.Equal(2, space.LeftCapacity())
}

func TestLayout_Capacity(t *testing.T) {
	require.Equal(t, 24, DefaultLayout.Capacity())
}
