package model

import "time"

// Layout describes the shape of an open space: how many tables it has and
// how many seats each table offers.  The defaults mirror the office the
// organizer was first written for.
type Layout struct {
    Tables        int `json:"tables" yaml:"tables" validate:"min=1,max=1000"`
    SeatsPerTable int `json:"seats_per_table" yaml:"seats_per_table" validate:"min=1,max=100"`
}

// DefaultLayout is six tables of four seats.
var DefaultLayout = Layout{Tables: 6, SeatsPerTable: 4}

// Capacity is the total number of seats in the layout.
func (l Layout) Capacity() int { return l.Tables * l.SeatsPerTable }

// OpenSpace is one allocation: every table of a layout together with the
// people seated at them.  It owns its tables exclusively.
//
// Fields:
//  ID        – UUID assigned when the allocation is stored (empty for CLI runs).
//  Layout    – table count and seats per table.
//  Seed      – RNG seed used for the draw, so a run can be replayed.
//  Tables    – tables in display order.
//  CreatedAt – UTC time the allocation was produced.
type OpenSpace struct {
    ID        string    `json:"id,omitempty"`
    Layout    Layout    `json:"layout"`
    Seed      uint64    `json:"seed"`
    Tables    []Table   `json:"tables"`
    CreatedAt time.Time `json:"created_at"`
}

// NewOpenSpace builds an open space with every seat empty.
func NewOpenSpace(layout Layout) *OpenSpace {
    tables := make([]Table, layout.Tables)
    for i := range tables {
        tables[i] = NewTable(i+1, layout.SeatsPerTable)
    }
    return &OpenSpace{Layout: layout, Tables: tables, CreatedAt: time.Now().UTC()}
}

// Capacity is the total number of seats.
func (o *OpenSpace) Capacity() int {
    n := 0
    for i := range o.Tables {
        n += o.Tables[i].Capacity()
    }
    return n
}

// LeftCapacity is the number of free seats across all tables.
func (o *OpenSpace) LeftCapacity() int {
    n := 0
    for i := range o.Tables {
        n += o.Tables[i].LeftCapacity()
    }
    return n
}

// Occupants returns every seated name in table order then seat order.
func (o *OpenSpace) Occupants() []string {
    var names []string
    for i := range o.Tables {
        names = append(names, o.Tables[i].Occupants()...)
    }
    return names
}

// Find locates name.  It returns the table and seat numbers (1-based) and
// false when nobody by that name is seated.
func (o *OpenSpace) Find(name string) (table, seat int, ok bool) {
    for _, t := range o.Tables {
        for _, s := range t.Seats {
            if s.Occupied && s.Occupant == name {
                return t.Number, s.Number, true
            }
        }
    }
    return 0, 0, false
}

// RemoveOccupant frees the seat held by name.  It reports whether a seat
// was freed.
func (o *OpenSpace) RemoveOccupant(name string) bool {
    for i := range o.Tables {
        seats := o.Tables[i].Seats
        for j := range seats {
            if seats[j].Occupied && seats[j].Occupant == name {
                seats[j].RemoveOccupant()
                return true
            }
        }
    }
    return false
}
