package model

import "strconv"

// Table groups a fixed number of seats.  Tables are numbered from 1 in the
// order they appear in an open space, and the seat slice never changes
// length after construction.
type Table struct {
    Number int    `json:"number"`
    Seats  []Seat `json:"seats"`
}

// NewTable builds an empty table with the given number of seats.
func NewTable(number, capacity int) Table {
    seats := make([]Seat, capacity)
    for i := range seats {
        seats[i].Number = i + 1
    }
    return Table{Number: number, Seats: seats}
}

// Label returns the display name used in listings and exports, e.g. "Table 3".
func (t *Table) Label() string {
    return "Table " + strconv.Itoa(t.Number)
}

// Capacity is the number of seats at the table.
func (t *Table) Capacity() int { return len(t.Seats) }

// LeftCapacity counts the free seats.
func (t *Table) LeftCapacity() int {
    free := 0
    for i := range t.Seats {
        if !t.Seats[i].Occupied {
            free++
        }
    }
    return free
}

// HasFreeSpot reports whether at least one seat is free.
func (t *Table) HasFreeSpot() bool { return t.LeftCapacity() > 0 }

// AssignSeat places name in the first free seat.  It returns false when the
// table is already full.
func (t *Table) AssignSeat(name string) bool {
    for i := range t.Seats {
        if t.Seats[i].SetOccupant(name) {
            return true
        }
    }
    return false
}

// Occupants lists the seated names in seat order; empty seats are skipped.
func (t *Table) Occupants() []string {
    names := make([]string, 0, len(t.Seats))
    for _, s := range t.Seats {
        if s.Occupied {
            names = append(names, s.Occupant)
        }
    }
    return names
}
