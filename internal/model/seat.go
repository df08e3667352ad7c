package model

// Seat is a single place at a table.  A seat holds at most one occupant;
// Occupant is empty whenever Occupied is false.
//
// Fields:
//  Number   – position of the seat within its table (1-based).
//  Occupied – whether somebody sits here.
//  Occupant – name of the person seated, "" when free.
type Seat struct {
    Number   int    `json:"number"`
    Occupied bool   `json:"occupied"`
    Occupant string `json:"occupant,omitempty"`
}

// SetOccupant seats name when the seat is free.  It reports whether the
// seat was taken by this call.
func (s *Seat) SetOccupant(name string) bool {
    if s.Occupied {
        return false
    }
    s.Occupied = true
    s.Occupant = name
    return true
}

// RemoveOccupant frees the seat and returns the name of whoever sat there.
func (s *Seat) RemoveOccupant() string {
    name := s.Occupant
    s.Occupied = false
    s.Occupant = ""
    return name
}
