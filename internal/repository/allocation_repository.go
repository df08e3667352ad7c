package repository // repository defines data access for stored allocations

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/openspace-organizer/internal/model"
)

// AllocationSummary is one line of the allocation listing: the layout and
// how full it is, without the seats themselves.
type AllocationSummary struct {
	ID            string    `json:"id"`
	Tables        int       `json:"tables"`
	SeatsPerTable int       `json:"seats_per_table"`
	Seed          uint64    `json:"seed"`
	Seated        int       `json:"seated"`
	Capacity      int       `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
}

// AllocationRepo stores allocations and their seats in MySQL.
type AllocationRepo struct {
	db *sql.DB
}

// NewAllocationRepo constructs an AllocationRepo with the given DB handle.
func NewAllocationRepo(db *sql.DB) *AllocationRepo {
	return &AllocationRepo{db: db}
}

// Create inserts the allocation row and every seat in one transaction.
// space.ID must already be set.
func (r *AllocationRepo) Create(ctx context.Context, space *model.OpenSpace) error {
	if space.ID == "" {
		return errors.New("allocation id is required")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const q = `INSERT INTO allocations (id, tables_count, seats_per_table, seed, created_at)
	           VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, space.ID, space.Layout.Tables, space.Layout.SeatsPerTable,
		space.Seed, space.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("insert allocation: %w", err)
	}
	if err := createSeatsBulkTx(ctx, tx, space); err != nil {
		return fmt.Errorf("insert seats: %w", err)
	}
	return tx.Commit()
}

// createSeatsBulkTx inserts every seat of space in a single statement.
func createSeatsBulkTx(ctx context.Context, tx *sql.Tx, space *model.OpenSpace) error {
	var b strings.Builder
	b.WriteString(`INSERT INTO allocation_seats (allocation_id, table_number, seat_number, occupant) VALUES `)
	args := make([]interface{}, 0, space.Capacity()*4)
	first := true
	for _, t := range space.Tables {
		for _, s := range t.Seats {
			if !first {
				b.WriteString(",")
			}
			first = false
			b.WriteString("(?, ?, ?, ?)")
			occupant := sql.NullString{String: s.Occupant, Valid: s.Occupied}
			args = append(args, space.ID, t.Number, s.Number, occupant)
		}
	}
	if first {
		return nil
	}
	_, err := tx.ExecContext(ctx, b.String(), args...)
	return err
}

// GetByID loads an allocation with all of its tables and seats.
func (r *AllocationRepo) GetByID(ctx context.Context, id string) (*model.OpenSpace, error) {
	const q = `SELECT id, tables_count, seats_per_table, seed, created_at
	           FROM allocations WHERE id = ?`
	var (
		allocID string
		layout  model.Layout
		seed    uint64
		created time.Time
	)
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&allocID, &layout.Tables, &layout.SeatsPerTable, &seed, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAllocationNotFound
		}
		return nil, err
	}
	space := model.NewOpenSpace(layout)
	space.ID, space.Seed, space.CreatedAt = allocID, seed, created

	const seatsQ = `SELECT table_number, seat_number, occupant
	                FROM allocation_seats
	                WHERE allocation_id = ?
	                ORDER BY table_number, seat_number`
	rows, err := r.db.QueryContext(ctx, seatsQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tableNo, seatNo int
			occupant        sql.NullString
		)
		if err := rows.Scan(&tableNo, &seatNo, &occupant); err != nil {
			return nil, err
		}
		if tableNo < 1 || tableNo > len(space.Tables) {
			continue
		}
		seats := space.Tables[tableNo-1].Seats
		if seatNo < 1 || seatNo > len(seats) || !occupant.Valid {
			continue
		}
		seats[seatNo-1].SetOccupant(occupant.String)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return space, nil
}

// List returns the most recent allocations first, at most limit of them.
func (r *AllocationRepo) List(ctx context.Context, limit int) ([]AllocationSummary, error) {
	const q = `SELECT a.id, a.tables_count, a.seats_per_table, a.seed, a.created_at, COUNT(s.occupant)
	           FROM allocations a
	           LEFT JOIN allocation_seats s ON s.allocation_id = a.id
	           GROUP BY a.id, a.tables_count, a.seats_per_table, a.seed, a.created_at
	           ORDER BY a.created_at DESC, a.id
	           LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]AllocationSummary, 0, limit)
	for rows.Next() {
		var s AllocationSummary
		if err := rows.Scan(&s.ID, &s.Tables, &s.SeatsPerTable, &s.Seed, &s.CreatedAt, &s.Seated); err != nil {
			return nil, err
		}
		s.Capacity = s.Tables * s.SeatsPerTable
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveOccupant frees the seat held by name.  It returns
// ErrAllocationNotFound when the allocation does not exist and
// ErrOccupantNotFound when nobody by that name is seated.
func (r *AllocationRepo) RemoveOccupant(ctx context.Context, id, name string) error {
	const q = `UPDATE allocation_seats SET occupant = NULL
	           WHERE allocation_id = ? AND occupant = ?`
	res, err := r.db.ExecContext(ctx, q, id, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		const touch = `UPDATE allocations SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`
		_, err := r.db.ExecContext(ctx, touch, id)
		return err
	}
	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM allocations WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAllocationNotFound
	}
	if err != nil {
		return err
	}
	return ErrOccupantNotFound
}
