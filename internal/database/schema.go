package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the two tables behind stored allocations.  An allocation
// row records the layout and seed; allocation_seats holds one row per seat
// with a NULL occupant for a free seat.  The unique key on
// (allocation_id, occupant) keeps a name to one seat per allocation.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS allocations (
		id              CHAR(36)        NOT NULL,
		tables_count    INT UNSIGNED    NOT NULL,
		seats_per_table INT UNSIGNED    NOT NULL,
		seed            BIGINT UNSIGNED NOT NULL,
		created_at      DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_allocations_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS allocation_seats (
		allocation_id CHAR(36)     NOT NULL,
		table_number  INT UNSIGNED NOT NULL,
		seat_number   INT UNSIGNED NOT NULL,
		occupant      VARCHAR(255) NULL,
		PRIMARY KEY (allocation_id, table_number, seat_number),
		UNIQUE KEY uq_allocation_occupant (allocation_id, occupant),
		CONSTRAINT fk_allocation_seats_allocation FOREIGN KEY (allocation_id)
			REFERENCES allocations (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
