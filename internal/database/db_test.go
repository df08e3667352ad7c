package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	require.Equal(t,
		"app:secret@tcp(db:3306)/openspace?charset=utf8mb4&parseTime=true&loc=UTC",
		DSN("app", "secret", "db", "3306", "openspace"))
	require.Equal(t,
		"app@tcp(localhost:3307)/openspace?charset=utf8mb4&parseTime=true&loc=UTC",
		DSN("app", "", "localhost", "3307", "openspace"))
}
