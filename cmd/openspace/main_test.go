package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/openspace-organizer/internal/allocator"
	"github.com/iliyamo/openspace-organizer/internal/utils"
)

func writeRoster(t *testing.T, names ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "new_colleagues.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0o644))
	return path
}

func TestRun_WritesPlan(t *testing.T) {
	req := require.New(t)
	in := writeRoster(t, "Ada", "Grace", "Linus", "Ken", "Barbara")
	out := filepath.Join(t.TempDir(), "output.csv")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-in", in, "-out", out, "-tables", "2", "-seats", "3", "-seed", "9"}, &stdout)
	req.NoError(err)

	written, err := os.ReadFile(out)
	req.NoError(err)
	lines := strings.Split(strings.TrimSpace(string(written)), "\n")
	req.Len(lines, 2)
	req.True(strings.HasPrefix(lines[0], "Table 1,"))
	req.True(strings.HasPrefix(lines[1], "Table 2,"))

	req.Contains(stdout.String(), "Table 1:\n")
	req.Contains(stdout.String(), "5 seated, 1 free seats, seed 9")
}

func TestRun_SameSeedSamePlan(t *testing.T) {
	req := require.New(t)
	in := writeRoster(t, "A", "B", "C", "D", "E", "F", "G")
	dir := t.TempDir()

	var first, second bytes.Buffer
	req.NoError(run(context.Background(), []string{"-in", in, "-out", filepath.Join(dir, "a.csv"), "-seed", "3"}, &first))
	req.NoError(run(context.Background(), []string{"-in", in, "-out", filepath.Join(dir, "b.csv"), "-seed", "3"}, &second))
	req.Equal(first.String(), second.String())
}

func TestRun_ZeroIsAValidSeed(t *testing.T) {
	req := require.New(t)
	in := writeRoster(t, "A", "B", "C", "D", "E", "F", "G")
	dir := t.TempDir()

	var first, second bytes.Buffer
	req.NoError(run(context.Background(), []string{"-in", in, "-out", filepath.Join(dir, "a.csv"), "-seed", "0"}, &first))
	req.NoError(run(context.Background(), []string{"-in", in, "-out", filepath.Join(dir, "b.csv"), "-seed", "0"}, &second))
	req.Contains(first.String(), "seed 0\n")
	req.Equal(first.String(), second.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		want error
	}{
		{
			name: "roster larger than room",
			args: func(t *testing.T) []string {
				return []string{"-in", writeRoster(t, "A", "B", "C"), "-out", filepath.Join(t.TempDir(), "o.csv"), "-tables", "1", "-seats", "2"}
			},
			want: allocator.ErrCapacity,
		},
		{
			name: "invalid layout",
			args: func(t *testing.T) []string {
				return []string{"-in", writeRoster(t, "A"), "-out", filepath.Join(t.TempDir(), "o.csv"), "-tables", "0"}
			},
			want: allocator.ErrInvalidLayout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args(t), &bytes.Buffer{})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_MissingRoster(t *testing.T) {
	err := run(context.Background(), []string{"-in", filepath.Join(t.TempDir(), "absent.csv")}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_UnknownFlag(t *testing.T) {
	err := run(context.Background(), []string{"-bogus"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "flags")
}

func TestRun_HashKey(t *testing.T) {
	req := require.New(t)
	t.Setenv("BCRYPT_COST", "4")

	var stdout bytes.Buffer
	req.NoError(run(context.Background(), []string{"-hash-key", "organizer-key"}, &stdout))
	hash := strings.TrimSpace(stdout.String())
	req.True(utils.VerifyKey(hash, "organizer-key"))
}
