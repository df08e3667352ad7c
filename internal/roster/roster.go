// Package roster reads the list of colleagues to seat and writes finished
// allocations back out.  Both sides speak CSV and address files by URL, so
// the same code serves local paths, file:// URLs and in-memory stores.
package roster

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/iliyamo/openspace-organizer/internal/model"
)

// ErrIO wraps every read or write failure so callers can tell storage
// problems apart from allocation problems.
var ErrIO = errors.New("roster i/o")

// Store reads and writes rosters through an afs.Service.
type Store struct {
	fs afs.Service
}

// NewStore returns a Store backed by fs.
func NewStore(fs afs.Service) *Store {
	return &Store{fs: fs}
}

// Load downloads the CSV at location and returns the names it lists.
func (s *Store) Load(ctx context.Context, location string) ([]string, error) {
	URL, err := normalize(location)
	if err != nil {
		return nil, err
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, location, err)
	}
	return ParseNames(bytes.NewReader(data))
}

// Save writes space as CSV to location, replacing whatever was there.
func (s *Store) Save(ctx context.Context, space *model.OpenSpace, location string) error {
	URL, err := normalize(location)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, space); err != nil {
		return err
	}
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buf); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, location, err)
	}
	return nil
}

// ParseNames reads one name per row from the first column of r.  Further
// columns are ignored, names are trimmed and blank rows are dropped.
func ParseNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse names: %v", ErrIO, err)
	}
	names := lo.FilterMap(records, func(rec []string, i int) (string, bool) {
		if len(rec) == 0 {
			return "", false
		}
		name := rec[0]
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		name = strings.TrimSpace(name)
		return name, name != ""
	})
	return names, nil
}

// WriteCSV writes one row per table: the table label, then every seat's
// occupant in seat order, with an empty field for a free seat.
func WriteCSV(w io.Writer, space *model.OpenSpace) error {
	writer := csv.NewWriter(w)
	for _, t := range space.Tables {
		row := make([]string, 0, len(t.Seats)+1)
		row = append(row, t.Label())
		for _, seat := range t.Seats {
			row = append(row, seat.Occupant)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("%w: write row: %v", ErrIO, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrIO, err)
	}
	return nil
}

// normalize turns bare paths into absolute file URLs; anything that already
// carries a scheme is passed through.
func normalize(location string) (string, error) {
	if strings.TrimSpace(location) == "" {
		return "", fmt.Errorf("%w: empty location", ErrIO)
	}
	if strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %v", ErrIO, location, err)
	}
	return url.Normalize(abs, file.Scheme), nil
}
