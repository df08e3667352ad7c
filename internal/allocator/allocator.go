// Package allocator seats a list of people at the tables of an open space.
// Each run shuffles the names once with a seeded generator and fills the
// tables in order, so the same seed and roster always give the same plan.
package allocator

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/iliyamo/openspace-organizer/internal/model"
)

// Allocator assigns names to the seats of a fixed layout.  An Allocator is
// not safe for concurrent use; build one per run.
type Allocator struct {
	layout model.Layout
	seed   uint64
	rng    *rand.Rand
}

// New returns an allocator for layout whose draws are driven by seed.
func New(layout model.Layout, seed uint64) *Allocator {
	return &Allocator{
		layout: layout,
		seed:   seed,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Layout returns the layout the allocator fills.
func (a *Allocator) Layout() model.Layout { return a.layout }

// Assign seats every name at a random free seat.  Tables are filled one
// after another; a table only receives names once all tables before it are
// full.  It fails with ErrCapacity when len(names) exceeds the number of
// seats and with ErrDuplicateName when a name is listed more than once.
func (a *Allocator) Assign(names []string) (*model.OpenSpace, error) {
	if a.layout.Tables < 1 || a.layout.SeatsPerTable < 1 {
		return nil, fmt.Errorf("%w: %d tables x %d seats", ErrInvalidLayout, a.layout.Tables, a.layout.SeatsPerTable)
	}
	if total := a.layout.Capacity(); len(names) > total {
		return nil, fmt.Errorf("%w: %d names for %d seats", ErrCapacity, len(names), total)
	}
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, strings.Join(dups, ", "))
	}

	queue := slices.Clone(names)
	a.rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })

	space := model.NewOpenSpace(a.layout)
	space.Seed = a.seed
	for i := range space.Tables {
		table := &space.Tables[i]
		for len(queue) > 0 && table.HasFreeSpot() {
			table.AssignSeat(queue[0])
			queue = queue[1:]
		}
	}
	return space, nil
}
