// Command openspace seats a roster of colleagues at random across the
// tables of an open space and writes the plan to a CSV file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/viant/afs"

	"github.com/iliyamo/openspace-organizer/internal/allocator"
	"github.com/iliyamo/openspace-organizer/internal/config"
	"github.com/iliyamo/openspace-organizer/internal/model"
	"github.com/iliyamo/openspace-organizer/internal/roster"
	"github.com/iliyamo/openspace-organizer/internal/utils"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	in      string
	out     string
	layout  string
	tables  int
	seats   int
	seed    uint64
	seedSet bool
	grid    bool
	color   bool
	hashKey string
}

// parseFlags reads the command line on top of cfg.  Flags left unset keep
// the configured values.
func parseFlags(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("openspace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var opts options
	fs.StringVar(&opts.in, "in", cfg.InputURL, "roster CSV, local path or URL")
	fs.StringVar(&opts.out, "out", cfg.OutputURL, "where to write the seating CSV")
	fs.StringVar(&opts.layout, "layout", cfg.LayoutURL, "YAML layout file, overrides -tables and -seats")
	fs.IntVar(&opts.tables, "tables", cfg.Tables, "number of tables")
	fs.IntVar(&opts.seats, "seats", cfg.SeatsPerTable, "seats per table")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed, drawn at random when omitted")
	fs.BoolVar(&opts.grid, "grid", false, "print the plan as a grid")
	fs.BoolVar(&opts.color, "color", false, "colorize the summary")
	fs.StringVar(&opts.hashKey, "hash-key", "", "print the bcrypt hash of an organizer key and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("flags: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("flags: unexpected arguments %v", fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	opts, err := parseFlags(args, cfg)
	if err != nil {
		return err
	}
	if opts.hashKey != "" {
		hash, err := utils.HashKey(opts.hashKey, cfg.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash key: %w", err)
		}
		_, err = fmt.Fprintln(stdout, hash)
		return err
	}

	fs := afs.New()
	layout := model.Layout{Tables: opts.tables, SeatsPerTable: opts.seats}
	if opts.layout != "" {
		if layout, err = config.LoadLayout(ctx, fs, opts.layout); err != nil {
			return err
		}
	}

	seed := opts.seed
	if !opts.seedSet {
		if seed, err = allocator.NewSeed(); err != nil {
			return err
		}
	}

	store := roster.NewStore(fs)
	names, err := store.Load(ctx, opts.in)
	if err != nil {
		return err
	}
	log.Debug("roster loaded", "location", opts.in, "names", len(names))

	space, err := allocator.New(layout, seed).Assign(names)
	if err != nil {
		if errors.Is(err, allocator.ErrCapacity) {
			return fmt.Errorf("%w (use -tables/-seats or -layout to enlarge the room)", err)
		}
		return err
	}
	if err := store.Save(ctx, space, opts.out); err != nil {
		return err
	}
	log.Info("seating plan written", "location", opts.out, "seed", seed)

	if opts.grid {
		fmt.Fprint(stdout, allocator.RenderGrid(space))
	} else {
		fmt.Fprint(stdout, allocator.Render(space))
	}
	fmt.Fprintln(stdout, summary(space, opts.color))
	return nil
}

// summary is the closing line printed under the plan.
func summary(space *model.OpenSpace, colored bool) string {
	seated := len(space.Occupants())
	free := space.LeftCapacity()
	line := fmt.Sprintf("%d seated, %d free seats, seed %d", seated, free, space.Seed)
	if !colored {
		return line
	}
	style := color.New(color.FgGreen, color.OpBold)
	if free == 0 {
		style = color.New(color.FgYellow, color.OpBold)
	}
	return style.Render(line)
}
