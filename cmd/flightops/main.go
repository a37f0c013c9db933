package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/repository"
	"github.com/Iotonix/osams/internal/service"
	"github.com/Iotonix/osams/pkg/config"
	"github.com/Iotonix/osams/pkg/database"
	"github.com/Iotonix/osams/pkg/logger"
)

const dateLayout = "2006-01-02"

type generationRunner interface {
	Run(ctx context.Context, params dto.GenerateParams) (*dto.GenerationReport, error)
}

type propagationRunner interface {
	Run(ctx context.Context, params dto.PropagateParams) (*dto.PropagationReport, error)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	seasonalRepo := repository.NewSeasonalFlightRepository(db)
	dailyRepo := repository.NewDailyFlightRepository(db)

	ctx := context.Background()

	switch os.Args[1] {
	case "generate":
		gen := service.NewGenerationService(seasonalRepo, dailyRepo, db, nil, logr)
		os.Exit(runGenerate(ctx, gen, cfg, os.Args[2:]))
	case "propagate":
		prop := service.NewPropagationService(seasonalRepo, dailyRepo, db, nil, logr, cfg.FlightOps.BufferHours)
		os.Exit(runPropagate(ctx, prop, os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: flightops <generate|propagate> [flags]")
}

func runGenerate(ctx context.Context, gen generationRunner, cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	start := fs.String("start", "", "window start date (YYYY-MM-DD), defaults to today")
	days := fs.Int("days", cfg.FlightOps.WindowDays, "window length in days")
	incremental := fs.Bool("incremental", false, "skip dates that already have flights")
	dryRun := fs.Bool("dry-run", false, "report without writing")
	force := fs.Bool("force", false, "full mode may overwrite manually modified flights")
	fs.Parse(args) //nolint:errcheck

	windowStart, err := parseDateOrToday(*start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start: %v\n", err)
		return 2
	}

	mode := dto.ModeFull
	if *incremental {
		mode = dto.ModeIncremental
	}

	report, err := gen.Run(ctx, dto.GenerateParams{
		WindowStart: windowStart,
		WindowEnd:   windowStart.AddDate(0, 0, *days-1),
		Mode:        mode,
		DryRun:      *dryRun,
		Force:       *force,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		return 1
	}

	printJSON(report)
	if report.Patterns == 0 {
		fmt.Fprintln(os.Stderr, "no active seasonal flights overlap the window")
		return 1
	}
	return 0
}

func runPropagate(ctx context.Context, prop propagationRunner, args []string) int {
	fs := flag.NewFlagSet("propagate", flag.ExitOnError)
	scheduleID := fs.Int64("schedule", 0, "seasonal flight id to propagate")
	all := fs.Bool("all", false, "propagate every active seasonal flight")
	from := fs.String("from", "", "first affected date (YYYY-MM-DD), defaults to today")
	buffer := fs.Int("buffer", 0, "protection buffer in hours, 0 disables it, omit for the configured default")
	dryRun := fs.Bool("dry-run", false, "report without writing")
	fs.Parse(args) //nolint:errcheck

	params := dto.PropagateParams{
		All:    *all,
		DryRun: *dryRun,
	}
	// Only a flag the operator actually passed overrides the configured
	// default, so an explicit -buffer 0 stays zero.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "buffer" {
			b := *buffer
			params.BufferHours = &b
		}
	})
	if *scheduleID > 0 {
		id := *scheduleID
		params.ScheduleID = &id
	}
	if *from != "" {
		fromDate, err := time.ParseInLocation(dateLayout, *from, time.UTC)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -from: %v\n", err)
			return 2
		}
		params.FromDate = fromDate
	}

	report, err := prop.Run(ctx, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "propagation failed: %v\n", err)
		return 1
	}

	printJSON(report)
	if report.Patterns == 0 {
		fmt.Fprintln(os.Stderr, "no seasonal flights matched")
		return 1
	}
	return 0
}

func parseDateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.ParseInLocation(dateLayout, raw, time.UTC)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v) //nolint:errcheck
}
