// Command window_audit cross-checks the materialised daily flight window
// against the active seasonal series. It reports dates where a series
// should operate but no daily flight exists, and daily flights whose
// parent series is gone or inactive. Run it after bulk schedule imports
// or before a season switch.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
	"github.com/Iotonix/osams/internal/repository"
	"github.com/Iotonix/osams/pkg/config"
	"github.com/Iotonix/osams/pkg/database"
)

type finding struct {
	Kind     string
	FlightID string
	Detail   string
}

func main() {
	var (
		startRaw string
		days     int
		verbose  bool
	)

	flag.StringVar(&startRaw, "start", "", "audit window start (YYYY-MM-DD), defaults to today")
	flag.IntVar(&days, "days", 7, "audit window length in days")
	flag.BoolVar(&verbose, "v", false, "print every finding, not just the summary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if startRaw != "" {
		start, err = time.ParseInLocation("2006-01-02", startRaw, time.UTC)
		if err != nil {
			log.Fatalf("invalid -start: %v", err)
		}
	}
	end := start.AddDate(0, 0, days-1)

	ctx := context.Background()
	findings, err := audit(ctx, db, start, end)
	if err != nil {
		log.Fatalf("audit failed: %v", err)
	}

	missing, orphaned := printReport(findings, start, end, verbose)
	if missing > 0 || orphaned > 0 {
		os.Exit(1)
	}
}

func audit(ctx context.Context, db *sqlx.DB, start, end time.Time) ([]finding, error) {
	seasonalRepo := repository.NewSeasonalFlightRepository(db)
	series, err := seasonalRepo.ListActiveOverlapping(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load seasonal flights: %w", err)
	}

	existing := map[string]bool{}
	rows, err := db.QueryxContext(ctx,
		`SELECT f.flight_id
		 FROM daily_flights f
		 WHERE f.date_of_operation BETWEEN $1 AND $2`, start, end)
	if err != nil {
		return nil, fmt.Errorf("load daily flights: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var flightID string
		if err := rows.Scan(&flightID); err != nil {
			return nil, err
		}
		existing[flightID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var findings []finding
	for i := range series {
		s := &series[i]
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			if !s.OperatesOn(date) {
				continue
			}
			flightID := models.DeriveFlightID(date, s.AirlineIATA, s.FlightNumber)
			if !existing[flightID] {
				findings = append(findings, finding{
					Kind:     "MISSING",
					FlightID: flightID,
					Detail:   fmt.Sprintf("series %d operates on %s but no daily flight exists", s.ID, date.Format("2006-01-02")),
				})
			}
		}
	}

	// Generated flights whose parent series vanished or went inactive.
	orphanRows, err := db.QueryxContext(ctx,
		`SELECT f.flight_id
		 FROM daily_flights f
		 LEFT JOIN seasonal_flights s ON s.id = f.schedule_id
		 WHERE f.date_of_operation BETWEEN $1 AND $2
		   AND f.schedule_id IS NOT NULL
		   AND (s.id IS NULL OR NOT s.is_active)`, start, end)
	if err != nil {
		return nil, fmt.Errorf("load orphans: %w", err)
	}
	defer orphanRows.Close()

	for orphanRows.Next() {
		var flightID string
		if err := orphanRows.Scan(&flightID); err != nil {
			return nil, err
		}
		findings = append(findings, finding{
			Kind:     "ORPHANED",
			FlightID: flightID,
			Detail:   "parent seasonal flight is missing or inactive",
		})
	}
	return findings, orphanRows.Err()
}

func printReport(findings []finding, start, end time.Time, verbose bool) (missing, orphaned int) {
	fmt.Println("Window Audit Report")
	fmt.Println("===================")
	fmt.Printf("Window: %s .. %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))

	for _, f := range findings {
		switch f.Kind {
		case "MISSING":
			missing++
		case "ORPHANED":
			orphaned++
		}
		if verbose {
			fmt.Printf("[%s] %s: %s\n", f.Kind, f.FlightID, f.Detail)
		}
	}

	fmt.Printf("Missing: %d, Orphaned: %d\n", missing, orphaned)
	return missing, orphaned
}
