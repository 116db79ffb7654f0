package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/paddock-data/apex.report/internal/dashboard"
	"github.com/paddock-data/apex.report/internal/db"
	"github.com/paddock-data/apex.report/internal/fsutil"
	"github.com/paddock-data/apex.report/internal/plots"
	"github.com/paddock-data/apex.report/internal/report"
	"github.com/paddock-data/apex.report/internal/results"
	"github.com/paddock-data/apex.report/internal/stats"
	"github.com/paddock-data/apex.report/internal/version"
)

var (
	csvPath  = flag.String("csv", "race_results.csv", "Path to the race results CSV")
	dbPath   = flag.String("db", db.InMemory, "sqlite path; default keeps the import in memory")
	listen   = flag.String("listen", ":8080", "Listen address for the dashboard")
	summary  = flag.Bool("summary", false, "Print ranked tables to stdout and exit")
	plotsDir = flag.String("plots", "", "Write PNG charts to this directory and exit")
)

// views bundles everything the non-server output modes need.
type views struct {
	drivers      []stats.EntrantSeries
	constructors []stats.EntrantSeries
	podiums      []stats.PodiumRow
	projected    []stats.ProjectedEntry
}

func collectViews(ctx context.Context, pipeline *stats.Pipeline) (*views, error) {
	v := &views{}
	var err error

	if v.drivers, err = pipeline.DriverStandings(ctx); err != nil {
		return nil, err
	}
	if v.constructors, err = pipeline.ConstructorStandings(ctx); err != nil {
		return nil, err
	}
	if v.podiums, err = pipeline.PodiumTable(ctx); err != nil {
		return nil, err
	}
	if v.projected, err = pipeline.Projection(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func main() {
	flag.Parse()

	log.Printf("apex.report %s", version.String())

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	records, err := results.LoadCSV(fsutil.OSFileSystem{}, *csvPath)
	if err != nil {
		if errors.Is(err, results.ErrMissingInput) {
			log.Fatalf("Input file %q not found. Pass -csv with the path to your results file.", *csvPath)
		}
		log.Fatalf("Failed to load results: %v", err)
	}

	database, err := db.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	runID := uuid.NewString()
	if err := database.ReplaceResults(context.Background(), runID, records); err != nil {
		log.Fatalf("Failed to import results: %v", err)
	}

	loadSummary := results.Summarise(runID, records)
	log.Printf("Loaded %s", loadSummary)

	pipeline := stats.NewPipeline(database)

	if *summary || *plotsDir != "" {
		v, err := collectViews(context.Background(), pipeline)
		if err != nil {
			log.Fatalf("Failed to compute views: %v", err)
		}

		if *summary {
			if err := report.WriteSummary(os.Stdout, loadSummary, v.drivers, v.constructors, v.podiums, v.projected); err != nil {
				log.Fatalf("Failed to write summary: %v", err)
			}
		}
		if *plotsDir != "" {
			written, err := plots.WriteAll(fsutil.OSFileSystem{}, *plotsDir, v.drivers, v.constructors, v.projected)
			if err != nil {
				log.Fatalf("Failed to write plots: %v", err)
			}
			log.Printf("Wrote %d plot files to %s", written, *plotsDir)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := dashboard.NewWebServer(dashboard.WebServerConfig{
		Address:  *listen,
		Pipeline: pipeline,
		Summary:  loadSummary,
	})

	if err := ws.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Printf("Graceful shutdown complete")
}
