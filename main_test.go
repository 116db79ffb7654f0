package main

import (
	"context"
	"testing"

	"github.com/paddock-data/apex.report/internal/db"
	"github.com/paddock-data/apex.report/internal/results"
	"github.com/paddock-data/apex.report/internal/stats"
)

func TestCollectViews(t *testing.T) {
	database, err := db.NewDB(db.InMemory)
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer database.Close()

	pos := 1
	records := []results.Record{
		{Season: 2023, Driver: "Verstappen", Constructor: "Red Bull", Position: &pos, Points: 25},
		{Season: 2024, Driver: "Verstappen", Constructor: "Red Bull", Position: &pos, Points: 25},
	}
	if err := database.ReplaceResults(context.Background(), "test-run", records); err != nil {
		t.Fatalf("ReplaceResults failed: %v", err)
	}

	v, err := collectViews(context.Background(), stats.NewPipeline(database))
	if err != nil {
		t.Fatalf("collectViews failed: %v", err)
	}

	if len(v.drivers) != 1 || v.drivers[0].Name != "Verstappen" {
		t.Errorf("drivers = %+v, want Verstappen", v.drivers)
	}
	if len(v.constructors) != 1 || v.constructors[0].Name != "Red Bull" {
		t.Errorf("constructors = %+v, want Red Bull", v.constructors)
	}
	if len(v.podiums) != 1 || v.podiums[0].First != 2 {
		t.Errorf("podiums = %+v, want two wins", v.podiums)
	}
	if len(v.projected) != 1 || v.projected[0].Projected != 500.0 {
		t.Errorf("projected = %+v, want 500.0", v.projected)
	}
}
