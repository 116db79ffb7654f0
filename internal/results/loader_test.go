package results

import (
	"errors"
	"strings"
	"testing"

	"github.com/paddock-data/apex.report/internal/fsutil"
)

const sampleCSV = `year,driver,constructor,position,points
2023,Max Verstappen,Red Bull,1,25
2023,Lando Norris,McLaren,2,18
2023,Logan Sargeant,Williams,DNF,0
2024,Lando Norris,McLaren,1,25
`

func TestLoadCSV_ParsesRecords(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("results.csv", []byte(sampleCSV))

	records, err := LoadCSV(fsys, "results.csv")
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	first := records[0]
	if first.Season != 2023 || first.Driver != "Max Verstappen" || first.Constructor != "Red Bull" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Position == nil || *first.Position != 1 {
		t.Errorf("first record position = %v, want 1", first.Position)
	}
	if first.Points != 25 {
		t.Errorf("first record points = %v, want 25", first.Points)
	}
}

func TestLoadCSV_CoercesUnparseablePosition(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("results.csv", []byte(sampleCSV))

	records, err := LoadCSV(fsys, "results.csv")
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	dnf := records[2]
	if dnf.Driver != "Logan Sargeant" {
		t.Fatalf("unexpected record order: %+v", dnf)
	}
	if dnf.Position != nil {
		t.Errorf("DNF position = %v, want nil", *dnf.Position)
	}
	if dnf.OnPodium() {
		t.Error("record without position must not count as a podium")
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()

	_, err := LoadCSV(fsys, "absent.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("err = %v, want ErrMissingInput", err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("err should be a *LoadError, got %T", err)
	}
}

func TestLoadCSV_MissingPositionColumn(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("results.csv", []byte("year,driver,constructor,points\n2023,A,B,10\n"))

	_, err := LoadCSV(fsys, "results.csv")
	if err == nil {
		t.Fatal("missing position column must be a fatal load error")
	}
	if errors.Is(err, ErrMissingInput) {
		t.Error("column error must not report as missing input")
	}
	if !strings.Contains(err.Error(), "position") {
		t.Errorf("error should name the missing column, got %v", err)
	}
}

func TestLoadCSV_HeaderAliases(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("results.csv", []byte("Season,Driver,Team,Position,Points\n2022,A,B,3,15\n"))

	records, err := LoadCSV(fsys, "results.csv")
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Constructor != "B" {
		t.Errorf("team alias not mapped to constructor: %+v", records[0])
	}
	if !records[0].OnPodium() {
		t.Error("position 3 should count as a podium")
	}
}

func TestLoadCSV_BadPointsIsFatal(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("results.csv", []byte("year,driver,constructor,position,points\n2023,A,B,1,lots\n"))

	if _, err := LoadCSV(fsys, "results.csv"); err == nil {
		t.Fatal("unparseable points must abort the load")
	}
}

func TestSummarise(t *testing.T) {
	records := []Record{
		{Season: 2021, Driver: "A", Points: 10},
		{Season: 2019, Driver: "B", Points: 5},
		{Season: 2024, Driver: "A", Points: 25},
	}

	s := Summarise("run-1", records)
	if s.Rows != 3 {
		t.Errorf("Rows = %d, want 3", s.Rows)
	}
	if s.FirstSeason != 2019 || s.LastSeason != 2024 {
		t.Errorf("season range = %d..%d, want 2019..2024", s.FirstSeason, s.LastSeason)
	}
	if !strings.Contains(s.String(), "3 race results") {
		t.Errorf("summary string missing row count: %q", s.String())
	}
}
