package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/paddock-data/apex.report/internal/stats"
)

func floatPtr(v float64) *float64 { return &v }

func TestPrepareTrendChartData_AlignsSeasons(t *testing.T) {
	series := []stats.EntrantSeries{
		{Name: "Norris", Total: 43, Seasons: []stats.SeriesPoint{
			{Season: 2023, Points: 18},
			{Season: 2024, Points: 25},
		}},
		{Name: "Alonso", Total: 12, Seasons: []stats.SeriesPoint{
			{Season: 2022, Points: 12},
		}},
	}

	got := PrepareTrendChartData(series)

	want := &TrendChartData{
		Seasons: []int{2022, 2023, 2024},
		Series: []TrendSeries{
			{Name: "Norris", Total: 43, Values: []*float64{nil, floatPtr(18), floatPtr(25)}},
			{Name: "Alonso", Total: 12, Values: []*float64{floatPtr(12), nil, nil}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trend data mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareTrendChartData_Empty(t *testing.T) {
	got := PrepareTrendChartData(nil)
	if len(got.Seasons) != 0 || len(got.Series) != 0 {
		t.Errorf("expected empty chart data, got %+v", got)
	}
}

func TestPreparePodiumChartData_Pivot(t *testing.T) {
	rows := []stats.PodiumRow{
		{Driver: "Verstappen", First: 9, Second: 3, Third: 1},
		{Driver: "Norris", First: 1, Second: 4, Third: 2},
	}

	got := PreparePodiumChartData(rows)

	if diff := cmp.Diff([]string{"Verstappen", "Norris"}, got.Drivers); diff != "" {
		t.Errorf("driver order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1st", "2nd", "3rd"}, got.Positions); diff != "" {
		t.Errorf("position labels mismatch (-want +got):\n%s", diff)
	}
	if got.MaxCount != 9 {
		t.Errorf("MaxCount = %d, want 9", got.MaxCount)
	}
	if len(got.Cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(got.Cells))
	}

	// All counts non-negative, and the first row's cells match the pivot.
	for _, c := range got.Cells {
		if c.Value < 0 {
			t.Errorf("negative podium count in cell %+v", c)
		}
	}
	if got.Cells[0] != (HeatmapCell{X: 0, Y: 0, Value: 9}) {
		t.Errorf("cell[0] = %+v, want {0 0 9}", got.Cells[0])
	}
	if got.Cells[4] != (HeatmapCell{X: 1, Y: 1, Value: 4}) {
		t.Errorf("cell[4] = %+v, want {1 1 4}", got.Cells[4])
	}
}

func TestPrepareProjectionChartData_Headline(t *testing.T) {
	projected := []stats.ProjectedEntry{
		{Driver: "Verstappen", Average: 21.5, Projected: 430.0},
		{Driver: "Norris", Average: 18.2, Projected: 364.0},
		{Driver: "Leclerc", Average: 15.05, Projected: 301.0},
		{Driver: "Russell", Average: 12.0, Projected: 240.0},
	}

	got := PrepareProjectionChartData(projected)

	if len(got.Drivers) != 4 || len(got.Values) != 4 {
		t.Fatalf("bar series size = %d/%d, want 4/4", len(got.Drivers), len(got.Values))
	}
	if got.Races != stats.AssumedRaces {
		t.Errorf("Races = %d, want %d", got.Races, stats.AssumedRaces)
	}

	wantHeadline := []HeadlineEntry{
		{Rank: 1, Driver: "Verstappen", Points: 430},
		{Rank: 2, Driver: "Norris", Points: 364},
		{Rank: 3, Driver: "Leclerc", Points: 301},
	}
	if diff := cmp.Diff(wantHeadline, got.Headline); diff != "" {
		t.Errorf("headline mismatch (-want +got):\n%s", diff)
	}
}
