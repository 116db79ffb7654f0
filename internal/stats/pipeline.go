// Package stats derives the dashboard's aggregate views from stored race
// results: standings series, podium tables, recent form and the season
// projection.
package stats

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/paddock-data/apex.report/internal/db"
	"github.com/paddock-data/apex.report/internal/results"
)

const (
	// TopEntrants is how many drivers or constructors the trend charts keep.
	TopEntrants = 6

	// PodiumTableSize caps the podium table at the busiest drivers.
	PodiumTableSize = 10

	// FormWindowSeasons is the trailing span used for the recent-form average.
	FormWindowSeasons = 5

	// AssumedRaces is the race count the projection multiplies the average by.
	AssumedRaces = 20

	// ProjectionTableSize caps the projection bar chart.
	ProjectionTableSize = 10

	// HeadlineSize is how many projected drivers make the headline.
	HeadlineSize = 3

	// SampleRows is how many loaded rows the sample-data view shows.
	SampleRows = 10
)

// SeriesPoint is one season's point total inside an entrant's series.
type SeriesPoint struct {
	Season int     `json:"season"`
	Points float64 `json:"points"`
}

// EntrantSeries is a driver's or constructor's cumulative total plus the
// per-season breakdown behind it.
type EntrantSeries struct {
	Name    string        `json:"name"`
	Total   float64       `json:"total"`
	Seasons []SeriesPoint `json:"seasons"`
}

// PodiumRow is one driver's podium finish counts.
type PodiumRow struct {
	Driver string `json:"driver"`
	First  int    `json:"first"`
	Second int    `json:"second"`
	Third  int    `json:"third"`
}

// Podiums is the row total, used for ranking only and never displayed.
func (r PodiumRow) Podiums() int { return r.First + r.Second + r.Third }

// FormEntry is a driver's average points per race over the recent window.
type FormEntry struct {
	Driver  string  `json:"driver"`
	Entries int     `json:"entries"`
	Average float64 `json:"average"`
}

// ProjectedEntry is a driver's projected points for the next season.
type ProjectedEntry struct {
	Driver    string  `json:"driver"`
	Average   float64 `json:"average"`
	Projected float64 `json:"projected"`
}

// HeadlinePoints is the projection truncated to whole points for display.
func (e ProjectedEntry) HeadlinePoints() int { return int(e.Projected) }

// Pipeline computes the derived views. All views are fresh read-only
// projections over whatever the results table currently holds.
type Pipeline struct {
	db *db.DB
}

func NewPipeline(database *db.DB) *Pipeline {
	return &Pipeline{db: database}
}

// Sample returns the first loaded rows, a peek at the raw data behind the
// derived views.
func (p *Pipeline) Sample(ctx context.Context) ([]results.Record, error) {
	return p.db.SampleResults(ctx, SampleRows)
}

// DriverStandings returns the top drivers by cumulative points with their
// per-season series for trend charting.
func (p *Pipeline) DriverStandings(ctx context.Context) ([]EntrantSeries, error) {
	totals, err := p.db.DriverTotals(ctx)
	if err != nil {
		return nil, err
	}
	return p.expandSeries(ctx, totals, p.db.DriverSeasonTotals)
}

// ConstructorStandings returns the top constructors by cumulative points
// with their per-season series.
func (p *Pipeline) ConstructorStandings(ctx context.Context) ([]EntrantSeries, error) {
	totals, err := p.db.ConstructorTotals(ctx)
	if err != nil {
		return nil, err
	}
	return p.expandSeries(ctx, totals, p.db.ConstructorSeasonTotals)
}

func (p *Pipeline) expandSeries(
	ctx context.Context,
	totals []db.NameTotal,
	seasonTotals func(context.Context, []string) ([]db.SeasonTotal, error),
) ([]EntrantSeries, error) {
	if len(totals) > TopEntrants {
		totals = totals[:TopEntrants]
	}
	if len(totals) == 0 {
		return nil, nil
	}

	names := make([]string, len(totals))
	for i, t := range totals {
		names[i] = t.Name
	}

	perSeason, err := seasonTotals(ctx, names)
	if err != nil {
		return nil, err
	}

	bySeries := make(map[string][]SeriesPoint, len(names))
	for _, st := range perSeason {
		bySeries[st.Name] = append(bySeries[st.Name], SeriesPoint{Season: st.Season, Points: st.Total})
	}

	series := make([]EntrantSeries, len(totals))
	for i, t := range totals {
		series[i] = EntrantSeries{
			Name:    t.Name,
			Total:   t.Total,
			Seasons: bySeries[t.Name],
		}
	}
	return series, nil
}

// PodiumTable returns the podium counts pivoted per driver, ranked by total
// podiums (ties by name) and capped at PodiumTableSize rows.
func (p *Pipeline) PodiumTable(ctx context.Context) ([]PodiumRow, error) {
	counts, err := p.db.PodiumCounts(ctx)
	if err != nil {
		return nil, err
	}

	byDriver := make(map[string]*PodiumRow)
	order := make([]string, 0)
	for _, c := range counts {
		row, ok := byDriver[c.Driver]
		if !ok {
			row = &PodiumRow{Driver: c.Driver}
			byDriver[c.Driver] = row
			order = append(order, c.Driver)
		}
		switch c.Position {
		case 1:
			row.First = c.Count
		case 2:
			row.Second = c.Count
		case 3:
			row.Third = c.Count
		default:
			return nil, fmt.Errorf("unexpected podium position %d for %s", c.Position, c.Driver)
		}
	}

	rows := make([]PodiumRow, 0, len(order))
	for _, driver := range order {
		rows = append(rows, *byDriver[driver])
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Podiums() != rows[j].Podiums() {
			return rows[i].Podiums() > rows[j].Podiums()
		}
		return rows[i].Driver < rows[j].Driver
	})

	if len(rows) > PodiumTableSize {
		rows = rows[:PodiumTableSize]
	}
	return rows, nil
}

// RecentForm returns each driver's average points per race over the most
// recent FormWindowSeasons seasons, highest first. Drivers with no entries
// in the window are absent, never present with a zero average.
func (p *Pipeline) RecentForm(ctx context.Context) ([]FormEntry, error) {
	seasons, err := p.db.Seasons(ctx)
	if err != nil {
		return nil, err
	}
	if len(seasons) == 0 {
		return nil, nil
	}

	since := seasons[len(seasons)-1] - (FormWindowSeasons - 1)
	entries, err := p.db.RecentEntryPoints(ctx, since)
	if err != nil {
		return nil, err
	}

	pointsByDriver := make(map[string][]float64)
	order := make([]string, 0)
	for _, e := range entries {
		if _, ok := pointsByDriver[e.Driver]; !ok {
			order = append(order, e.Driver)
		}
		pointsByDriver[e.Driver] = append(pointsByDriver[e.Driver], e.Points)
	}

	form := make([]FormEntry, 0, len(order))
	for _, driver := range order {
		points := pointsByDriver[driver]
		form = append(form, FormEntry{
			Driver:  driver,
			Entries: len(points),
			Average: stat.Mean(points, nil),
		})
	}

	sort.Slice(form, func(i, j int) bool {
		if form[i].Average != form[j].Average {
			return form[i].Average > form[j].Average
		}
		return form[i].Driver < form[j].Driver
	})
	return form, nil
}

// Projection multiplies each recent-form average by AssumedRaces and keeps
// the top ProjectionTableSize drivers. Values are rounded to one decimal.
func (p *Pipeline) Projection(ctx context.Context) ([]ProjectedEntry, error) {
	form, err := p.RecentForm(ctx)
	if err != nil {
		return nil, err
	}

	projected := make([]ProjectedEntry, 0, len(form))
	for _, f := range form {
		projected = append(projected, ProjectedEntry{
			Driver:    f.Driver,
			Average:   f.Average,
			Projected: round1(f.Average * AssumedRaces),
		})
	}

	if len(projected) > ProjectionTableSize {
		projected = projected[:ProjectionTableSize]
	}
	return projected, nil
}

// Headline returns the top HeadlineSize projected drivers.
func Headline(projected []ProjectedEntry) []ProjectedEntry {
	if len(projected) > HeadlineSize {
		return projected[:HeadlineSize]
	}
	return projected
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
