// Chart data preparation, separated from eCharts rendering so the same
// series back both the HTML charts and the JSON API.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/paddock-data/apex.report/internal/results"
	"github.com/paddock-data/apex.report/internal/stats"
)

// Podium column labels, in position order.
var podiumColumns = []string{"1st", "2nd", "3rd"}

// TrendSeries is one entrant's points aligned to the chart's season axis.
// A nil value means the entrant scored in none of that season's races, and
// renders as a gap rather than a zero.
type TrendSeries struct {
	Name   string     `json:"name"`
	Total  float64    `json:"total"`
	Values []*float64 `json:"values"`
}

// TrendChartData holds prepared data for a points-over-seasons line chart.
type TrendChartData struct {
	Seasons []int         `json:"seasons"`
	Series  []TrendSeries `json:"series"`
}

// HeatmapCell is one (position, driver) cell of the podium heatmap.
type HeatmapCell struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

// PodiumChartData holds prepared data for the podium heatmap. Drivers are
// ranked by total podiums, best first.
type PodiumChartData struct {
	Drivers   []string      `json:"drivers"`
	Positions []string      `json:"positions"`
	Cells     []HeatmapCell `json:"cells"`
	MaxCount  int           `json:"max_count"`
}

// SampleData is the raw-rows peek shown under the chart panels.
type SampleData struct {
	Rows []results.Record `json:"rows"`
}

// HeadlineEntry is one line of the projection headline.
type HeadlineEntry struct {
	Rank   int    `json:"rank"`
	Driver string `json:"driver"`
	Points int    `json:"points"`
}

// ProjectionChartData holds prepared data for the projection bar chart plus
// the top-3 headline.
type ProjectionChartData struct {
	Drivers  []string        `json:"drivers"`
	Values   []float64       `json:"values"`
	Headline []HeadlineEntry `json:"headline"`
	Races    int             `json:"assumed_races"`
}

// PrepareTrendChartData aligns each entrant's season series to the union of
// seasons covered by the selection.
func PrepareTrendChartData(series []stats.EntrantSeries) *TrendChartData {
	seen := make(map[int]bool)
	var seasons []int
	for _, s := range series {
		for _, sp := range s.Seasons {
			if !seen[sp.Season] {
				seen[sp.Season] = true
				seasons = append(seasons, sp.Season)
			}
		}
	}
	sort.Ints(seasons)

	index := make(map[int]int, len(seasons))
	for i, season := range seasons {
		index[season] = i
	}

	out := &TrendChartData{Seasons: seasons}
	for _, s := range series {
		values := make([]*float64, len(seasons))
		for _, sp := range s.Seasons {
			points := sp.Points
			values[index[sp.Season]] = &points
		}
		out.Series = append(out.Series, TrendSeries{Name: s.Name, Total: s.Total, Values: values})
	}
	return out
}

// PreparePodiumChartData pivots podium rows into heatmap cells. The X axis
// is the podium position, the Y axis the ranked driver list.
func PreparePodiumChartData(rows []stats.PodiumRow) *PodiumChartData {
	out := &PodiumChartData{Positions: podiumColumns}

	for y, row := range rows {
		out.Drivers = append(out.Drivers, row.Driver)
		for x, count := range []int{row.First, row.Second, row.Third} {
			out.Cells = append(out.Cells, HeatmapCell{X: x, Y: y, Value: count})
			if count > out.MaxCount {
				out.MaxCount = count
			}
		}
	}
	return out
}

// PrepareProjectionChartData shapes the projection for the bar chart and
// extracts the headline entries.
func PrepareProjectionChartData(projected []stats.ProjectedEntry) *ProjectionChartData {
	out := &ProjectionChartData{Races: stats.AssumedRaces}

	for _, p := range projected {
		out.Drivers = append(out.Drivers, p.Driver)
		out.Values = append(out.Values, p.Projected)
	}

	for i, p := range stats.Headline(projected) {
		out.Headline = append(out.Headline, HeadlineEntry{
			Rank:   i + 1,
			Driver: p.Driver,
			Points: p.HeadlinePoints(),
		})
	}
	return out
}

func seasonLabels(seasons []int) []string {
	labels := make([]string, len(seasons))
	for i, s := range seasons {
		labels[i] = fmt.Sprintf("%d", s)
	}
	return labels
}
