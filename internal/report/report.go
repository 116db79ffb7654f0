// Package report prints the ranked views as terminal tables, for runs that
// want the standings without a browser.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/paddock-data/apex.report/internal/dashboard"
	"github.com/paddock-data/apex.report/internal/results"
	"github.com/paddock-data/apex.report/internal/stats"
)

var (
	headlineColor = color.New(color.FgYellow, color.Bold)
	bannerColor   = color.New(color.FgGreen)
)

// WriteSummary prints the load banner, both standings tables, the podium
// table and the projection with its headline.
func WriteSummary(w io.Writer, summary results.LoadSummary,
	drivers, constructors []stats.EntrantSeries,
	podiums []stats.PodiumRow, projected []stats.ProjectedEntry) error {

	if _, err := bannerColor.Fprintf(w, "Loaded %s\n\n", summary); err != nil {
		return err
	}

	if err := writeStandingsTable(w, "Top drivers by cumulative points", drivers); err != nil {
		return err
	}
	if err := writeStandingsTable(w, "Top constructors by cumulative points", constructors); err != nil {
		return err
	}
	if err := writePodiumTable(w, podiums); err != nil {
		return err
	}
	return writeProjection(w, projected)
}

func writeStandingsTable(w io.Writer, title string, series []stats.EntrantSeries) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Points"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for i, s := range series {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%.0f", s.Total),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writePodiumTable(w io.Writer, podiums []stats.PodiumRow) error {
	if _, err := fmt.Fprintln(w, "Podium finishes"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Driver", "1st", "2nd", "3rd"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for _, p := range podiums {
		rows = append(rows, []string{
			p.Driver,
			fmt.Sprintf("%d", p.First),
			fmt.Sprintf("%d", p.Second),
			fmt.Sprintf("%d", p.Third),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeProjection(w io.Writer, projected []stats.ProjectedEntry) error {
	data := dashboard.PrepareProjectionChartData(projected)

	if _, err := fmt.Fprintf(w, "Projected points over %d races\n", data.Races); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Driver", "Avg/Race", "Projected"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for i, p := range projected {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Driver,
			fmt.Sprintf("%.2f", p.Average),
			fmt.Sprintf("%.1f", p.Projected),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, h := range data.Headline {
		if _, err := headlineColor.Fprintf(w, "%d. %s: ~%d points\n", h.Rank, h.Driver, h.Points); err != nil {
			return err
		}
	}
	return nil
}
