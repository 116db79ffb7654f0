package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Viridis ramp shared by the heatmap visual map.
var heatmapColors = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// handleDriverTrendChart renders the top drivers' points-per-season lines.
func (ws *WebServer) handleDriverTrendChart(w http.ResponseWriter, r *http.Request) {
	standings, err := ws.pipeline.DriverStandings(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute driver standings: %v", err))
		return
	}
	if len(standings) == 0 {
		ws.writeJSONError(w, http.StatusNotFound, "no driver results loaded")
		return
	}

	data := PrepareTrendChartData(standings)
	ws.renderTrendChart(w, data, "Driver Performance",
		fmt.Sprintf("top %d drivers by cumulative points", len(data.Series)))
}

// handleConstructorTrendChart renders the top constructors' points-per-season lines.
func (ws *WebServer) handleConstructorTrendChart(w http.ResponseWriter, r *http.Request) {
	standings, err := ws.pipeline.ConstructorStandings(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute constructor standings: %v", err))
		return
	}
	if len(standings) == 0 {
		ws.writeJSONError(w, http.StatusNotFound, "no constructor results loaded")
		return
	}

	data := PrepareTrendChartData(standings)
	ws.renderTrendChart(w, data, "Constructor Trends",
		fmt.Sprintf("top %d constructors by cumulative points", len(data.Series)))
}

func (ws *WebServer) renderTrendChart(w http.ResponseWriter, data *TrendChartData, title, subtitle string) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Points"}),
	)

	line.SetXAxis(seasonLabels(data.Seasons))
	for _, series := range data.Series {
		points := make([]opts.LineData, len(series.Values))
		for i, v := range series.Values {
			if v == nil {
				// Gap, not zero: echarts skips "-" values.
				points[i] = opts.LineData{Value: "-"}
				continue
			}
			points[i] = opts.LineData{Value: *v}
		}
		line.AddSeries(series.Name, points,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false), ShowSymbol: opts.Bool(true)}),
		)
	}

	ws.renderChart(w, line)
}

// handlePodiumHeatmapChart renders podium counts per driver as a heatmap.
func (ws *WebServer) handlePodiumHeatmapChart(w http.ResponseWriter, r *http.Request) {
	rows, err := ws.pipeline.PodiumTable(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute podium table: %v", err))
		return
	}
	if len(rows) == 0 {
		ws.writeJSONError(w, http.StatusNotFound, "no podium finishes loaded")
		return
	}

	data := PreparePodiumChartData(rows)

	cells := make([]opts.HeatMapData, 0, len(data.Cells))
	for _, c := range data.Cells {
		cells = append(cells, opts.HeatMapData{Value: [3]interface{}{c.X, c.Y, c.Value}})
	}

	maxCount := data.MaxCount
	if maxCount == 0 {
		maxCount = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Podium Appearances", Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Podium Appearances", Subtitle: fmt.Sprintf("top %d drivers by podium finishes", len(data.Drivers))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: data.Positions, Name: "Position"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: data.Drivers}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: heatmapColors},
		}),
	)
	hm.AddSeries("podiums", cells, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	ws.renderChart(w, hm)
}

// handleProjectionChart renders the projected-points bar chart with the
// top-3 headline in the subtitle.
func (ws *WebServer) handleProjectionChart(w http.ResponseWriter, r *http.Request) {
	projected, err := ws.pipeline.Projection(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute projection: %v", err))
		return
	}
	if len(projected) == 0 {
		ws.writeJSONError(w, http.StatusNotFound, "no recent results to project from")
		return
	}

	data := PrepareProjectionChartData(projected)

	bars := make([]opts.BarData, len(data.Values))
	for i, v := range data.Values {
		bars[i] = opts.BarData{Value: v}
	}

	subtitle := fmt.Sprintf("recent-form average x %d races", data.Races)
	headline := ""
	for _, h := range data.Headline {
		headline += fmt.Sprintf("  %d. %s ~%d pts", h.Rank, h.Driver, h.Points)
	}
	if headline != "" {
		subtitle += " | projected podium:" + headline
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Projected Points", Theme: "dark", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Projected Points (Next Season)", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Points"}),
	)
	bar.SetXAxis(data.Drivers).
		AddSeries("projected", bars,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	ws.renderChart(w, bar)
}

// renderer is the common surface of go-echarts chart types.
type renderer interface {
	Render(w io.Writer) error
}

func (ws *WebServer) renderChart(w http.ResponseWriter, chart renderer) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
