package dashboard

import (
	"fmt"
	"net/http"
)

// JSON endpoints returning the prepared chart series directly, so the data
// behind each panel stays inspectable without scraping the echarts pages.

func (ws *WebServer) handleSampleJSON(w http.ResponseWriter, r *http.Request) {
	rows, err := ws.pipeline.Sample(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read sample rows: %v", err))
		return
	}
	ws.writeJSON(w, http.StatusOK, SampleData{Rows: rows})
}

func (ws *WebServer) handleDriverTrendJSON(w http.ResponseWriter, r *http.Request) {
	standings, err := ws.pipeline.DriverStandings(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute driver standings: %v", err))
		return
	}
	ws.writeJSON(w, http.StatusOK, PrepareTrendChartData(standings))
}

func (ws *WebServer) handleConstructorTrendJSON(w http.ResponseWriter, r *http.Request) {
	standings, err := ws.pipeline.ConstructorStandings(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute constructor standings: %v", err))
		return
	}
	ws.writeJSON(w, http.StatusOK, PrepareTrendChartData(standings))
}

func (ws *WebServer) handlePodiumJSON(w http.ResponseWriter, r *http.Request) {
	rows, err := ws.pipeline.PodiumTable(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute podium table: %v", err))
		return
	}
	ws.writeJSON(w, http.StatusOK, PreparePodiumChartData(rows))
}

func (ws *WebServer) handleProjectionJSON(w http.ResponseWriter, r *http.Request) {
	projected, err := ws.pipeline.Projection(r.Context())
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute projection: %v", err))
		return
	}
	ws.writeJSON(w, http.StatusOK, PrepareProjectionChartData(projected))
}
