package dashboard

import (
	"fmt"
	"html"
	"net/http"
)

// handleIndex renders the dashboard page: chart panels in iframes plus the
// load banner.
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		ws.writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	banner := html.EscapeString(ws.summary.String())
	doc := fmt.Sprintf(indexHTML, banner)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>Race Results Dashboard</title>
<style>
  body { background: #100c2a; color: #eee; font-family: sans-serif; margin: 0; padding: 1em; }
  h1 { font-size: 1.4em; }
  .banner { color: #9a9; font-size: 0.9em; margin-bottom: 1em; }
  .tabs { display: flex; gap: 0.5em; margin-bottom: 1em; }
  .tabs button { background: #1e1936; color: #eee; border: 1px solid #444; padding: 0.5em 1em; cursor: pointer; }
  .tabs button.active { background: #35b779; color: #000; }
  iframe { width: 100%%; height: 680px; border: 1px solid #333; background: #100c2a; display: none; }
  iframe.active { display: block; }
  details.sample { margin-top: 1em; }
  details.sample summary { cursor: pointer; color: #9a9; }
  details.sample table { border-collapse: collapse; margin-top: 0.5em; }
  details.sample th, details.sample td { border: 1px solid #333; padding: 0.3em 0.8em; text-align: left; }
</style>
</head>
<body>
<h1>Race Results Dashboard</h1>
<div class="banner">%s</div>
<div class="tabs">
  <button data-panel="drivers" class="active">Driver Performance</button>
  <button data-panel="constructors">Constructor Trends</button>
  <button data-panel="podiums">Podium Heatmap</button>
  <button data-panel="projection">Projection</button>
</div>
<iframe id="drivers" src="/charts/drivers" class="active"></iframe>
<iframe id="constructors" src="/charts/constructors"></iframe>
<iframe id="podiums" src="/charts/podiums"></iframe>
<iframe id="projection" src="/charts/projection"></iframe>
<details class="sample">
  <summary>View Sample Data</summary>
  <table id="sample-table"></table>
</details>
<script>
document.querySelectorAll('.tabs button').forEach(function (btn) {
  btn.addEventListener('click', function () {
    document.querySelectorAll('.tabs button').forEach(function (b) { b.classList.remove('active'); });
    document.querySelectorAll('iframe').forEach(function (f) { f.classList.remove('active'); });
    btn.classList.add('active');
    document.getElementById(btn.dataset.panel).classList.add('active');
  });
});

fetch('/api/sample').then(function (res) { return res.json(); }).then(function (data) {
  var rows = data.rows || [];
  var esc = function (v) {
    return String(v).replace(/&/g, '&amp;').replace(/</g, '&lt;').replace(/>/g, '&gt;');
  };
  var html = '<tr><th>Season</th><th>Driver</th><th>Constructor</th><th>Position</th><th>Points</th></tr>';
  rows.forEach(function (row) {
    var pos = row.position === null ? '' : row.position;
    html += '<tr><td>' + row.season + '</td><td>' + esc(row.driver) + '</td><td>' +
      esc(row.constructor) + '</td><td>' + pos + '</td><td>' + row.points + '</td></tr>';
  });
  document.getElementById('sample-table').innerHTML = html;
});
</script>
</body>
</html>
`
