package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paddock-data/apex.report/internal/fsutil"
)

// Column header aliases accepted on input. Matching is case-insensitive
// after trimming whitespace.
var (
	seasonAliases      = []string{"year", "season"}
	driverAliases      = []string{"driver"}
	constructorAliases = []string{"constructor", "team"}
	positionAliases    = []string{"position"}
	pointsAliases      = []string{"points"}
)

// LoadCSV reads race results from path. A missing file returns a
// *LoadError wrapping ErrMissingInput; any other parse or column problem
// returns a *LoadError wrapping the underlying cause. Positions that fail
// integer parsing load as nil rather than failing the run.
func LoadCSV(fsys fsutil.FileSystem, path string) ([]Record, error) {
	if !fsys.Exists(path) {
		return nil, &LoadError{Path: path, Err: ErrMissingInput}
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("reading header: %w", err)}
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: %w", line, err)}
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Summarise builds the load banner for a batch of records under the given
// run ID.
func Summarise(runID string, records []Record) LoadSummary {
	s := LoadSummary{RunID: runID, Rows: len(records)}
	for i, r := range records {
		if i == 0 || r.Season < s.FirstSeason {
			s.FirstSeason = r.Season
		}
		if r.Season > s.LastSeason {
			s.LastSeason = r.Season
		}
	}
	return s
}

// columnIndexes holds the resolved position of each expected column.
type columnIndexes struct {
	season      int
	driver      int
	constructor int
	position    int
	points      int
}

func mapColumns(header []string) (columnIndexes, error) {
	find := func(aliases []string) (int, error) {
		for i, h := range header {
			name := strings.ToLower(strings.TrimSpace(h))
			for _, a := range aliases {
				if name == a {
					return i, nil
				}
			}
		}
		return 0, fmt.Errorf("missing expected column %q", aliases[0])
	}

	var cols columnIndexes
	var err error
	if cols.season, err = find(seasonAliases); err != nil {
		return cols, err
	}
	if cols.driver, err = find(driverAliases); err != nil {
		return cols, err
	}
	if cols.constructor, err = find(constructorAliases); err != nil {
		return cols, err
	}
	if cols.position, err = find(positionAliases); err != nil {
		return cols, err
	}
	if cols.points, err = find(pointsAliases); err != nil {
		return cols, err
	}
	return cols, nil
}

func parseRow(row []string, cols columnIndexes) (Record, error) {
	var rec Record

	season, err := strconv.Atoi(strings.TrimSpace(row[cols.season]))
	if err != nil {
		return rec, fmt.Errorf("failed to parse season: %v", err)
	}

	points, err := strconv.ParseFloat(strings.TrimSpace(row[cols.points]), 64)
	if err != nil {
		return rec, fmt.Errorf("failed to parse points: %v", err)
	}
	if points < 0 {
		return rec, fmt.Errorf("negative points value %v", points)
	}

	rec.Season = season
	rec.Driver = strings.TrimSpace(row[cols.driver])
	rec.Constructor = strings.TrimSpace(row[cols.constructor])
	rec.Points = points

	// Non-finishes carry markers like "DNF" or an empty field; those coerce
	// to a missing position instead of failing the row.
	if pos, err := strconv.Atoi(strings.TrimSpace(row[cols.position])); err == nil {
		rec.Position = &pos
	}

	return rec, nil
}
