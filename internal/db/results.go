package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/paddock-data/apex.report/internal/results"
)

// NameTotal is a cumulative point total for one driver or constructor.
type NameTotal struct {
	Name  string
	Total float64
}

// SeasonTotal is a per-season point total for one driver or constructor.
type SeasonTotal struct {
	Name   string
	Season int
	Total  float64
}

// PodiumCount is the number of finishes at one podium position for a driver.
type PodiumCount struct {
	Driver   string
	Position int
	Count    int
}

// EntryPoints is one race entry's points for a driver, used to feed the
// recent-form average.
type EntryPoints struct {
	Driver string
	Points float64
}

// ReplaceResults clears the results table and inserts the given batch under
// runID in a single transaction. The pipeline is batch-or-nothing, so a
// reload always starts from an empty table.
func (db *DB) ReplaceResults(ctx context.Context, runID string, records []results.Record) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM race_results`); err != nil {
		return fmt.Errorf("failed to clear race_results: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO race_results (run_id, season, driver, constructor, position, points)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var pos sql.NullInt64
		if rec.Position != nil {
			pos = sql.NullInt64{Int64: int64(*rec.Position), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, runID, rec.Season, rec.Driver, rec.Constructor, pos, rec.Points); err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", rec.Driver, err)
		}
	}

	return tx.Commit()
}

// DriverTotals returns cumulative points per driver across all seasons,
// highest first. Equal totals order by driver name.
func (db *DB) DriverTotals(ctx context.Context) ([]NameTotal, error) {
	return db.nameTotals(ctx, "driver")
}

// ConstructorTotals returns cumulative points per constructor across all
// seasons, highest first. Equal totals order by constructor name.
func (db *DB) ConstructorTotals(ctx context.Context) ([]NameTotal, error) {
	return db.nameTotals(ctx, "constructor")
}

func (db *DB) nameTotals(ctx context.Context, column string) ([]NameTotal, error) {
	query := fmt.Sprintf(`
		SELECT %s, SUM(points) AS total
		FROM race_results
		GROUP BY %s
		ORDER BY total DESC, %s ASC
	`, column, column, column)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s totals: %w", column, err)
	}
	defer rows.Close()

	var totals []NameTotal
	for rows.Next() {
		var t NameTotal
		if err := rows.Scan(&t.Name, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan %s total: %w", column, err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// DriverSeasonTotals returns per-season point totals for the named drivers,
// ordered by driver then season.
func (db *DB) DriverSeasonTotals(ctx context.Context, drivers []string) ([]SeasonTotal, error) {
	return db.seasonTotals(ctx, "driver", drivers)
}

// ConstructorSeasonTotals returns per-season point totals for the named
// constructors, ordered by constructor then season.
func (db *DB) ConstructorSeasonTotals(ctx context.Context, constructors []string) ([]SeasonTotal, error) {
	return db.seasonTotals(ctx, "constructor", constructors)
}

func (db *DB) seasonTotals(ctx context.Context, column string, names []string) ([]SeasonTotal, error) {
	if len(names) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
		SELECT %s, season, SUM(points) AS total
		FROM race_results
		WHERE %s IN (%s)
		GROUP BY %s, season
		ORDER BY %s ASC, season ASC
	`, column, column, placeholders, column, column)

	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s season totals: %w", column, err)
	}
	defer rows.Close()

	var totals []SeasonTotal
	for rows.Next() {
		var t SeasonTotal
		if err := rows.Scan(&t.Name, &t.Season, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan %s season total: %w", column, err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// PodiumCounts returns finish counts per (driver, position) for positions
// 1 through 3. Rows without a numeric position never match the filter.
func (db *DB) PodiumCounts(ctx context.Context) ([]PodiumCount, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT driver, position, COUNT(*) AS finishes
		FROM race_results
		WHERE position BETWEEN 1 AND 3
		GROUP BY driver, position
		ORDER BY driver ASC, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query podium counts: %w", err)
	}
	defer rows.Close()

	var counts []PodiumCount
	for rows.Next() {
		var c PodiumCount
		if err := rows.Scan(&c.Driver, &c.Position, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan podium count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RecentEntryPoints returns the points of every race entry in seasons at or
// after sinceSeason, ordered by driver. Drivers with no entries in the
// window produce no rows.
func (db *DB) RecentEntryPoints(ctx context.Context, sinceSeason int) ([]EntryPoints, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT driver, points
		FROM race_results
		WHERE season >= ?
		ORDER BY driver ASC, season ASC, id ASC
	`, sinceSeason)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent entries: %w", err)
	}
	defer rows.Close()

	var entries []EntryPoints
	for rows.Next() {
		var e EntryPoints
		if err := rows.Scan(&e.Driver, &e.Points); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SampleResults returns the first limit rows of the current import in
// insertion order, so the raw data behind the charts stays inspectable.
func (db *DB) SampleResults(ctx context.Context, limit int) ([]results.Record, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT season, driver, constructor, position, points
		FROM race_results
		ORDER BY id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sample rows: %w", err)
	}
	defer rows.Close()

	var sample []results.Record
	for rows.Next() {
		var rec results.Record
		var pos sql.NullInt64
		if err := rows.Scan(&rec.Season, &rec.Driver, &rec.Constructor, &pos, &rec.Points); err != nil {
			return nil, fmt.Errorf("failed to scan sample row: %w", err)
		}
		if pos.Valid {
			p := int(pos.Int64)
			rec.Position = &p
		}
		sample = append(sample, rec)
	}
	return sample, rows.Err()
}

// Seasons returns the distinct seasons present in the table, ascending.
func (db *DB) Seasons(ctx context.Context) ([]int, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT DISTINCT season FROM race_results ORDER BY season ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	var seasons []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}
