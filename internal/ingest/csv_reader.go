// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	// DuckDB driver - read_csv parses the dataset files
	_ "github.com/duckdb/duckdb-go/v2"
)

// movieColumns names the movie CSV columns in file order. The header row is
// skipped and replaced by these names.
var movieColumns = []string{
	"rank", "title", "genre", "description", "director", "actors",
	"year", "runtime", "rating", "votes", "revenue", "metascore",
}

var userColumns = []string{"id", "username", "password"}

// CSVReader loads dataset CSV files into an in-memory DuckDB database and
// reads them back in row order.
type CSVReader struct {
	db *sql.DB
}

// NewCSVReader opens an in-memory DuckDB connection.
func NewCSVReader() (*CSVReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	// One connection keeps the in-memory tables visible to every query.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return &CSVReader{db: db}, nil
}

// Close closes the database connection.
func (r *CSVReader) Close() error {
	return r.db.Close()
}

// LoadMovies reads the movie CSV at path into the movies table and returns
// the number of data rows.
func (r *CSVReader) LoadMovies(ctx context.Context, path string) (int64, error) {
	return r.loadTable(ctx, "movies", path, movieColumns)
}

// LoadUsers reads the user CSV at path into the users table and returns
// the number of data rows.
func (r *CSVReader) LoadUsers(ctx context.Context, path string) (int64, error) {
	return r.loadTable(ctx, "users", path, userColumns)
}

func (r *CSVReader) loadTable(ctx context.Context, table, path string, columns []string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv(%s, header = true, quote = '\"', escape = '\"', columns = %s)",
		table, quoteLiteral(path), columnSpec(columns),
	)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return 0, fmt.Errorf("read_csv %s: %w", path, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// ReadMovieBatch reads up to limit movie rows after sinceRow, in file order.
// Rows are numbered from 1.
func (r *CSVReader) ReadMovieBatch(ctx context.Context, sinceRow int64, limit int) ([]MovieRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			rowid + 1 AS row_num,
			rank, title, genre, description, director, actors,
			year, runtime, rating, votes, revenue, metascore
		FROM movies
		WHERE rowid + 1 > ?
		ORDER BY rowid ASC
		LIMIT ?
	`, sinceRow, limit)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var records []MovieRecord
	for rows.Next() {
		var rec MovieRecord
		var fields [12]sql.NullString
		dest := []any{&rec.Row}
		for i := range fields {
			dest = append(dest, &fields[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}

		rec.Rank = fields[0].String
		rec.Title = fields[1].String
		rec.Genre = fields[2].String
		rec.Description = fields[3].String
		rec.Director = fields[4].String
		rec.Actors = fields[5].String
		rec.Year = fields[6].String
		rec.Runtime = fields[7].String
		rec.Rating = fields[8].String
		rec.Votes = fields[9].String
		rec.Revenue = fields[10].String
		rec.Metascore = fields[11].String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return records, nil
}

// ReadUsers reads every user row in file order.
func (r *CSVReader) ReadUsers(ctx context.Context) ([]UserRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT rowid + 1 AS row_num, id, username, password FROM users ORDER BY rowid ASC")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var records []UserRecord
	for rows.Next() {
		var rec UserRecord
		var id, username, password sql.NullString
		if err := rows.Scan(&rec.Row, &id, &username, &password); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		rec.ID, rec.Username, rec.Password = id.String, username.String, password.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return records, nil
}

// GetYearRange returns the lowest and highest parseable year in the movies
// table. Both are zero when no row has a numeric year.
func (r *CSVReader) GetYearRange(ctx context.Context) (earliest, latest int, err error) {
	var lo, hi sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		"SELECT MIN(TRY_CAST(year AS INTEGER)), MAX(TRY_CAST(year AS INTEGER)) FROM movies",
	).Scan(&lo, &hi)
	if err != nil {
		return 0, 0, fmt.Errorf("get year range: %w", err)
	}
	return int(lo.Int64), int(hi.Int64), nil
}

// columnSpec renders a read_csv columns struct typing every column VARCHAR.
func columnSpec(columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = quoteLiteral(c) + ": 'VARCHAR'"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
