// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package ingest loads the movie and user CSV datasets into a repository.
//
// # Pipeline
//
//	movies.csv / users.csv
//	       ↓
//	CSVReader (DuckDB read_csv into in-memory tables)
//	       ↓
//	Mapper (validate, parse, intern actors, link colleagues)
//	       ↓
//	repository.Indexer (one atomic registration per movie)
//
// # Movie CSV
//
// Columns in order: Rank, Title, Genre, Description, Director, Actors,
// Year, Runtime (Minutes), Rating, Votes, Revenue (Millions), Metascore.
// Genre and Actors are comma-separated. Rows without a positive rank or a
// title are skipped. Unparseable optional fields are left unset.
//
// # User CSV
//
// Columns: id, username, password. Passwords are hashed with the
// configured PasswordHasher unless IngestConfig.PasswordsHashed is set.
// Usernames already present in the repository are skipped.
package ingest
