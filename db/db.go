// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/cliparse"
)

// Open connects to the configured database and verifies the connection.
// dbType is cliparse.DatabaseSQLite or cliparse.DatabasePostgres.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// sqlite allows a single writer; one connection also keeps :memory: databases alive
	if dbType == cliparse.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// rebind rewrites $N placeholders to ? for sqlite.
// Queries must use each placeholder once, in ascending order.
func rebind(dbType, query string) string {
	if dbType != cliparse.DatabaseSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}
