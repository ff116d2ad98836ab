// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and inquiry storage.

# Drivers

Open picks a driver from the configured database type:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite (pure Go, default, single connection)
  - postgres: github.com/lib/pq

Queries are written with $N placeholders and rewritten for sqlite.

# Schema Creation

CreateSchema initializes all required tables for the given database type:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - project_requests: Submitted project inquiries

The status column is constrained to pending, reviewed, accepted, rejected.

# Inquiry Store

	store := db.NewInquiryStore(conn, cfg.DatabaseType)
	inq, err := store.Create(ctx, req)
	page, err := store.List(ctx, skip, limit)
	inq, err = store.UpdateStatus(ctx, id, models.StatusReviewed)
	err = store.Delete(ctx, id)

Missing records are reported as ErrNotFound.
*/
package db
