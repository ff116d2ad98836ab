// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the resume backend API server.

The server accepts project inquiries from the public site, lets a single
admin review them, and pushes the number of connected visitors to every
open websocket.

# Starting the Server

The server reads environment variables (optionally from a .env file) or CLI
flags:

	SECRET_KEY=... ADMIN_PASSWORD=... go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..." -secret-key ... -admin-password ...

# Configuration

Required settings:

  - SECRET_KEY (-secret-key): Admin token signing key
  - ADMIN_PASSWORD (-admin-password): Admin login password

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Database DSN (default: file:resume.db)
  - ADMIN_USERNAME (-admin-user): Admin login name (default: admin)
  - TOKEN_TTL (-token-ttl): Admin token lifetime (default: 24h)
  - ADMIN_PAGE (-admin-page): Admin HTML file (default: embedded page)
  - LOG_LEVEL, LOG_FORMAT: Logging (default: info, auto)

# Architecture

  - handlers: HTTP request handlers (inquiries, auth, live count, site)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin token guard, JSON helpers
  - realtime: Live viewer registry and websocket connections
  - models: Request/response types
  - auth: Admin login and token issuance
  - db: Driver selection, schema, inquiry store
  - cliparse: Configuration parsing
  - logging: slog setup

See package documentation for each component.
*/
package main
