// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

main loads a .env file before calling ParseFlags, so values from .env behave
exactly like real environment variables.

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: sqlite DSN or PostgreSQL connection string (default: file:resume.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SecretKey: Token signing key (required)
  - AdminUsername: Admin login name (default: admin)
  - AdminPassword: Admin login password (required)
  - TokenTTL: Admin token lifetime (default: 24h)
  - AdminPagePath: Admin HTML page on disk (default: embedded page)
  - LogLevel, LogFormat: See package logging

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-secret-key       Token signing key
	-admin-user       Admin username
	-admin-password   Admin password
	-token-ttl        Token lifetime (Go duration, e.g. 12h)
	-admin-page       Admin page path
	-log-level        debug, info, warn, error
	-log-format       auto, text, json

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, SECRET_KEY, ADMIN_USERNAME,
	ADMIN_PASSWORD, TOKEN_TTL, ADMIN_PAGE, LOG_LEVEL, LOG_FORMAT

CLI flags take precedence over environment variables. Secrets should be
passed through the environment in production.
*/
package cliparse
