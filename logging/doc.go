// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging configures the default slog logger. Output goes to stderr
// as text when attached to a terminal and as JSON otherwise, with UTC
// timestamps. Packages log through the slog top-level functions.
package logging
