// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the resume backend API.

# Route Registration

NewRouter creates the CORS-wrapped handler with all endpoints:

	handler := router.NewRouter(db, cfg, registry)

The live-count registry is created by the caller so it can be closed on
shutdown.

# Endpoints

Health and info:

	GET /health - Liveness probe
	GET /       - API name, version, start time
	GET /admin  - Admin HTML page

Inquiries:

	POST   /api/requests             - Submit inquiry (public)
	GET    /api/requests             - List (admin, ?skip=&limit=)
	GET    /api/requests/{id}        - Fetch (admin)
	PATCH  /api/requests/{id}/status - Change status (admin)
	DELETE /api/requests/{id}        - Delete (admin)

Authentication:

	POST /api/auth/login - Exchange admin credentials for a bearer token

Live viewer count (public):

	GET /api/online-count - Current count
	GET /ws               - Websocket push of {"type":"online_count","count":N}

# Handler Initialization

	inquiryHandler := handlers.NewInquiryHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(issuer)
	liveHandler := handlers.NewLiveHandler(registry)
	siteHandler := handlers.NewSiteHandler(cfg.AdminPagePath)

Admin routes are wrapped with middleware.RequireAdmin using an issuer built
from the configured secret key and admin identity.
*/
package router
