// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the resume backend.

# Handler Types

Each handler is a struct holding its dependencies:

  - InquiryHandler: Project inquiry submission and admin management
  - AuthHandler: Admin login
  - LiveHandler: Live visitor count over websocket and HTTP
  - SiteHandler: API info and the admin page

Handlers are created via constructor functions:

	inquiryHandler := handlers.NewInquiryHandler(db, cfg)
	liveHandler := handlers.NewLiveHandler(registry)

# Inquiries

Anyone may submit an inquiry; everything else requires an admin token.

	POST   /api/requests             → CreateInquiry (status starts as pending)
	GET    /api/requests?skip=&limit= → ListInquiries
	GET    /api/requests/{id}        → GetInquiry
	PATCH  /api/requests/{id}/status → UpdateStatus
	DELETE /api/requests/{id}        → DeleteInquiry

Status is one of pending, reviewed, accepted, rejected. Invalid input is
answered with 422 and a per-field details map.

# Admin Authentication

	POST /api/auth/login → Login (returns access_token)

Admin operations require the header Authorization: Bearer <token>. The check
itself lives in middleware.RequireAdmin.

# Live Count

	GET /ws               → Subscribe
	GET /api/online-count → OnlineCount

Every websocket subscriber receives {"type":"online_count","count":N}
whenever someone connects or disconnects. Inbound messages are ignored.
*/
package handlers
