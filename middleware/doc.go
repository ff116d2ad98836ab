// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). The wrapped writer still supports hijacking, so websocket
routes can be logged too.

# Admin Authentication

Protect admin routes with a bearer token check:

	mux.HandleFunc("GET /api/requests",
		middleware.WithLogging(middleware.RequireAdmin(issuer, h.List)))

Missing or malformed Authorization headers get 401 "Not authenticated",
expired tokens 401 "Token expired", and anything else 401 "Invalid token".
The verified subject is available through AdminFromContext.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type and Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, map[string]string{"email": "is required"})

Parse JSON request bodies:

	var req models.CreateInquiryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

Bodies are capped at MaxBodyBytes. BodyErrorResponse answers 413 for an
oversized body, 422 with a field detail for a value of the wrong JSON type,
and 400 for malformed JSON.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
