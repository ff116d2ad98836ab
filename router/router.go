// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/auth"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/cliparse"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/handlers"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/middleware"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/realtime"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, registry *realtime.Registry) http.Handler {
	mux := http.NewServeMux()

	issuer := auth.NewIssuer(cfg.SecretKey, cfg.AdminUsername, cfg.AdminPassword, cfg.TokenTTL)

	// Initialize handlers
	inquiryHandler := handlers.NewInquiryHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(issuer)
	liveHandler := handlers.NewLiveHandler(registry)
	siteHandler := handlers.NewSiteHandler(cfg.AdminPagePath)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(issuer, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Inquiry submission (public)
	mux.HandleFunc("POST /api/requests", middleware.WithLogging(inquiryHandler.CreateInquiry))

	// Inquiry management (admin, requires bearer token)
	mux.HandleFunc("GET /api/requests", admin(inquiryHandler.ListInquiries))
	mux.HandleFunc("GET /api/requests/{id}", admin(inquiryHandler.GetInquiry))
	mux.HandleFunc("PATCH /api/requests/{id}/status", admin(inquiryHandler.UpdateStatus))
	mux.HandleFunc("DELETE /api/requests/{id}", admin(inquiryHandler.DeleteInquiry))

	// Authentication
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))

	// Live viewer count
	mux.HandleFunc("GET /api/online-count", middleware.WithLogging(liveHandler.OnlineCount))
	mux.HandleFunc("GET /ws", middleware.WithLogging(liveHandler.Subscribe))

	// Site
	mux.HandleFunc("GET /admin", middleware.WithLogging(siteHandler.AdminPage))
	mux.HandleFunc("GET /", middleware.WithLogging(siteHandler.Root))

	return middleware.CORS(mux)
}
