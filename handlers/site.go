// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/middleware"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

//go:embed admin.html
var defaultAdminPage []byte

type SiteHandler struct {
	adminPagePath string
	started       time.Time
}

// NewSiteHandler serves the admin page from adminPagePath, or the embedded
// page when the path is empty
func NewSiteHandler(adminPagePath string) *SiteHandler {
	return &SiteHandler{adminPagePath: adminPagePath, started: time.Now()}
}

// Root handles GET /
func (h *SiteHandler) Root(w http.ResponseWriter, r *http.Request) {
	// The pattern "GET /" matches every unrouted path
	if r.URL.Path != "/" {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.InfoResponse{
		Message: "Resume Backend API",
		Version: Version,
		Admin:   "/admin",
		Started: humanize.Time(h.started),
	})
}

// AdminPage handles GET /admin
func (h *SiteHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	page := defaultAdminPage
	if h.adminPagePath != "" {
		b, err := os.ReadFile(h.adminPagePath)
		if err != nil {
			slog.Error("failed to read admin page", "path", h.adminPagePath, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Admin page unavailable")
			return
		}
		page = b
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		slog.Error("failed to write admin page", "error", err)
	}
}
