// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/cliparse"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/db"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/middleware"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type InquiryHandler struct {
	store *db.InquiryStore
	cfg   cliparse.Config
}

func NewInquiryHandler(conn *sql.DB, cfg cliparse.Config) *InquiryHandler {
	return &InquiryHandler{store: db.NewInquiryStore(conn, cfg.DatabaseType), cfg: cfg}
}

// CreateInquiry handles POST /api/requests
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInquiryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	// Validate input
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if details := validateInquiry(req); len(details) > 0 {
		middleware.ValidationErrorResponse(w, details)
		return
	}

	inq, err := h.store.Create(r.Context(), req)
	if err != nil {
		slog.Error("failed to create inquiry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create request")
		return
	}

	slog.Info("inquiry created", "inquiry_id", inq.ID, "email", inq.Email)

	middleware.JSONResponse(w, http.StatusCreated, inq)
}

// ListInquiries handles GET /api/requests?skip=&limit=
func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	details := map[string]string{}
	skip, ok := queryInt(r, "skip", 0)
	if !ok {
		details["skip"] = "must be a non-negative integer"
	}
	limit, ok := queryInt(r, "limit", defaultListLimit)
	if !ok {
		details["limit"] = "must be a non-negative integer"
	}
	if len(details) > 0 {
		middleware.ValidationErrorResponse(w, details)
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	inquiries, err := h.store.List(r.Context(), skip, limit)
	if err != nil {
		slog.Error("failed to list inquiries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, inquiries)
}

// GetInquiry handles GET /api/requests/{id}
func (h *InquiryHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	inq, err := h.store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Request not found")
		return
	}
	if err != nil {
		slog.Error("failed to query inquiry", "inquiry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, inq)
}

// UpdateStatus handles PATCH /api/requests/{id}/status
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	if !models.ValidStatus(req.Status) {
		middleware.ValidationErrorResponse(w, map[string]string{
			"status": "must be one of " + strings.Join(models.Statuses, ", "),
		})
		return
	}

	inq, err := h.store.UpdateStatus(r.Context(), id, req.Status)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Request not found")
		return
	}
	if err != nil {
		slog.Error("failed to update inquiry status", "inquiry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	slog.Info("inquiry status updated", "inquiry_id", id, "status", inq.Status, "admin", admin)

	middleware.JSONResponse(w, http.StatusOK, inq)
}

// DeleteInquiry handles DELETE /api/requests/{id}
func (h *InquiryHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Request not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete inquiry", "inquiry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	slog.Info("inquiry deleted", "inquiry_id", id, "admin", admin)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Request deleted successfully",
	})
}

// validateInquiry returns one message per invalid field
func validateInquiry(req models.CreateInquiryRequest) map[string]string {
	details := map[string]string{}

	if req.Name == "" {
		details["name"] = "is required"
	}

	if req.Email == "" {
		details["email"] = "is required"
	} else if !validEmail(req.Email) {
		details["email"] = "must be a valid email address"
	}

	if strings.TrimSpace(req.Description) == "" {
		details["description"] = "is required"
	}

	return details
}

// validEmail accepts a bare addr-spec whose domain has at least one dot
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// pathID parses the {id} path value, writing a 422 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ValidationErrorResponse(w, map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
