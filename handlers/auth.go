// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/auth"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/middleware"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
)

type AuthHandler struct {
	issuer *auth.Issuer
}

func NewAuthHandler(issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	token, err := h.issuer.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Warn("admin login failed", "username", req.Username, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("admin logged in", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
	})
}
