package models

import "time"

// Inquiry status constants
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Statuses lists every valid inquiry status in workflow order
var Statuses = []string{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

// ValidStatus reports whether s is one of the enumerated statuses
func ValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Live channel message types
const (
	MessageOnlineCount = "online_count"
)

const TokenTypeBearer = "bearer"

// Request types

type CreateInquiryRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	ProjectType *string `json:"project_type,omitempty"`
	Budget      *string `json:"budget,omitempty"`
	Description string  `json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type OnlineCountResponse struct {
	Count int `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Admin   string `json:"admin"`
	Started string `json:"started"`
}

// Domain types

type Inquiry struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	ProjectType *string   `json:"project_type"`
	Budget      *string   `json:"budget"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Live channel messages

type OnlineCountMessage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
