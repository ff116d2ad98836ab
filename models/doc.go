// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateInquiryRequest: name, email, phone, project_type, budget, description
  - UpdateStatusRequest: status
  - LoginRequest: username, password

# Response Types

Types for JSON responses:

  - TokenResponse: access_token, token_type
  - OnlineCountResponse: count
  - MessageResponse: message
  - InfoResponse: message, version, admin, started
  - ErrorResponse: error, message, details (field -> problem)

# Domain Types

  - Inquiry: a stored project inquiry

# Live Channel

Messages pushed to live-count subscribers:

  - OnlineCountMessage: {"type": "online_count", "count": N}

# Constants

Status values:

	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

Use ValidStatus to check user input against the enumeration.
*/
package models
