// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
)

var (
	ErrNotFound      = errors.New("inquiry not found")
	ErrInvalidStatus = errors.New("invalid inquiry status")
)

const inquiryColumns = `id, name, email, phone, project_type, budget, description, status, created_at`

// InquiryStore persists project inquiries
type InquiryStore struct {
	db     *sql.DB
	dbType string
}

func NewInquiryStore(db *sql.DB, dbType string) *InquiryStore {
	return &InquiryStore{db: db, dbType: dbType}
}

// Create inserts a new pending inquiry and returns the stored record
func (s *InquiryStore) Create(ctx context.Context, req models.CreateInquiryRequest) (models.Inquiry, error) {
	inq := models.Inquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Description: req.Description,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	err := s.db.QueryRowContext(ctx, s.q(`
		INSERT INTO project_requests (name, email, phone, project_type, budget, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`), inq.Name, inq.Email, inq.Phone, inq.ProjectType, inq.Budget, inq.Description, inq.Status, inq.CreatedAt).Scan(&inq.ID)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("failed to insert inquiry: %w", err)
	}

	return inq, nil
}

// Get returns the inquiry with the given id, or ErrNotFound
func (s *InquiryStore) Get(ctx context.Context, id int64) (models.Inquiry, error) {
	row := s.db.QueryRowContext(ctx, s.q(`
		SELECT `+inquiryColumns+`
		FROM project_requests
		WHERE id = $1
	`), id)

	inq, err := scanInquiry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inquiry{}, ErrNotFound
	}
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("failed to query inquiry: %w", err)
	}
	return inq, nil
}

// List returns up to limit inquiries in insertion order, skipping the first skip
func (s *InquiryStore) List(ctx context.Context, skip, limit int) ([]models.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT `+inquiryColumns+`
		FROM project_requests
		ORDER BY id
		LIMIT $1 OFFSET $2
	`), limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inquiries: %w", err)
	}

	return inquiries, nil
}

// UpdateStatus sets the status of an inquiry and returns the updated record
func (s *InquiryStore) UpdateStatus(ctx context.Context, id int64, status string) (models.Inquiry, error) {
	if !models.ValidStatus(status) {
		return models.Inquiry{}, ErrInvalidStatus
	}

	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE project_requests
		SET status = $1
		WHERE id = $2
	`), status, id)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("failed to update inquiry status: %w", err)
	}
	if n == 0 {
		return models.Inquiry{}, ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete permanently removes an inquiry
func (s *InquiryStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM project_requests WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *InquiryStore) q(query string) string {
	return rebind(s.dbType, query)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row scanner) (models.Inquiry, error) {
	var inq models.Inquiry
	err := row.Scan(
		&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.ProjectType,
		&inq.Budget, &inq.Description, &inq.Status, &inq.CreatedAt,
	)
	if err != nil {
		return models.Inquiry{}, err
	}
	inq.CreatedAt = inq.CreatedAt.UTC()
	return inq, nil
}
