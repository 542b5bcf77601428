package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AttendeeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendeeRepo(db *dbpg.DB) *AttendeeRepository {
	return &AttendeeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// UpsertByEmail inserts a new attendee or merge-updates the existing
// row for the email. The merge fills only fields that are currently
// empty: a populated name, phone or company is never overwritten, and
// the email itself is never touched.
func (r *AttendeeRepository) UpsertByEmail(ctx context.Context, input domain.AttendeeInput) (*domain.Attendee, error) {
	query := `INSERT INTO attendees (id, email, full_name, phone, company, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)
			  ON CONFLICT (email) DO UPDATE SET
					full_name  = COALESCE(NULLIF(attendees.full_name, ''), EXCLUDED.full_name),
					phone      = COALESCE(NULLIF(attendees.phone, ''), EXCLUDED.phone),
					company    = COALESCE(NULLIF(attendees.company, ''), EXCLUDED.company),
					updated_at = EXCLUDED.updated_at
			  RETURNING id, email, full_name, phone, company, created_at, updated_at`

	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		uuid.New().String(), input.Email, input.FullName, input.Phone, input.Company, now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert attendee: %w", err)
	}

	var a domain.Attendee
	if err = row.Scan(
		&a.ID, &a.Email, &a.FullName, &a.Phone, &a.Company,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan attendee: %w", err)
	}

	return &a, nil
}

func (r *AttendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := `SELECT id, email, full_name, phone, company, created_at, updated_at
			  FROM attendees
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	var a domain.Attendee
	if err = row.Scan(
		&a.ID, &a.Email, &a.FullName, &a.Phone, &a.Company,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("scan attendee: %w", err)
	}

	return &a, nil
}
