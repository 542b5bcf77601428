package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OccurrenceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOccurrenceRepo(db *dbpg.DB) *OccurrenceRepository {
	return &OccurrenceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Reconcile syncs the persisted schedule of one event to the desired
// list. Desired entries whose id belongs to the event are updates,
// entries without an id are creates, and any persisted occurrence
// missing from the desired list is deleted. A desired id the event does
// not own aborts the whole transaction. The final schedule is read back
// ordered by start time before commit.
func (r *OccurrenceRepository) Reconcile(ctx context.Context, eventID string, desired []domain.OccurrenceInput) ([]domain.Occurrence, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Lock the event row so concurrent reconciliations of the same
	// schedule serialize instead of interleaving deletes and inserts.
	var owner string
	if err = tx.QueryRowContext(ctx,
		`SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM occurrences WHERE event_id = $1`, eventID)
	if err != nil {
		return nil, fmt.Errorf("load occurrence ids: %w", err)
	}
	persisted := make(map[string]bool)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan occurrence id: %w", err)
		}
		persisted[id] = true
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate occurrence ids: %w", err)
	}

	var updates, creates []domain.OccurrenceInput
	kept := make(map[string]bool, len(desired))
	for _, d := range desired {
		switch {
		case d.ID == "":
			creates = append(creates, d)
		case persisted[d.ID]:
			updates = append(updates, d)
			kept[d.ID] = true
		default:
			return nil, fmt.Errorf("%w: occurrence %s does not belong to event %s",
				domain.ErrValidation, d.ID, eventID)
		}
	}

	var obsolete []string
	for id := range persisted {
		if !kept[id] {
			obsolete = append(obsolete, id)
		}
	}
	if len(obsolete) > 0 {
		// Selections referencing these rows cascade away with them.
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM occurrences WHERE event_id = $1 AND id = ANY($2)`,
			eventID, pq.Array(obsolete),
		); err != nil {
			return nil, fmt.Errorf("delete occurrences: %w", err)
		}
	}

	now := time.Now().UTC()
	for _, u := range updates {
		if _, err = tx.ExecContext(ctx,
			`UPDATE occurrences
			 SET start_time = $3, end_time = $4, location = $5, updated_at = $6
			 WHERE event_id = $1 AND id = $2`,
			eventID, u.ID, u.StartTime, u.EndTime, u.Location, now,
		); err != nil {
			return nil, wrapStartTimeConflict("update occurrence", err)
		}
	}

	for _, c := range creates {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO occurrences (id, event_id, start_time, end_time, location, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
			uuid.New().String(), eventID, c.StartTime, c.EndTime, c.Location, now,
		); err != nil {
			return nil, wrapStartTimeConflict("insert occurrence", err)
		}
	}

	final, err := listByEventTx(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	// The (event_id, start_time) constraint is deferred, so swapping or
	// shifting rows through each other's old slots is legal mid-tx and a
	// genuine collision in the final set only surfaces here.
	if err = tx.Commit(); err != nil {
		return nil, wrapStartTimeConflict("commit reconcile", err)
	}

	return final, nil
}

func (r *OccurrenceRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Occurrence, error) {
	query := `SELECT id, event_id, start_time, end_time, location, created_at, updated_at
			  FROM occurrences
			  WHERE event_id = $1
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	defer rows.Close()

	return scanOccurrences(rows)
}

func listByEventTx(ctx context.Context, tx *sql.Tx, eventID string) ([]domain.Occurrence, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, event_id, start_time, end_time, location, created_at, updated_at
		 FROM occurrences
		 WHERE event_id = $1
		 ORDER BY start_time ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("read back occurrences: %w", err)
	}
	defer rows.Close()

	return scanOccurrences(rows)
}

func scanOccurrences(rows *sql.Rows) ([]domain.Occurrence, error) {
	res := make([]domain.Occurrence, 0)
	for rows.Next() {
		var o domain.Occurrence
		if err := rows.Scan(
			&o.ID, &o.EventID, &o.StartTime, &o.EndTime, &o.Location,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func wrapStartTimeConflict(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicateStartTime
	}
	return fmt.Errorf("%s: %w", op, err)
}
