package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const registrationColumns = `r.id, r.event_id, r.attendee_id, r.pass_id, r.pass_seq, r.status,
	COALESCE(array_agg(s.occurrence_id::text) FILTER (WHERE s.occurrence_id IS NOT NULL), '{}'),
	r.created_at, r.updated_at`

// Admit performs the whole admission write as one transaction.
//
// The event row is locked with FOR UPDATE so the capacity count cannot
// go stale between read and insert, and the pass counter row is bumped
// with UPDATE ... RETURNING inside the same transaction. Two concurrent
// admissions therefore serialize on the event row and can never mint
// the same pass value. A naive "SELECT max(pass_seq) + 1" would hand
// both of them the same number.
func (r *RegistrationRepository) Admit(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity *int
	if err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, reg.EventID,
	).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	// Cancellation does not release a seat: the live count covers every
	// registration regardless of status.
	var count int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, reg.EventID,
	).Scan(&count); err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if capacity != nil && *capacity > 0 && count >= *capacity {
		return domain.ErrCapacityExceeded
	}

	var seq int64
	if err = tx.QueryRowContext(ctx,
		`UPDATE pass_counters SET value = value + 1 WHERE id = 1 RETURNING value`,
	).Scan(&seq); err != nil {
		return fmt.Errorf("allocate pass: %w", err)
	}

	now := time.Now().UTC()
	passID := domain.FormatPassID(seq)
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO registrations (id, event_id, attendee_id, pass_id, pass_seq, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		reg.ID, reg.EventID, reg.AttendeeID, passID, seq, domain.StatusRegistered, now,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.Constraint, "attendee") {
				return domain.ErrDuplicateRegistration
			}
			return domain.ErrAdmissionConflict
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	// The subquery re-checks occurrence ownership under the lock; a
	// selection pointing at another event inserts zero rows here.
	res, err := tx.ExecContext(ctx,
		`INSERT INTO registration_occurrence_selections (registration_id, occurrence_id)
		 SELECT $1, id FROM occurrences WHERE id = ANY($2) AND event_id = $3`,
		reg.ID, pq.Array(reg.OccurrenceIDs), reg.EventID,
	)
	if err != nil {
		return fmt.Errorf("insert selections: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("selection rows affected: %w", err)
	}
	if inserted != int64(len(reg.OccurrenceIDs)) {
		return fmt.Errorf("%w: selection references occurrence outside event", domain.ErrValidation)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit admission: %w", err)
	}

	reg.PassID = passID
	reg.PassSeq = seq
	reg.Status = domain.StatusRegistered
	reg.CreatedAt = now
	reg.UpdatedAt = now

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	return r.getOne(ctx, `r.id = $1`, id)
}

func (r *RegistrationRepository) GetByEventAndAttendee(ctx context.Context, eventID, attendeeID string) (*domain.Registration, error) {
	return r.getOne(ctx, `r.event_id = $1 AND r.attendee_id = $2`, eventID, attendeeID)
}

func (r *RegistrationRepository) GetByPassID(ctx context.Context, passID string) (*domain.Registration, error) {
	return r.getOne(ctx, `r.pass_id = $1`, passID)
}

func (r *RegistrationRepository) getOne(ctx context.Context, where string, args ...any) (*domain.Registration, error) {
	query := fmt.Sprintf(
		`SELECT %s
		 FROM registrations r
		 LEFT JOIN registration_occurrence_selections s ON s.registration_id = r.id
		 WHERE %s
		 GROUP BY r.id`, registrationColumns, where)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

// FindByPassDigits matches pass ids whose numeric part contains the
// given digit string, used as the last-resort resolution step when an
// operator types only the number from the badge.
func (r *RegistrationRepository) FindByPassDigits(ctx context.Context, digits string) ([]*domain.Registration, error) {
	query := fmt.Sprintf(
		`SELECT %s
		 FROM registrations r
		 LEFT JOIN registration_occurrence_selections s ON s.registration_id = r.id
		 WHERE regexp_replace(r.pass_id, '[^0-9]', '', 'g') LIKE '%%' || $1 || '%%'
		 GROUP BY r.id
		 ORDER BY r.pass_seq ASC
		 LIMIT 3`, registrationColumns)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, digits)
	if err != nil {
		return nil, fmt.Errorf("find by pass digits: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.RegistrationStatus) error {
	query := `UPDATE registrations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		var current string
		row, qErr := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT status FROM registrations WHERE id = $1`, id)
		if qErr != nil {
			return fmt.Errorf("check status: %w", qErr)
		}
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrRegistrationNotFound
		}
		return fmt.Errorf("%w: registration moved to %q concurrently", domain.ErrInvalidTransition, current)
	}

	return nil
}

// Allow-listed sort columns; anything else falls back to created_at.
var sortColumns = map[string]string{
	domain.SortByCreatedAt:     "r.created_at",
	domain.SortByStatus:        "r.status",
	domain.SortByAttendeeName:  "a.full_name",
	domain.SortByAttendeeEmail: "a.email",
	domain.SortByEventName:     "e.name",
}

func (r *RegistrationRepository) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	where := []string{"1=1"}
	args := []any{}

	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if q.Status != "" {
		add("r.status = $%d", q.Status)
	}
	if q.EventID != "" {
		add("r.event_id = $%d", q.EventID)
	}
	if q.OccurrenceID != "" {
		add(`EXISTS (SELECT 1 FROM registration_occurrence_selections so
			 WHERE so.registration_id = r.id AND so.occurrence_id = $%d)`, q.OccurrenceID)
	}
	if q.FreeText != "" {
		args = append(args, "%"+q.FreeText+"%")
		p := fmt.Sprintf("$%d", len(args))
		where = append(where,
			fmt.Sprintf("(a.full_name ILIKE %s OR a.email ILIKE %s OR r.pass_id ILIKE %s)", p, p, p))
	}

	cond := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*)
				   FROM registrations r
				   JOIN attendees a ON a.id = r.attendee_id
				   JOIN events e ON e.id = r.event_id
				   WHERE ` + cond

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("count search: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, fmt.Errorf("scan search count: %w", err)
	}

	sortCol, ok := sortColumns[q.SortBy]
	if !ok {
		sortCol = "r.created_at"
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}

	args = append(args, q.Limit, q.Offset)
	pageQuery := fmt.Sprintf(
		`SELECT r.id, r.event_id, e.name, r.attendee_id, a.full_name, a.email, a.company,
				r.pass_id, r.status, r.created_at
		 FROM registrations r
		 JOIN attendees a ON a.id = r.attendee_id
		 JOIN events e ON e.id = r.event_id
		 WHERE %s
		 ORDER BY %s %s, r.pass_seq ASC
		 LIMIT $%d OFFSET $%d`,
		cond, sortCol, dir, len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, pageQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("search registrations: %w", err)
	}
	defer rows.Close()

	result := &domain.SearchResult{Items: make([]domain.RegistrationView, 0), Total: total}
	for rows.Next() {
		var v domain.RegistrationView
		if err = rows.Scan(
			&v.ID, &v.EventID, &v.EventName, &v.AttendeeID, &v.AttendeeName,
			&v.AttendeeEmail, &v.Company, &v.PassID, &v.Status, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		result.Items = append(result.Items, v)
	}

	return result, rows.Err()
}

func (r *RegistrationRepository) ListDueReminders(ctx context.Context, window time.Duration) ([]domain.ReminderItem, error) {
	query := `SELECT s.registration_id, s.occurrence_id, r.pass_id,
					 a.email, a.full_name, e.name, o.start_time
			  FROM registration_occurrence_selections s
			  JOIN registrations r ON r.id = s.registration_id
			  JOIN attendees a ON a.id = r.attendee_id
			  JOIN occurrences o ON o.id = s.occurrence_id
			  JOIN events e ON e.id = r.event_id
			  WHERE s.reminded_at IS NULL
				AND r.status <> $1
				AND o.start_time > now()
				AND o.start_time <= now() + make_interval(secs => $2)
			  ORDER BY o.start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.StatusCancelled, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	var res []domain.ReminderItem
	for rows.Next() {
		var it domain.ReminderItem
		if err = rows.Scan(
			&it.RegistrationID, &it.OccurrenceID, &it.PassID,
			&it.AttendeeEmail, &it.AttendeeName, &it.EventName, &it.StartTime,
		); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		res = append(res, it)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) MarkReminded(ctx context.Context, registrationID, occurrenceID string) error {
	query := `UPDATE registration_occurrence_selections
			  SET reminded_at = now()
			  WHERE registration_id = $1 AND occurrence_id = $2`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, registrationID, occurrenceID); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	return nil
}

func scanRegistration(scan func(dest ...any) error) (*domain.Registration, error) {
	var reg domain.Registration
	var occIDs pq.StringArray
	if err := scan(
		&reg.ID, &reg.EventID, &reg.AttendeeID, &reg.PassID, &reg.PassSeq,
		&reg.Status, &occIDs, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	reg.OccurrenceIDs = occIDs
	return &reg, nil
}
