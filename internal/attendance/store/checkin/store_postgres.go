package checkin

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"attendsync/internal/attendance/models"
	"attendsync/pkg/platform/sentinel"
	txcontext "attendsync/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists checkins. The checkins table carries a unique index
// on (employee_id, punch_time) so a concurrent writer racing the duplicate
// check surfaces as a conflict instead of a silent duplicate.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) querier(ctx context.Context) dbQuerier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Exists(ctx context.Context, employeeID uuid.UUID, at time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM checkins WHERE employee_id = $1 AND punch_time = $2
		)
	`
	var exists bool
	err := s.querier(ctx).QueryRowContext(ctx, query, employeeID, at).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check existing checkin: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) Create(ctx context.Context, checkin models.Checkin) error {
	id := checkin.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO checkins (id, employee_id, punch_time, log_type, device_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, punch_time) DO NOTHING
	`
	result, err := s.querier(ctx).ExecContext(ctx, query,
		id,
		checkin.EmployeeID,
		checkin.Time,
		string(checkin.LogType),
		checkin.DeviceID,
	)
	if err != nil {
		return fmt.Errorf("insert checkin: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert checkin: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("checkin for employee %s at %s: %w",
			checkin.EmployeeID, checkin.Time.Format(time.RFC3339), sentinel.ErrConflict)
	}
	return nil
}

// ListByEmployee returns an employee's checkins ordered by time. Used by
// integration tests to verify pass outcomes.
func (s *PostgresStore) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Checkin, error) {
	query := `
		SELECT id, employee_id, punch_time, log_type, device_id
		FROM checkins
		WHERE employee_id = $1
		ORDER BY punch_time
	`
	rows, err := s.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("query checkins: %w", err)
	}
	defer rows.Close()

	var checkins []models.Checkin
	for rows.Next() {
		var (
			checkin models.Checkin
			logType string
		)
		if err := rows.Scan(&checkin.ID, &checkin.EmployeeID, &checkin.Time, &logType, &checkin.DeviceID); err != nil {
			return nil, fmt.Errorf("scan checkin: %w", err)
		}
		checkin.LogType = models.PunchType(logType)
		checkins = append(checkins, checkin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkins: %w", err)
	}
	return checkins, nil
}
