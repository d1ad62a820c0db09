package staging

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"attendsync/internal/attendance/models"
	txcontext "attendsync/pkg/platform/tx"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStore persists staged punches in the staging_punches table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) querier(ctx context.Context) dbQuerier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) ListPending(ctx context.Context) ([]models.StagedPunch, error) {
	query := `
		SELECT id, attendance_device_id, punch_time, punch_type, device_id, status
		FROM staging_punches
		WHERE status = $1
		ORDER BY punch_time
	`
	rows, err := s.querier(ctx).QueryContext(ctx, query, string(models.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("query pending punches: %w", err)
	}
	defer rows.Close()

	var punches []models.StagedPunch
	for rows.Next() {
		var (
			punch     models.StagedPunch
			punchType string
			status    string
		)
		err := rows.Scan(
			&punch.ID,
			&punch.AttendanceDeviceID,
			&punch.Timestamp,
			&punchType,
			&punch.DeviceID,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan staged punch: %w", err)
		}
		punch.PunchType = models.PunchType(punchType)
		punch.Status = models.PunchStatus(status)
		punches = append(punches, punch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staged punches: %w", err)
	}
	return punches, nil
}

func (s *PostgresStore) SetStatus(ctx context.Context, id uuid.UUID, status models.PunchStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid punch status %q", status)
	}

	query := `UPDATE staging_punches SET status = $1 WHERE id = $2`
	result, err := s.querier(ctx).ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update punch status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update punch status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update punch status: no record %s", id)
	}
	return nil
}

func (s *PostgresStore) CountByStatusOn(ctx context.Context, day time.Time, statuses []models.PunchStatus) ([]models.StatusCount, error) {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}

	query := `
		SELECT status, COUNT(*)
		FROM staging_punches
		WHERE status = ANY($1)
		AND punch_time >= $2 AND punch_time < $3
		GROUP BY status
	`
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := s.querier(ctx).QueryContext(ctx, query, pq.Array(names), start, end)
	if err != nil {
		return nil, fmt.Errorf("count punches by status: %w", err)
	}
	defer rows.Close()

	var counts []models.StatusCount
	for rows.Next() {
		var (
			status string
			count  models.StatusCount
		)
		if err := rows.Scan(&status, &count.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		count.Status = models.PunchStatus(status)
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}
	return counts, nil
}

// Create inserts a staged punch. Ingestion normally does this upstream; the
// store exposes it for integration tests and backfills.
func (s *PostgresStore) Create(ctx context.Context, punch models.StagedPunch) error {
	query := `
		INSERT INTO staging_punches (id, attendance_device_id, punch_time, punch_type, device_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.querier(ctx).ExecContext(ctx, query,
		punch.ID,
		punch.AttendanceDeviceID,
		punch.Timestamp,
		string(punch.PunchType),
		punch.DeviceID,
		string(punch.Status),
	)
	if err != nil {
		return fmt.Errorf("insert staged punch: %w", err)
	}
	return nil
}
