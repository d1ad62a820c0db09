package employee

import (
	"context"
	"database/sql"
	"fmt"

	"attendsync/internal/attendance/models"
	"attendsync/pkg/platform/sentinel"
	txcontext "attendsync/pkg/platform/tx"
)

// PostgresStore resolves employees from the employees table.
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

// ByDeviceID resolves the employee enrolled under an attendance device id.
// The LIMIT 2 scan distinguishes "exactly one" from "more than one": sharing
// a device id across employees is a data-integrity fault the caller must see,
// not a coin flip.
func (s *PostgresStore) ByDeviceID(ctx context.Context, attendanceDeviceID string) (models.Employee, error) {
	if attendanceDeviceID == "" {
		return models.Employee{}, fmt.Errorf("lookup employee: %w", sentinel.ErrNotFound)
	}

	query := `
		SELECT id, name, attendance_device_id
		FROM employees
		WHERE attendance_device_id = $1
		LIMIT 2
	`
	rows, err := s.querier(ctx).QueryContext(ctx, query, attendanceDeviceID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("query employee by device id: %w", err)
	}
	defer rows.Close()

	var matches []models.Employee
	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.AttendanceDeviceID); err != nil {
			return models.Employee{}, fmt.Errorf("scan employee: %w", err)
		}
		matches = append(matches, emp)
	}
	if err := rows.Err(); err != nil {
		return models.Employee{}, fmt.Errorf("iterate employees: %w", err)
	}

	switch len(matches) {
	case 0:
		return models.Employee{}, fmt.Errorf("no employee for device id %q: %w", attendanceDeviceID, sentinel.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Employee{}, fmt.Errorf("device id %q maps to multiple employees: %w", attendanceDeviceID, sentinel.ErrAmbiguous)
	}
}

// Create inserts an employee record. Used by integration tests and seeding.
func (s *PostgresStore) Create(ctx context.Context, emp models.Employee) error {
	query := `
		INSERT INTO employees (id, name, attendance_device_id)
		VALUES ($1, $2, NULLIF($3, ''))
	`
	_, err := s.querier(ctx).ExecContext(ctx, query, emp.ID, emp.Name, emp.AttendanceDeviceID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}
