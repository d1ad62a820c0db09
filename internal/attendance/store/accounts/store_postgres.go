package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"attendsync/pkg/platform/sentinel"

	"github.com/lib/pq"
)

// PostgresStore resolves report recipients and the outgoing sender from the
// system-user registry.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EmailsByRoles returns distinct addresses of enabled system users holding
// any of the given roles.
func (s *PostgresStore) EmailsByRoles(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	query := `
		SELECT DISTINCT u.email
		FROM user_accounts u
		JOIN user_roles r ON r.account_id = u.id
		WHERE u.enabled
		AND u.email <> ''
		AND r.role = ANY($1)
		ORDER BY u.email
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(roles))
	if err != nil {
		return nil, fmt.Errorf("query recipients by roles: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipients: %w", err)
	}
	return emails, nil
}

// DefaultSender returns the address flagged as the default outgoing account.
func (s *PostgresStore) DefaultSender(ctx context.Context) (string, error) {
	query := `
		SELECT email_address FROM mail_accounts
		WHERE default_outgoing
		LIMIT 1
	`
	var sender string
	err := s.db.QueryRowContext(ctx, query).Scan(&sender)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("no default outgoing account: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("query default sender: %w", err)
	}
	return sender, nil
}
