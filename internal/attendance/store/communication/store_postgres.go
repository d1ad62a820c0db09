package communication

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"attendsync/internal/attendance/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStore records outbound emails in the communications table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, comm models.Communication) error {
	id := comm.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := comm.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO communications (id, subject, content, sender, recipients, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		id,
		comm.Subject,
		comm.Content,
		comm.Sender,
		pq.Array(comm.Recipients),
		comm.Reference,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert communication: %w", err)
	}
	return nil
}
