//go:build integration

package tx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"attendsync/pkg/platform/tx"
	"attendsync/pkg/testutil/containers"
)

type SQLRunnerSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	runner   *tx.SQLRunner
}

func TestSQLRunnerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SQLRunnerSuite))
}

func (s *SQLRunnerSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.runner = tx.NewSQLRunner(s.postgres.DB)
}

func (s *SQLRunnerSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "audit_log")
	s.Require().NoError(err)
}

func (s *SQLRunnerSuite) insert(ctx context.Context, message string) error {
	stx, ok := tx.From(ctx)
	s.Require().True(ok, "insert must run inside a transaction")
	_, err := stx.ExecContext(ctx,
		"INSERT INTO audit_log (id, category, message) VALUES ($1, $2, $3)",
		uuid.New(), "runner-test", message)
	return err
}

func (s *SQLRunnerSuite) count() int {
	var n int
	err := s.postgres.DB.QueryRow(
		"SELECT count(*) FROM audit_log WHERE category = 'runner-test'").Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *SQLRunnerSuite) TestCommitOnSuccess() {
	err := s.runner.RunInTx(context.Background(), func(ctx context.Context) error {
		return s.insert(ctx, "one")
	})
	s.Require().NoError(err)
	s.Equal(1, s.count())
}

func (s *SQLRunnerSuite) TestRollbackOnError() {
	boom := errors.New("boom")
	err := s.runner.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := s.insert(ctx, "one"); err != nil {
			return err
		}
		return boom
	})
	s.Require().ErrorIs(err, boom)
	s.Zero(s.count())
}

func (s *SQLRunnerSuite) TestIsolatedRecoversPoisonedTransaction() {
	err := s.runner.RunInTx(context.Background(), func(ctx context.Context) error {
		// A failing statement aborts a Postgres transaction until rollback;
		// the savepoint must confine the damage to this one unit of work.
		isoErr := s.runner.Isolated(ctx, func(ctx context.Context) error {
			stx, _ := tx.From(ctx)
			_, err := stx.ExecContext(ctx, "INSERT INTO audit_log (id) VALUES ($1)", uuid.New())
			return err
		})
		s.Require().Error(isoErr, "message column is NOT NULL")

		return s.insert(ctx, "survivor")
	})
	s.Require().NoError(err)
	s.Equal(1, s.count(), "work after the failed unit still commits")
}

func (s *SQLRunnerSuite) TestIsolatedRollsBackOnlyItsOwnWrites() {
	boom := errors.New("boom")
	err := s.runner.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := s.insert(ctx, "kept"); err != nil {
			return err
		}
		isoErr := s.runner.Isolated(ctx, func(ctx context.Context) error {
			if err := s.insert(ctx, "discarded"); err != nil {
				return err
			}
			return boom
		})
		s.Require().ErrorIs(isoErr, boom)
		return nil
	})
	s.Require().NoError(err)

	var messages []string
	rows, err := s.postgres.DB.Query(
		"SELECT message FROM audit_log WHERE category = 'runner-test'")
	s.Require().NoError(err)
	defer rows.Close()
	for rows.Next() {
		var m string
		s.Require().NoError(rows.Scan(&m))
		messages = append(messages, m)
	}
	s.Require().NoError(rows.Err())
	s.Equal([]string{"kept"}, messages)
}
