//go:build integration

package sync_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"attendsync/internal/attendance/models"
	checkinstore "attendsync/internal/attendance/store/checkin"
	employeestore "attendsync/internal/attendance/store/employee"
	stagingstore "attendsync/internal/attendance/store/staging"
	syncengine "attendsync/internal/attendance/sync"
	"attendsync/pkg/platform/audit"
	"attendsync/pkg/platform/sentinel"
	"attendsync/pkg/platform/tx"
	"attendsync/pkg/testutil/containers"
)

type PostgresReconcileSuite struct {
	suite.Suite
	postgres  *containers.PostgresContainer
	staging   *stagingstore.PostgresStore
	employees *employeestore.PostgresStore
	checkins  *checkinstore.PostgresStore
	service   *syncengine.Service
}

func TestPostgresReconcileSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresReconcileSuite))
}

func (s *PostgresReconcileSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.staging = stagingstore.NewPostgres(s.postgres.DB)
	s.employees = employeestore.NewPostgres(s.postgres.DB)
	s.checkins = checkinstore.NewPostgres(s.postgres.DB)

	var err error
	s.service, err = syncengine.New(tx.NewSQLRunner(s.postgres.DB),
		s.staging, s.employees, s.checkins,
		syncengine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		syncengine.WithAuditSink(audit.NewPostgres(s.postgres.DB)),
	)
	s.Require().NoError(err)
}

func (s *PostgresReconcileSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "staging_punches", "checkins", "employees", "audit_log")
	s.Require().NoError(err)
}

func (s *PostgresReconcileSuite) seedEmployee(deviceID string) models.Employee {
	emp := models.Employee{ID: uuid.New(), Name: "Employee " + deviceID, AttendanceDeviceID: deviceID}
	s.Require().NoError(s.employees.Create(context.Background(), emp))
	return emp
}

func (s *PostgresReconcileSuite) seedPending(deviceID string, at time.Time) models.StagedPunch {
	punch := models.StagedPunch{
		ID:                 uuid.New(),
		AttendanceDeviceID: deviceID,
		Timestamp:          at,
		PunchType:          models.PunchIn,
		DeviceID:           "D1",
		Status:             models.StatusPending,
	}
	s.Require().NoError(s.staging.Create(context.Background(), punch))
	return punch
}

func (s *PostgresReconcileSuite) TestFullPass() {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	emp := s.seedEmployee("A100")
	s.seedPending("A100", at)
	s.seedPending("A100", at) // same punch staged twice
	s.seedPending("UNKNOWN", at)

	report, err := s.service.Reconcile(ctx)
	s.Require().NoError(err)
	s.Equal(1, report.Processed)
	s.Equal(1, report.Duplicate)
	s.Equal(1, report.Ignored)
	s.Equal(0, report.Failed)

	checkins, err := s.checkins.ListByEmployee(ctx, emp.ID)
	s.Require().NoError(err)
	s.Require().Len(checkins, 1)
	s.True(checkins[0].Time.Equal(at))
	s.Equal(models.PunchIn, checkins[0].LogType)
	s.Equal("D1", checkins[0].DeviceID)

	pending, err := s.staging.ListPending(ctx)
	s.Require().NoError(err)
	s.Empty(pending, "every record reached a terminal status")

	// Second pass changes nothing.
	report, err = s.service.Reconcile(ctx)
	s.Require().NoError(err)
	s.Equal(0, report.Total())
}

func (s *PostgresReconcileSuite) TestUniquenessConstraintConvertsRaceToConflict() {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	emp := s.seedEmployee("A100")
	err := s.checkins.Create(ctx, models.Checkin{
		EmployeeID: emp.ID, Time: at, LogType: models.PunchIn, DeviceID: "D0",
	})
	s.Require().NoError(err)

	err = s.checkins.Create(ctx, models.Checkin{
		EmployeeID: emp.ID, Time: at, LogType: models.PunchOut, DeviceID: "D1",
	})
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresReconcileSuite) TestAmbiguousDeviceIDStaysPending() {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s.seedEmployee("A100")
	s.seedEmployee("A100")
	punch := s.seedPending("A100", at)

	report, err := s.service.Reconcile(ctx)
	s.Require().NoError(err)
	s.Equal(1, report.Failed)

	pending, err := s.staging.ListPending(ctx)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(punch.ID, pending[0].ID)
}

func (s *PostgresReconcileSuite) TestCountByStatusOnAfterPass() {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s.seedEmployee("A100")
	s.seedPending("A100", at)
	s.seedPending("A100", at)
	s.seedPending("UNKNOWN", at)

	_, err := s.service.Reconcile(ctx)
	s.Require().NoError(err)

	counts, err := s.staging.CountByStatusOn(ctx, at,
		[]models.PunchStatus{models.StatusPending, models.StatusIgnored, models.StatusProcessed})
	s.Require().NoError(err)

	byStatus := make(map[models.PunchStatus]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	s.Equal(1, byStatus[models.StatusProcessed])
	s.Equal(1, byStatus[models.StatusIgnored])
	s.Zero(byStatus[models.StatusPending])
}
