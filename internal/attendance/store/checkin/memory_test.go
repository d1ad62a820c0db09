package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendsync/internal/attendance/models"
	"attendsync/pkg/platform/sentinel"
)

func TestUniquenessOnEmployeeAndTime(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	employeeID := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	first := models.Checkin{EmployeeID: employeeID, Time: at, LogType: models.PunchIn, DeviceID: "D1"}
	require.NoError(t, store.Create(ctx, first))

	// Same employee, same instant: conflict regardless of direction or device.
	dup := models.Checkin{EmployeeID: employeeID, Time: at, LogType: models.PunchOut, DeviceID: "D2"}
	err := store.Create(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrConflict)
	assert.Len(t, store.All(), 1)

	// Different instant is fine.
	later := models.Checkin{EmployeeID: employeeID, Time: at.Add(time.Second), LogType: models.PunchOut, DeviceID: "D1"}
	assert.NoError(t, store.Create(ctx, later))

	// Different employee at the same instant is fine.
	other := models.Checkin{EmployeeID: uuid.New(), Time: at, LogType: models.PunchIn, DeviceID: "D1"}
	assert.NoError(t, store.Create(ctx, other))
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	employeeID := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	exists, err := store.Exists(ctx, employeeID, at)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Create(ctx, models.Checkin{EmployeeID: employeeID, Time: at, LogType: models.PunchIn}))

	exists, err = store.Exists(ctx, employeeID, at)
	require.NoError(t, err)
	assert.True(t, exists)

	// Exact-equality matching: one nanosecond off is a different punch.
	exists, err = store.Exists(ctx, employeeID, at.Add(time.Nanosecond))
	require.NoError(t, err)
	assert.False(t, exists)
}
