package employee

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendsync/internal/attendance/models"
	"attendsync/pkg/platform/sentinel"
)

func TestByDeviceID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()

	alice := models.Employee{ID: uuid.New(), Name: "Alice", AttendanceDeviceID: "A100"}
	require.NoError(t, store.Create(ctx, alice))
	require.NoError(t, store.Create(ctx, models.Employee{ID: uuid.New(), Name: "Bob"}))

	t.Run("single match", func(t *testing.T) {
		emp, err := store.ByDeviceID(ctx, "A100")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, emp.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := store.ByDeviceID(ctx, "UNKNOWN")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("empty device id never matches unenrolled employees", func(t *testing.T) {
		_, err := store.ByDeviceID(ctx, "")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("shared device id is ambiguous", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, models.Employee{ID: uuid.New(), Name: "Mallory", AttendanceDeviceID: "A100"}))
		_, err := store.ByDeviceID(ctx, "A100")
		assert.ErrorIs(t, err, sentinel.ErrAmbiguous)
	})
}
