package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewStaffDispatcher()
	now := time.Now()

	t.Run("should pick the least loaded member", func(t *testing.T) {
		busy := newTestStaff(t, "Alice Kim")
		for i := 0; i < 3; i++ {
			require.NoError(t, busy.AssignOrder(newTestOrder(t, laundryItems(t)).ID()))
		}
		idle := newTestStaff(t, "Bob Tran")
		o := newTestOrder(t, laundryItems(t))

		assigned, err := dispatcher.Dispatch(o, []*staff.StaffMember{busy, idle}, now)

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(idle))
		assert.True(t, o.Staff().IsEqual(idle.ID()))
		assert.True(t, idle.IsAssignedTo(o.ID()))
	})

	t.Run("should pick the first member on ties", func(t *testing.T) {
		first := newTestStaff(t, "Alice Kim")
		second := newTestStaff(t, "Bob Tran")
		o := newTestOrder(t, laundryItems(t))

		assigned, err := dispatcher.Dispatch(o, []*staff.StaffMember{first, second}, now)

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(first))
	})

	t.Run("should fail when no staff is available", func(t *testing.T) {
		o := newTestOrder(t, laundryItems(t))

		_, err := dispatcher.Dispatch(o, nil, now)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrStaffNotFound)
	})

	t.Run("should fail on unconstructed member", func(t *testing.T) {
		o := newTestOrder(t, laundryItems(t))
		broken := &staff.StaffMember{}

		_, err := dispatcher.Dispatch(o, []*staff.StaffMember{broken}, now)

		require.Error(t, err)
	})
}
