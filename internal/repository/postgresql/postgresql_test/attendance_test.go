package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/repository/postgresql"
)

func setupAttendanceTest(t *testing.T) (*TestDatabaseSetup, attendance.AttendanceRepository, employee.EmployeeRepository) {
	t.Helper()

	setup, err := NewTestDatabase()
	require.NoError(t, err)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	t.Cleanup(func() {
		setup.TruncateAllTables(context.Background())
		setup.Close()
	})
	require.NoError(t, setup.TruncateAllTables(context.Background()))

	return setup, postgresql.NewAttendanceRepository(setup.DB), postgresql.NewEmployeeRepository(setup.DB)
}

func TestAttendanceUpsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	_, attRepo, empRepo := setupAttendanceTest(t)

	_, err := empRepo.Create(ctx, employee.Employee{ID: "emp-1", Name: "Sathish", Role: employee.RoleTSE, Employed: true})
	require.NoError(t, err)

	day := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)

	first, err := attRepo.Upsert(ctx, attendance.Record{
		EmployeeID: "emp-1",
		Date:       day,
		Status:     attendance.StatusLate,
		CheckIn:    "11:30",
		CheckOut:   "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, first.Status)

	second, err := attRepo.Upsert(ctx, attendance.Record{
		EmployeeID: "emp-1",
		Date:       day,
		Status:     attendance.StatusPresent,
		CheckIn:    "09:00",
		CheckOut:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, second.Status)
	assert.Equal(t, "09:00", second.CheckIn)

	records, err := attRepo.ListByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, records, 1, "upsert must replace, not duplicate")
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}

func TestAttendanceGetByEmployeeAndDateMissing(t *testing.T) {
	ctx := context.Background()
	_, attRepo, _ := setupAttendanceTest(t)

	rec, err := attRepo.GetByEmployeeAndDate(ctx, "nobody", time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, rec, "missing record is nil, not an error")
}

func TestAttendanceListFilters(t *testing.T) {
	ctx := context.Background()
	_, attRepo, empRepo := setupAttendanceTest(t)

	_, err := empRepo.Create(ctx, employee.Employee{ID: "emp-1", Name: "Sathish", Role: employee.RoleTSE, Employed: true})
	require.NoError(t, err)
	_, err = empRepo.Create(ctx, employee.Employee{ID: "emp-2", Name: "Ravi", Role: employee.RoleLogistics, Employed: true})
	require.NoError(t, err)

	for day := 25; day <= 27; day++ {
		date := time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC)
		for _, id := range []string{"emp-1", "emp-2"} {
			_, err := attRepo.Upsert(ctx, attendance.Record{
				EmployeeID: id,
				Date:       date,
				Status:     attendance.StatusPresent,
				CheckIn:    "09:00",
				CheckOut:   "17:00",
			})
			require.NoError(t, err)
		}
	}

	empID := "emp-1"
	from, to := "2025-08-25", "2025-08-26"
	records, err := attRepo.List(ctx, attendance.RecordFilter{
		EmployeeID: &empID,
		StartDate:  &from,
		EndDate:    &to,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "emp-1", rec.EmployeeID)
		require.NotNil(t, rec.EmployeeName)
		assert.Equal(t, "Sathish", *rec.EmployeeName)
	}
}
