package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayloadRoundTrip(t *testing.T) {
	original := RecordPayload{
		EmployeeID:   "1",
		Date:         "2025-09-13",
		Status:       StatusLate,
		CheckInTime:  "11:45",
		CheckOutTime: "18:00",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded RecordPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestRecordPayloadWireFieldNames(t *testing.T) {
	data, err := json.Marshal(RecordPayload{
		EmployeeID: "1",
		Date:       "2025-09-13",
		Status:     StatusAbsent,
	})
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"employeeId", "date", "status", "checkInTime", "checkOutTime"} {
		assert.Contains(t, m, key)
	}
}

func TestSaveDayRequestValidate(t *testing.T) {
	date := "2025-09-13"

	t.Run("valid batch", func(t *testing.T) {
		req := SaveDayRequest{Records: []RecordPayload{
			{EmployeeID: "1", Date: date, Status: StatusPresent, CheckInTime: "09:00", CheckOutTime: "17:00"},
			{EmployeeID: "2", Date: date, Status: StatusAbsent, CheckInTime: "--:--", CheckOutTime: "--:--"},
			{EmployeeID: "3", Date: date, CheckInTime: "--:--", CheckOutTime: "--:--"},
		}}
		assert.NoError(t, req.Validate(date))
	})

	t.Run("missing check-out rejects with the employee named", func(t *testing.T) {
		req := SaveDayRequest{Records: []RecordPayload{
			{EmployeeID: "7", Date: date, CheckInTime: "09:15", CheckOutTime: "--:--"},
		}}
		err := req.Validate(date)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "records[7].checkOutTime")
		assert.Contains(t, err.Error(), "missing check-out time")
	})

	t.Run("absent with times rejects", func(t *testing.T) {
		req := SaveDayRequest{Records: []RecordPayload{
			{EmployeeID: "1", Date: date, Status: StatusAbsent, CheckInTime: "09:00", CheckOutTime: "17:00"},
		}}
		assert.Error(t, req.Validate(date))
	})

	t.Run("date mismatch rejects", func(t *testing.T) {
		req := SaveDayRequest{Records: []RecordPayload{
			{EmployeeID: "1", Date: "2025-09-14", CheckInTime: "09:00", CheckOutTime: "17:00"},
		}}
		assert.Error(t, req.Validate(date))
	})

	t.Run("empty batch rejects", func(t *testing.T) {
		assert.Error(t, SaveDayRequest{}.Validate(date))
	})
}
