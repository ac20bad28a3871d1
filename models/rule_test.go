package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvailabilityRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    AvailabilityRule
		wantErr bool
	}{
		{"valid morning window", AvailabilityRule{DayOfWeek: 1, Start: "11:00", End: "13:00"}, false},
		{"start equals end", AvailabilityRule{DayOfWeek: 1, Start: "11:00", End: "11:00"}, true},
		{"start after end", AvailabilityRule{DayOfWeek: 1, Start: "14:00", End: "13:00"}, true},
		{"day out of range", AvailabilityRule{DayOfWeek: 7, Start: "11:00", End: "13:00"}, true},
		{"malformed start", AvailabilityRule{DayOfWeek: 1, Start: "eleven", End: "13:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultScheduleIsValid(t *testing.T) {
	for _, r := range DefaultSchedule {
		require.NoError(t, r.Validate())
	}
}

func TestGlobalViewProjection(t *testing.T) {
	r := Reservation{
		ID:            "b1",
		UserID:        "u1",
		UserName:      "Ada",
		SessionType:   SessionTypes[0],
		Date:          "2024-06-10",
		StartTime:     "11:00",
		EndTime:       "12:00",
		Duration:      1,
		Timezone:      "America/New_York",
		Price:         PriceOneHour,
		PaymentStatus: "paid",
	}

	g := r.GlobalView()
	require.Equal(t, r.ID, g.ID)
	require.Equal(t, r.Date, g.Date)
	require.Equal(t, r.StartTime, g.StartTime)
	require.Equal(t, r.EndTime, g.EndTime)
	require.Equal(t, r.Duration, g.Duration)
}
