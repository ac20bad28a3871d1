package scheduling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine("Asia/Kolkata", 330, 60)
	require.NoError(t, err)
	return engine
}

func TestLocalize(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name      string
		refTime   string
		dateKey   string
		targetTZ  string
		wantTime  string
		wantLabel string
	}{
		{
			// IST is UTC+5:30; New York observes UTC-4:00 in June.
			name:      "IST morning to New York",
			refTime:   "11:00",
			dateKey:   "2024-06-10",
			targetTZ:  "America/New_York",
			wantTime:  "01:30 AM",
			wantLabel: "MON, JUN 10",
		},
		{
			name:      "identity in reference zone",
			refTime:   "11:00",
			dateKey:   "2024-06-10",
			targetTZ:  "Asia/Kolkata",
			wantTime:  "11:00 AM",
			wantLabel: "MON, JUN 10",
		},
		{
			name:      "crosses date line forward",
			refTime:   "22:00",
			dateKey:   "2024-06-10",
			targetTZ:  "Pacific/Auckland",
			wantTime:  "04:30 AM",
			wantLabel: "TUE, JUN 11",
		},
		{
			name:      "UTC rendering",
			refTime:   "14:00",
			dateKey:   "2024-06-11",
			targetTZ:  "UTC",
			wantTime:  "08:30 AM",
			wantLabel: "TUE, JUN 11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Localize(tt.refTime, tt.dateKey, tt.targetTZ)
			require.NoError(t, err)
			require.Equal(t, tt.wantTime, got.Time)
			require.Equal(t, tt.wantLabel, got.DateLabel)
		})
	}
}

func TestLocalizeInvalidTimezone(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Localize("11:00", "2024-06-10", "Not/AZone")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidTimezone))
}

func TestLocalizeMalformedInputs(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Localize("25:00", "2024-06-10", "UTC")
	require.Error(t, err)

	_, err = engine.Localize("11:00", "June 10th", "UTC")
	require.Error(t, err)
}

func TestNewEngineRejectsBadHorizon(t *testing.T) {
	_, err := NewEngine("Asia/Kolkata", 330, 0)
	require.Error(t, err)
}
