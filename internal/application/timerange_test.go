package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

func TestResolveTimeRange_StartOnlyUsesPackageDuration(t *testing.T) {
	timeRange, err := application.ResolveTimeRange("2024-03-15", "08:00", 240)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local), timeRange.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local), timeRange.End)
}

func TestResolveTimeRange_ExplicitRangeIgnoresDuration(t *testing.T) {
	// con rango explícito la duración del paquete no participa
	timeRange, err := application.ResolveTimeRange("2024-03-15", "14:00-22:00", 240)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local), timeRange.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 22, 0, 0, 0, time.Local), timeRange.End)
}

func TestResolveTimeRange_MidnightWrapRollsEndToNextDay(t *testing.T) {
	timeRange, err := application.ResolveTimeRange("2024-03-15", "22:00-02:00", 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 22, 0, 0, 0, time.Local), timeRange.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 2, 0, 0, 0, time.Local), timeRange.End)
	assert.True(t, timeRange.End.After(timeRange.Start))
}

func TestResolveTimeRange_EqualEndRollsToNextDay(t *testing.T) {
	timeRange, err := application.ResolveTimeRange("2024-03-15", "10:00-10:00", 0)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, timeRange.End.Sub(timeRange.Start))
}

func TestResolveTimeRange_StripsSecondsMarker(t *testing.T) {
	// los horarios almacenados vienen como "HH:MM:SS"
	timeRange, err := application.ResolveTimeRange("2024-03-15", "08:00:00", 240)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local), timeRange.Start)
}

func TestResolveTimeRange_SpacedRangeTokens(t *testing.T) {
	timeRange, err := application.ResolveTimeRange("2024-03-15", "14:00 - 22:00", 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local), timeRange.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 22, 0, 0, 0, time.Local), timeRange.End)
}

func TestResolveTimeRange_Deterministic(t *testing.T) {
	first, err := application.ResolveTimeRange("2024-03-15", "14:00-22:00", 240)
	require.NoError(t, err)
	second, err := application.ResolveTimeRange("2024-03-15", "14:00-22:00", 240)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveTimeRange_NoDurationFails(t *testing.T) {
	_, err := application.ResolveTimeRange("2024-03-15", "08:00", 0)
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidPackage, domain.ExtractErrorCode(err))
}

func TestResolveTimeRange_InvalidTokens(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		timeSlot string
	}{
		{"horario vacío", "2024-03-15", ""},
		{"hora fuera de rango", "2024-03-15", "25:00"},
		{"minutos fuera de rango", "2024-03-15", "08:75"},
		{"hora no numérica", "2024-03-15", "ocho"},
		{"fecha malformada", "15/03/2024", "08:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := application.ResolveTimeRange(tc.date, tc.timeSlot, 240)
			require.Error(t, err)
			assert.Equal(t, domain.CodeInvalidTimeRange, domain.ExtractErrorCode(err))
		})
	}
}

func TestDurationHours(t *testing.T) {
	assert.Equal(t, 8, application.DurationHours(14, 22))
	assert.Equal(t, 4, application.DurationHours(22, 2))
	assert.Equal(t, 0, application.DurationHours(10, 10))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, application.IsWeekend("2024-01-06"))  // sábado
	assert.True(t, application.IsWeekend("2024-01-07"))  // domingo
	assert.False(t, application.IsWeekend("2024-01-08")) // lunes
	assert.False(t, application.IsWeekend("no-es-fecha"))
}
