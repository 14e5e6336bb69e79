package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var (
	monday  = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
)

func mondayMorningProvider() *domain.Provider {
	return &domain.Provider{
		ID:            "p-1",
		Name:          "João",
		AvailableDays: []domain.DayOfWeek{domain.Monday},
		WorkIntervals: []domain.WorkInterval{
			{Start: "09:00", End: "12:00", Category: domain.CategoryWork, DayOfWeek: domain.Monday},
		},
	}
}

func TestResolveWorkingIntervals(t *testing.T) {
	provider := &domain.Provider{
		ID:            "p-1",
		AvailableDays: []domain.DayOfWeek{domain.Monday, domain.Wednesday},
		WorkIntervals: []domain.WorkInterval{
			{Start: "14:00", End: "18:00", Category: domain.CategoryWork, DayOfWeek: domain.Monday},
			{Start: "12:00", End: "13:00", Category: domain.CategoryBreak, DayOfWeek: domain.Monday},
			{Start: "08:00", End: "12:00", Category: domain.CategoryWork, DayOfWeek: domain.Monday},
			{Start: "10:00", End: "16:00", Category: domain.CategoryWork, DayOfWeek: domain.Tuesday},
		},
	}

	t.Run("work intervals in stored order", func(t *testing.T) {
		got, err := ResolveWorkingIntervals(provider, monday)
		require.NoError(t, err)
		assert.Equal(t, []domain.TimeRange{
			{Start: "14:00", End: "18:00"},
			{Start: "08:00", End: "12:00"},
		}, got)
	})

	t.Run("day not in available days", func(t *testing.T) {
		got, err := ResolveWorkingIntervals(provider, tuesday)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("available day without intervals", func(t *testing.T) {
		wednesday := monday.AddDate(0, 0, 2)
		got, err := ResolveWorkingIntervals(provider, wednesday)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("breaks", func(t *testing.T) {
		got, err := ResolveBreaks(provider, monday)
		require.NoError(t, err)
		assert.Equal(t, []domain.TimeRange{{Start: "12:00", End: "13:00"}}, got)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := ResolveWorkingIntervals(provider, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := ResolveWorkingIntervals(provider, monday)
		require.NoError(t, err)
		second, err := ResolveWorkingIntervals(provider, monday)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, monday, date)

	_, err = ParseDate("2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("04/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name        string
		intervals   []domain.TimeRange
		occupied    []types.TimeString
		granularity int
		want        []types.TimeString
	}{
		{
			name:        "hourly points inside interval",
			intervals:   []domain.TimeRange{{Start: "09:00", End: "12:00"}},
			granularity: 60,
			want:        []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:        "occupied hour excluded",
			intervals:   []domain.TimeRange{{Start: "09:00", End: "12:00"}},
			occupied:    []types.TimeString{"10:00"},
			granularity: 60,
			want:        []types.TimeString{"09:00", "11:00"},
		},
		{
			name: "unsorted overlapping intervals are merged and sorted",
			intervals: []domain.TimeRange{
				{Start: "14:00", End: "16:00"},
				{Start: "09:00", End: "11:00"},
				{Start: "10:00", End: "15:00"},
			},
			granularity: 60,
			want:        []types.TimeString{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"},
		},
		{
			name:        "partial hours follow start.hour <= h < end.hour",
			intervals:   []domain.TimeRange{{Start: "09:30", End: "11:45"}},
			granularity: 60,
			want:        []types.TimeString{"09:00", "10:00"},
		},
		{
			name:        "occupied time occupies its hour bucket",
			intervals:   []domain.TimeRange{{Start: "09:00", End: "11:00"}},
			occupied:    []types.TimeString{"09:30"},
			granularity: 60,
			want:        []types.TimeString{"10:00"},
		},
		{
			name:        "half hour granularity",
			intervals:   []domain.TimeRange{{Start: "09:00", End: "10:30"}},
			occupied:    []types.TimeString{"09:30"},
			granularity: 30,
			want:        []types.TimeString{"09:00", "10:00"},
		},
		{
			name:        "default granularity",
			intervals:   []domain.TimeRange{{Start: "22:00", End: "23:59"}},
			granularity: 0,
			want:        []types.TimeString{"22:00"},
		},
		{
			name:        "no intervals",
			granularity: 60,
			want:        []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.intervals, tt.occupied, tt.granularity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExcludeBreaks(t *testing.T) {
	slots := []types.TimeString{"11:00", "12:00", "13:00", "14:00"}

	got := ExcludeBreaks(slots, []domain.TimeRange{{Start: "12:30", End: "13:30"}}, 60)

	assert.Equal(t, []types.TimeString{"11:00", "14:00"}, got)
	assert.Equal(t, slots, ExcludeBreaks(slots, nil, 60))
}

func TestOccupiedTimes(t *testing.T) {
	appointments := []*domain.Appointment{
		{Time: "09:00", Status: domain.StatusPending},
		{Time: "10:00", Status: domain.StatusConfirmed},
		{Time: "11:00", Status: domain.StatusCancelled},
		nil,
	}

	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, OccupiedTimes(appointments))
}

func TestIsOccupied(t *testing.T) {
	occupied := []types.TimeString{"10:00"}

	assert.True(t, IsOccupied("10:00", occupied, 60))
	assert.True(t, IsOccupied("10:30", occupied, 60))
	assert.False(t, IsOccupied("10:30", occupied, 30))
	assert.False(t, IsOccupied("11:00", occupied, 60))
}

func TestFreeSlots_Scenarios(t *testing.T) {
	provider := mondayMorningProvider()

	t.Run("no appointments", func(t *testing.T) {
		got, err := FreeSlots(provider, monday, nil, 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, got)
	})

	confirmed := &domain.Appointment{ProviderID: "p-1", Date: monday, Time: "10:00", Status: domain.StatusConfirmed}

	t.Run("confirmed appointment occupies 10:00", func(t *testing.T) {
		got, err := FreeSlots(provider, monday, OccupiedTimes([]*domain.Appointment{confirmed}), 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "11:00"}, got)
	})

	t.Run("cancellation frees the slot", func(t *testing.T) {
		cancelled := *confirmed
		cancelled.Status = domain.StatusCancelled
		got, err := FreeSlots(provider, monday, OccupiedTimes([]*domain.Appointment{&cancelled}), 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, got)
	})

	t.Run("day not available", func(t *testing.T) {
		provider := mondayMorningProvider()
		provider.WorkIntervals = append(provider.WorkIntervals,
			domain.WorkInterval{Start: "09:00", End: "18:00", Category: domain.CategoryWork, DayOfWeek: domain.Tuesday})

		got, err := FreeSlots(provider, tuesday, nil, 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{}, got)
	})

	t.Run("lunch break removed", func(t *testing.T) {
		provider := &domain.Provider{
			AvailableDays: []domain.DayOfWeek{domain.Monday},
			WorkIntervals: []domain.WorkInterval{
				{Start: "09:00", End: "15:00", Category: domain.CategoryWork, DayOfWeek: domain.Monday},
				{Start: "12:00", End: "13:00", Category: domain.CategoryBreak, DayOfWeek: domain.Monday},
			},
		}
		got, err := FreeSlots(provider, monday, nil, 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "13:00", "14:00"}, got)
	})
}
