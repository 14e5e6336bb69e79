package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfWeekFromDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want DayOfWeek
	}{
		{date: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), want: Monday},
		{date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), want: Tuesday},
		{date: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), want: Saturday},
		{date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), want: Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format(DateFormat), func(t *testing.T) {
			assert.Equal(t, tt.want, DayOfWeekFromDate(tt.date))
		})
	}
}

func TestParseDayOfWeek_RoundTrip(t *testing.T) {
	for d := Monday; d <= Sunday; d++ {
		parsed, err := ParseDayOfWeek(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	parsed, err := ParseDayOfWeek(" terca ")
	require.NoError(t, err)
	assert.Equal(t, Tuesday, parsed)

	_, err = ParseDayOfWeek("Monday")
	assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
}

func TestAppointmentStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
}

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("Confirmado")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseAppointmentStatus("confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointment_StartsAt(t *testing.T) {
	appt := Appointment{
		Date: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Time: "10:00",
	}

	assert.Equal(t, time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC), appt.StartsAt())
	assert.True(t, appt.IsActive())

	appt.Status = StatusCancelled
	assert.False(t, appt.IsActive())
}

func TestWorkInterval_Validate(t *testing.T) {
	valid := WorkInterval{Start: "09:00", End: "12:00", Category: CategoryWork, DayOfWeek: Monday}
	require.NoError(t, valid.Validate())

	reversed := valid
	reversed.Start, reversed.End = "12:00", "09:00"
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidInterval)

	empty := valid
	empty.End = "09:00"
	assert.ErrorIs(t, empty.Validate(), ErrInvalidInterval)

	unknown := valid
	unknown.Category = "folga"
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidCategory)

	badDay := valid
	badDay.DayOfWeek = 7
	assert.ErrorIs(t, badDay.Validate(), ErrInvalidDayOfWeek)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "35", want: 3500},
		{input: "35.5", want: 3550},
		{input: "35,50", want: 3550},
		{input: " 0.99 ", want: 99},
		{input: "", wantErr: true},
		{input: "-10", wantErr: true},
		{input: "10.999", wantErr: true},
		{input: "10.", wantErr: true},
		{input: ".50", wantErr: true},
		{input: "R$ 10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "35.50", FormatPrice(3550))
	assert.Equal(t, "0.05", FormatPrice(5))
}
