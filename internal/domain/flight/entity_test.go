//go:build unit

package flight_test

import (
	"testing"
	"time"

	"flight-onboard/internal/domain/flight"
	"flight-onboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.FlightBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.NewFlightBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestFlight(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		f, err := builder.NewFlightBuilder().WithCode(" ad4070 ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "AD4070", f.Code())
		assert.Equal(t, flight.ClassDomestic, f.Class())
		assert.Equal(t, "16/10/2026", f.DepartureDate().String())
		assert.Equal(t, "12:00", f.EffectiveDeparture().String())
		assert.Equal(t, "15:10", f.EffectiveArrival().String())
		_, ok := f.Revision()
		assert.False(t, ok)
	})

	t.Run("code matching is case-insensitive and exact", func(t *testing.T) {
		f := builder.NewFlightBuilder().MustBuildDomain()
		assert.True(t, f.MatchesCode("ad4070"))
		assert.True(t, f.MatchesCode("AD4070"))
		assert.False(t, f.MatchesCode("AD407"))
		assert.False(t, f.MatchesCode("ZZ0000"))
	})

	t.Run("delayed flight exposes revised times", func(t *testing.T) {
		f := builder.NewFlightBuilder().AsDelayed("22:40", "23:50").MustBuildDomain()
		assert.Equal(t, "22:40", f.EffectiveDeparture().String())
		assert.Equal(t, "23:50", f.EffectiveArrival().String())
		assert.Equal(t, "12:00", f.ScheduledDeparture().String())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty code NG",
				mutate: func(b *builder.FlightBuilder) { b.WithCode("  ") },
				errIs:  flight.ErrEmptyCode,
			},
			{
				name:   "unknown class NG",
				mutate: func(b *builder.FlightBuilder) { b.Class = "Executiva" },
				errIs:  flight.ErrInvalidClass,
			},
			{
				name:   "international class OK",
				mutate: func(b *builder.FlightBuilder) { b.Class = "Internacional" },
			},
			{
				name:   "unknown override NG",
				mutate: func(b *builder.FlightBuilder) { b.Override = "Atrasado" },
				errIs:  flight.ErrInvalidOverride,
			},
			{
				name:   "delayed without revision NG",
				mutate: func(b *builder.FlightBuilder) { b.Override = "Adiado" },
				errIs:  flight.ErrRevisionMismatch,
			},
			{
				name: "revision without delay NG",
				mutate: func(b *builder.FlightBuilder) {
					b.AsDelayed("13:00", "16:00")
					b.Override = "Cancelado"
				},
				errIs: flight.ErrRevisionMismatch,
			},
			{
				name:   "canceled without revision OK",
				mutate: func(b *builder.FlightBuilder) { b.AsCanceled() },
			},
		})
	})
}

func TestParseTimeOfDay(t *testing.T) {
	valid := map[string]string{
		"08:05": "08:05",
		"8:5":   "08:05",
		"00:00": "00:00",
		"23:59": "23:59",
	}
	for in, want := range valid {
		got, err := flight.ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String())
	}

	for _, in := range []string{"", "0800", "24:00", "12:60", "-1:10", "ab:cd"} {
		_, err := flight.ParseTimeOfDay(in)
		assert.ErrorIs(t, err, flight.ErrInvalidTimeOfDay, in)
	}
}

func TestMustParseTimeOfDay(t *testing.T) {
	assert.Equal(t, 9*60+20, flight.MustParseTimeOfDay("09:20").Minutes())
	assert.Equal(t, flight.MustParseTimeOfDay("09:20"), flight.TimeOfDayOf(time.Date(2026, time.October, 16, 9, 20, 59, 0, time.Local)))
	assert.Panics(t, func() { flight.MustParseTimeOfDay("25:00") })
}

func TestParseDate(t *testing.T) {
	d, err := flight.ParseDate("17/10/2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 17, d.Day())
	assert.Equal(t, "17/10/2025", d.String())

	for _, in := range []string{"", "2025-10-17", "31/02/2025", "00/10/2025", "17/13/2025", "17/10"} {
		_, err := flight.ParseDate(in)
		assert.ErrorIs(t, err, flight.ErrInvalidDate, in)
	}
}

func TestDateBefore(t *testing.T) {
	d := flight.MustParseDate("16/10/2026")
	assert.True(t, flight.MustParseDate("15/10/2026").Before(d))
	assert.True(t, flight.MustParseDate("31/12/2025").Before(d))
	assert.True(t, flight.MustParseDate("17/09/2026").Before(d))
	assert.False(t, d.Before(d))
	assert.False(t, flight.MustParseDate("01/01/2027").Before(d))
	assert.Equal(t, d, flight.DateOf(time.Date(2026, time.October, 16, 23, 59, 0, 0, time.Local)))
}
