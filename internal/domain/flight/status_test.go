//go:build unit

package flight_test

import (
	"encoding/json"
	"testing"
	"time"

	"flight-onboard/internal/domain/flight"
	"flight-onboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, minute, second int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, second, 0, time.Local)
}

type classifyCase struct {
	name   string
	mutate func(*builder.FlightBuilder)
	now    time.Time
	want   string
}

func runClassifyCases(t *testing.T, cases []classifyCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.NewFlightBuilder().With(tc.mutate).BuildDomain()
			require.NoError(t, err)

			got := flight.Classify(f, tc.now)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		runClassifyCases(t, []classifyCase{
			{
				name:   "canceled ignores every time field",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("11:40", "11:50").AsCanceled() },
				now:    at(16, 11, 45, 0),
				want:   "Cancelado",
			},
			{
				name: "delayed to tomorrow is still scheduled",
				mutate: func(b *builder.FlightBuilder) {
					b.OnDate("17/10/2026").WithSchedule("06:00", "10:30").AsDelayed("08:00", "12:30")
				},
				now:  at(16, 22, 0, 0),
				want: "Adiado - Programado",
			},
			{
				name: "delayed uses revised times",
				mutate: func(b *builder.FlightBuilder) {
					b.WithSchedule("08:00", "09:00").AsDelayed("10:00", "12:00")
				},
				now:  at(16, 11, 45, 0),
				want: "Adiado - Aterrissando",
			},
			{
				name: "delayed boarding",
				mutate: func(b *builder.FlightBuilder) {
					b.WithSchedule("21:00", "23:50").AsDelayed("22:40", "23:50")
				},
				now:  at(16, 22, 20, 0),
				want: "Adiado - Embarcando",
			},
		})
	})

	t.Run("before departure", func(t *testing.T) {
		runClassifyCases(t, []classifyCase{
			{
				name:   "boarding 28 minutes before departure",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("23:50", "03:00") },
				now:    at(16, 23, 22, 0),
				want:   "Embarcando",
			},
			{
				name:   "boarding window includes 30 minutes",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("12:15", "14:00") },
				now:    at(16, 11, 45, 0),
				want:   "Embarcando",
			},
			{
				name:   "31 minutes before departure is scheduled",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("12:16", "14:00") },
				now:    at(16, 11, 45, 0),
				want:   "Programado",
			},
			{
				name:   "one minute before departure is boarding",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("11:46", "14:00") },
				now:    at(16, 11, 45, 59),
				want:   "Embarcando",
			},
			{
				name:   "future date is scheduled even within the window",
				mutate: func(b *builder.FlightBuilder) { b.OnDate("17/10/2026").WithSchedule("11:50", "14:00") },
				now:    at(16, 11, 45, 0),
				want:   "Programado",
			},
		})
	})

	t.Run("after departure", func(t *testing.T) {
		runClassifyCases(t, []classifyCase{
			{
				name:   "landing when arrival is less than 30 minutes away",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("10:00", "12:00") },
				now:    at(16, 11, 45, 0),
				want:   "Aterrissando",
			},
			{
				name:   "landed when arrival is more than 30 minutes past",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("08:00", "10:00") },
				now:    at(16, 11, 45, 0),
				want:   "Aterrissado",
			},
			{
				name:   "exactly 30 minutes from arrival falls through to departed",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("10:00", "12:15") },
				now:    at(16, 11, 45, 0),
				want:   "Decolado",
			},
			{
				name:   "arrival minute equals now is departed",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("10:00", "11:45") },
				now:    at(16, 11, 45, 0),
				want:   "Decolado",
			},
			{
				name:   "departure minute equals now counts as departed",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("11:45", "12:00") },
				now:    at(16, 11, 45, 30),
				want:   "Aterrissando",
			},
			{
				name:   "yesterday with arrival closer than departure gap is departed",
				mutate: func(b *builder.FlightBuilder) { b.OnDate("15/10/2026").WithSchedule("20:00", "11:00") },
				now:    at(16, 10, 0, 0),
				want:   "Decolado",
			},
			{
				name:   "arrival gap equal to departure gap falls through to departed",
				mutate: func(b *builder.FlightBuilder) { b.OnDate("15/10/2026").WithSchedule("10:40", "09:20") },
				now:    at(16, 10, 0, 0),
				want:   "Decolado",
			},
			{
				name:   "departure and arrival both at now is departed",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("10:00", "10:00") },
				now:    at(16, 10, 0, 0),
				want:   "Decolado",
			},
			{
				name:   "overnight arrival is measured on the raw clock",
				mutate: func(b *builder.FlightBuilder) { b.WithSchedule("21:00", "02:00") },
				now:    at(16, 23, 22, 0),
				want:   "Aterrissado",
			},
		})
	})
}

func TestClassifyIsPure(t *testing.T) {
	f := builder.NewFlightBuilder().WithSchedule("10:00", "12:00").AsDelayed("10:30", "12:10").MustBuildDomain()
	now := at(16, 11, 45, 0)

	first := flight.Classify(f, now)
	for range 5 {
		assert.Equal(t, first, flight.Classify(f, now))
	}

	rev, ok := f.Revision()
	require.True(t, ok)
	assert.Equal(t, "10:30", rev.Departure().String())
	assert.Equal(t, "10:00", f.ScheduledDeparture().String())
}

func TestStatus(t *testing.T) {
	t.Run("canceled drops the phase", func(t *testing.T) {
		s := flight.NewStatus(flight.OverrideCanceled, flight.PhaseBoarding)
		assert.Equal(t, flight.Phase(""), s.Phase())
		assert.Equal(t, "Cancelado", s.String())
	})

	t.Run("marshals as its label", func(t *testing.T) {
		b, err := json.Marshal(flight.NewStatus(flight.OverrideDelayed, flight.PhaseScheduled))
		require.NoError(t, err)
		assert.JSONEq(t, `"Adiado - Programado"`, string(b))
	})
}
