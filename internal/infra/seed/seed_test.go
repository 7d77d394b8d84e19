//go:build unit

package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"flight-onboard/internal/domain/flight"
	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/infra"
	"flight-onboard/internal/infra/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	assert.Len(t, ds.Snacks, 12)
	assert.Len(t, ds.Seats, 9)
	require.Len(t, ds.Flights, 10)

	codes := make([]string, 0, len(ds.Flights))
	for _, f := range ds.Flights {
		codes = append(codes, f.Code())
	}
	assert.Equal(t, []string{
		"AD4070", "AD2550", "AD5001", "AD4130", "AD8720",
		"AD8705", "AD4400", "AD8780", "AD4001", "AD2523",
	}, codes)

	basic := 0
	for _, s := range ds.Seats {
		assert.Equal(t, 0, s.Orders())
		if s.Tier() == seat.TierBasic {
			basic++
		}
	}
	assert.Equal(t, 3, basic)

	delayed := ds.Flights[2]
	assert.Equal(t, flight.OverrideDelayed, delayed.Override())
	assert.Equal(t, "22:40", delayed.EffectiveDeparture().String())
	assert.Equal(t, "23:50", delayed.EffectiveArrival().String())
	assert.Equal(t, flight.OverrideCanceled, ds.Flights[3].Override())
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded data", func(t *testing.T) {
		ds, err := seed.Load("")
		require.NoError(t, err)
		assert.Len(t, ds.Flights, 10)
	})

	t.Run("reads a file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		raw := `
snacks:
  - {id: 1, name: "Amendoim", image_url: "/static/a.png"}
seats:
  - {id: 7, tier: "Básico", orders: 1}
flights:
  - {code: ad1, origin: A, destination: B, class: Internacional, departure_date: "01/01/2026", departure: "10:00", arrival: "11:00"}
`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

		ds, err := seed.Load(path)
		require.NoError(t, err)
		require.Len(t, ds.Seats, 1)
		assert.Equal(t, 1, ds.Seats[0].Orders())
		assert.False(t, ds.Seats[0].CanOrder())
		assert.Equal(t, "AD1", ds.Flights[0].Code())
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		kind  infra.RepositoryErrorKind
		errIs error
	}{
		{
			name: "malformed yaml",
			raw:  "snacks: [",
			kind: infra.KindInvalidDataset,
		},
		{
			name: "duplicate snack id",
			raw:  `snacks: [{id: 1, name: a}, {id: 1, name: b}]`,
			kind: infra.KindDuplicateKey,
		},
		{
			name: "duplicate seat id",
			raw:  `seats: [{id: 2, tier: "Safira"}, {id: 2, tier: "Básico"}]`,
			kind: infra.KindDuplicateKey,
		},
		{
			name: "duplicate flight code ignoring case",
			raw: `flights:
  - {code: AD1, class: Nacional, departure_date: "01/01/2026", departure: "10:00", arrival: "11:00"}
  - {code: ad1, class: Nacional, departure_date: "01/01/2026", departure: "10:00", arrival: "11:00"}`,
			kind: infra.KindDuplicateKey,
		},
		{
			name:  "unknown tier",
			raw:   `seats: [{id: 2, tier: "Ouro"}]`,
			kind:  infra.KindInvalidDataset,
			errIs: seat.ErrInvalidTier,
		},
		{
			name:  "delayed flight without revised times",
			raw:   `flights: [{code: AD1, class: Nacional, override: Adiado, departure_date: "01/01/2026", departure: "10:00", arrival: "11:00"}]`,
			kind:  infra.KindInvalidDataset,
			errIs: flight.ErrRevisionMismatch,
		},
		{
			name:  "bad departure time",
			raw:   `flights: [{code: AD1, class: Nacional, departure_date: "01/01/2026", departure: "25:00", arrival: "11:00"}]`,
			kind:  infra.KindInvalidDataset,
			errIs: flight.ErrInvalidTimeOfDay,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := seed.Parse([]byte(tc.raw))
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.True(t, infra.IsKind(err, tc.kind), "got %v", err)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
