// Package seed builds the startup dataset of snacks, seats and flights.
//
// The demo data ships embedded; SEED_FILE may point at another YAML file of
// the same shape. Every record goes through the domain constructors, so a
// malformed dataset fails startup instead of producing odd statuses later.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"flight-onboard/internal/domain/flight"
	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/domain/snack"
	"flight-onboard/internal/infra"
	"flight-onboard/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Dataset struct {
	Snacks  []*snack.Snack
	Seats   []*seat.Seat
	Flights []*flight.Flight
}

type fixtureFile struct {
	Snacks  []snackFixture  `yaml:"snacks"`
	Seats   []seatFixture   `yaml:"seats"`
	Flights []flightFixture `yaml:"flights"`
}

type snackFixture struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	ImageURL string `yaml:"image_url"`
}

type seatFixture struct {
	ID     int    `yaml:"id"`
	Tier   string `yaml:"tier"`
	Orders int    `yaml:"orders"`
}

type flightFixture struct {
	Code             string `yaml:"code"`
	Origin           string `yaml:"origin"`
	Destination      string `yaml:"destination"`
	Class            string `yaml:"class"`
	DepartureDate    string `yaml:"departure_date"`
	Departure        string `yaml:"departure"`
	Arrival          string `yaml:"arrival"`
	Override         string `yaml:"override"`
	RevisedDeparture string `yaml:"revised_departure"`
	RevisedArrival   string `yaml:"revised_arrival"`
}

// Load reads the dataset at path, or the embedded demo data when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Parse(defaultFixtures)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read seed file %s", path)
	}
	return Parse(raw)
}

func Default() (*Dataset, error) {
	return Parse(defaultFixtures)
}

func Parse(raw []byte) (*Dataset, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, infra.WrapRepoErr(infra.KindInvalidDataset, "failed to decode seed yaml", err)
	}

	ds := &Dataset{
		Snacks:  make([]*snack.Snack, 0, len(file.Snacks)),
		Seats:   make([]*seat.Seat, 0, len(file.Seats)),
		Flights: make([]*flight.Flight, 0, len(file.Flights)),
	}

	snackIDs := make(map[int]struct{}, len(file.Snacks))
	for _, f := range file.Snacks {
		if _, dup := snackIDs[f.ID]; dup {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, fmt.Sprintf("snack %d defined twice", f.ID))
		}
		snackIDs[f.ID] = struct{}{}

		s, err := snack.NewSnack(f.ID, f.Name, f.ImageURL)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindInvalidDataset, fmt.Sprintf("snack %d", f.ID), err)
		}
		ds.Snacks = append(ds.Snacks, s)
	}

	seatIDs := make(map[int]struct{}, len(file.Seats))
	for _, f := range file.Seats {
		if _, dup := seatIDs[f.ID]; dup {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, fmt.Sprintf("seat %d defined twice", f.ID))
		}
		seatIDs[f.ID] = struct{}{}

		s, err := toSeat(f)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindInvalidDataset, fmt.Sprintf("seat %d", f.ID), err)
		}
		ds.Seats = append(ds.Seats, s)
	}

	codes := make(map[string]struct{}, len(file.Flights))
	for _, f := range file.Flights {
		fl, err := toFlight(f)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindInvalidDataset, fmt.Sprintf("flight %q", f.Code), err)
		}
		if _, dup := codes[fl.Code()]; dup {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, fmt.Sprintf("flight %s defined twice", fl.Code()))
		}
		codes[fl.Code()] = struct{}{}
		ds.Flights = append(ds.Flights, fl)
	}

	return ds, nil
}

func toSeat(f seatFixture) (*seat.Seat, error) {
	tier, err := seat.NewTier(f.Tier)
	if err != nil {
		return nil, err
	}
	return seat.ReconstructSeat(f.ID, tier, f.Orders)
}

func toFlight(f flightFixture) (*flight.Flight, error) {
	class, err := flight.NewClass(f.Class)
	if err != nil {
		return nil, err
	}
	override, err := flight.NewOverride(f.Override)
	if err != nil {
		return nil, err
	}
	date, err := flight.ParseDate(f.DepartureDate)
	if err != nil {
		return nil, err
	}
	departure, err := flight.ParseTimeOfDay(f.Departure)
	if err != nil {
		return nil, errs.Wrap(err, "departure")
	}
	arrival, err := flight.ParseTimeOfDay(f.Arrival)
	if err != nil {
		return nil, errs.Wrap(err, "arrival")
	}

	var revision *flight.Revision
	if f.RevisedDeparture != "" || f.RevisedArrival != "" {
		revDeparture, err := flight.ParseTimeOfDay(f.RevisedDeparture)
		if err != nil {
			return nil, errs.Wrap(err, "revised departure")
		}
		revArrival, err := flight.ParseTimeOfDay(f.RevisedArrival)
		if err != nil {
			return nil, errs.Wrap(err, "revised arrival")
		}
		r := flight.NewRevision(revDeparture, revArrival)
		revision = &r
	}

	return flight.NewFlight(flight.FlightSpec{
		Code:               f.Code,
		Origin:             f.Origin,
		Destination:        f.Destination,
		Class:              class,
		DepartureDate:      date,
		ScheduledDeparture: departure,
		ScheduledArrival:   arrival,
		Override:           override,
		Revision:           revision,
	})
}
