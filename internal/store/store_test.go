package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/persist"
)

// failingDriver loads fine but refuses every save.
type failingDriver struct{}

func (failingDriver) Load(context.Context) ([]byte, error) { return nil, persist.ErrNoData }
func (failingDriver) Save(context.Context, []byte) error   { return errors.New("disk on fire") }

func TestSeed(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	st := Seed(now)

	assert.Len(t, st.Tables, 5)
	assert.Len(t, st.Menu, 5)
	assert.Len(t, st.Staff, 3)
	assert.Len(t, st.Reservations, 2)
	assert.Len(t, st.Orders, 1)
	assert.Equal(t, 1003, st.NextReservationNumber)
	assert.Equal(t, 5001, st.NextWalkInNumber)
	assert.Equal(t, 5002, st.NextOrderNumber)
	assert.Equal(t, "2026-03-14", st.BookingDate)

	// The upcoming booking lands tonight at 18:00 when seeded at noon.
	assert.Equal(t, "2026-03-14 18:00", st.Reservations[1].Time)
	// Seeded at 19:00 it would roll to tomorrow instead.
	evening := Seed(time.Date(2026, 3, 14, 19, 0, 0, 0, time.Local))
	assert.Equal(t, "2026-03-15 18:00", evening.Reservations[1].Time)

	// Salmon plus two lemonades.
	assert.Equal(t, 33.5, st.Orders[0].Total)
}

func TestNewSeedsWhenDriverIsEmpty(t *testing.T) {
	s := New(persist.NewMemory())
	err := s.View(func(st *model.Snapshot) error {
		assert.Len(t, st.Tables, 5)
		assert.Equal(t, 1003, st.NextReservationNumber)
		return nil
	})
	require.NoError(t, err)
}

func TestNewSeedsOnCorruptData(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":     "{nope",
		"wrong shape":  `"just a string"`,
		"missing keys": `{"tables": []}`,
	} {
		t.Run(name, func(t *testing.T) {
			driver := persist.NewMemory()
			require.NoError(t, driver.Save(context.Background(), []byte(payload)))
			s := New(driver)
			err := s.View(func(st *model.Snapshot) error {
				assert.Len(t, st.Tables, 5, "expected the seed dataset")
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestLoadRepairsMissingCounters(t *testing.T) {
	raw := map[string]any{
		"tables": []model.Table{{ID: 1, Capacity: 2}},
		"reservations": []model.Reservation{
			{ID: "R1001", Customer: "A", PartySize: 2},
			{ID: "W5001", Customer: "B", PartySize: 2},
			{ID: "W5002", Customer: "C", PartySize: 2},
		},
		"orders": []model.Order{{ID: "O5001"}},
		"menu":   []model.MenuItem{},
		"staff":  []model.Staff{},
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	driver := persist.NewMemory()
	require.NoError(t, driver.Save(context.Background(), data))

	s := New(driver)
	err = s.View(func(st *model.Snapshot) error {
		assert.Equal(t, 1004, st.NextReservationNumber, "1000 + reservations + 1")
		assert.Equal(t, 5002, st.NextOrderNumber, "5000 + orders + 1")
		assert.Equal(t, 5003, st.NextWalkInNumber, "5000 + walk-ins + 1")
		assert.NotEmpty(t, st.BookingDate)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdatePersistsAndRoundTrips(t *testing.T) {
	driver := persist.NewMemory()
	s := New(driver)
	err := s.Update(func(st *model.Snapshot) error {
		st.Reservations[0].Notes = "birthday cake at nine"
		return nil
	})
	require.NoError(t, err)

	// A fresh store over the same driver sees the mutation.
	reloaded := New(driver)
	err = reloaded.View(func(st *model.Snapshot) error {
		assert.Equal(t, "birthday cake at nine", st.Reservations[0].Notes)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateReturnsFnErrorWithoutSaving(t *testing.T) {
	driver := persist.NewMemory()
	s := New(driver)
	boom := errors.New("boom")
	err := s.Update(func(*model.Snapshot) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, loadErr := driver.Load(context.Background())
	assert.ErrorIs(t, loadErr, persist.ErrNoData, "failed update must not persist")
}

func TestUpdateSwallowsSaveFailures(t *testing.T) {
	s := New(failingDriver{})
	err := s.Update(func(st *model.Snapshot) error {
		st.Reservations[0].Notes = "still applied"
		return nil
	})
	assert.NoError(t, err, "persistence is best-effort")
	err = s.View(func(st *model.Snapshot) error {
		assert.Equal(t, "still applied", st.Reservations[0].Notes)
		return nil
	})
	require.NoError(t, err)
}
