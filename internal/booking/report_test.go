package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/persist"
	"github.com/iliyamo/restaurant-table-booking/internal/store"
)

// countingDriver wraps the memory driver and counts saves.
type countingDriver struct {
	inner *persist.Memory
	saves int
}

func (d *countingDriver) Load(ctx context.Context) ([]byte, error) {
	return d.inner.Load(ctx)
}

func (d *countingDriver) Save(ctx context.Context, data []byte) error {
	d.saves++
	return d.inner.Save(ctx, data)
}

func newCountingService(t *testing.T, st *model.Snapshot, now time.Time) (*Service, *countingDriver) {
	t.Helper()
	driver := &countingDriver{inner: persist.NewMemory()}
	data, err := json.Marshal(st)
	require.NoError(t, err)
	require.NoError(t, driver.inner.Save(context.Background(), data))
	svc := NewService(store.New(driver), nil)
	svc.now = func() time.Time { return now }
	return svc, driver
}

func TestDailyReportPersistsOnlyOnDateRollForward(t *testing.T) {
	t.Run("current date writes nothing", func(t *testing.T) {
		now := at(t, "2026-03-14 10:00")
		svc, driver := newCountingService(t, floorSnapshot(), now) // booking date 2026-03-14

		report, err := svc.DailyReport(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2026-03-14", report.Date)
		assert.Zero(t, driver.saves)
	})

	t.Run("stale date rolls forward and persists once", func(t *testing.T) {
		now := at(t, "2026-03-15 10:00")
		svc, driver := newCountingService(t, floorSnapshot(), now)

		report, err := svc.DailyReport(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", report.Date)
		assert.Equal(t, 1, driver.saves)

		_, err = svc.DailyReport(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, driver.saves, "second read finds the date current")
	})
}
