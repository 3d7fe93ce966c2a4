package persist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant_data.json")
	d := &File{Path: path}
	ctx := context.Background()

	_, err := d.Load(ctx)
	assert.ErrorIs(t, err, ErrNoData, "missing file reads as no data")

	require.NoError(t, d.Save(ctx, []byte(`{"tables":[]}`)))
	got, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"tables":[]}`), got)

	require.NoError(t, d.Save(ctx, []byte(`{"tables":[1]}`)))
	got, err = d.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"tables":[1]}`), got, "save overwrites")
}

func TestMemoryDriver(t *testing.T) {
	d := NewMemory()
	ctx := context.Background()

	_, err := d.Load(ctx)
	assert.ErrorIs(t, err, ErrNoData)

	payload := []byte("snapshot")
	require.NoError(t, d.Save(ctx, payload))
	got, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	payload[0] = 'X'
	got2, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), got2, "driver keeps its own copy")
}
