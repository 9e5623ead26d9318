package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDerivedColumns_DistanceAndPace(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)
	t2 := t0.Add(2 * time.Minute)

	table := NewTable()
	table.AddRow(map[string]any{"timestamp": t0, "distance": 1000.0, "speed": 2.0})
	table.AddRow(map[string]any{"timestamp": t1, "distance": 2000.0, "speed": 0.0})
	table.AddRow(map[string]any{"timestamp": t2, "distance": 3000.0, "speed": 4.0})

	AddDerivedColumns(table)

	require.Equal(t, 3, table.Len())

	wantKm := []float64{1.0, 2.0, 3.0}
	for i, want := range wantKm {
		v, ok := table.Value(i, "distance_km")
		require.True(t, ok)
		assert.InDelta(t, want, v.(float64), 1e-9)
	}

	pace0, ok := table.Value(0, "pace_min_per_km")
	require.True(t, ok)
	assert.InDelta(t, (1000.0/2.0)/60.0, pace0.(float64), 1e-9) // 8.33...

	_, ok = table.Value(1, "pace_min_per_km")
	assert.False(t, ok, "zero speed must yield a null pace")

	pace2, ok := table.Value(2, "pace_min_per_km")
	require.True(t, ok)
	assert.InDelta(t, (1000.0/4.0)/60.0, pace2.(float64), 1e-9) // 4.16...
}

func TestAddDerivedColumns_PaceNullCases(t *testing.T) {
	tests := []struct {
		name  string
		speed any
	}{
		{"zero", 0.0},
		{"negative", -1.5},
		{"non-numeric", "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable()
			table.AddRow(map[string]any{"speed": tt.speed})

			AddDerivedColumns(table)

			assert.True(t, table.HasColumn("pace_min_per_km"))
			_, ok := table.Value(0, "pace_min_per_km")
			assert.False(t, ok)
		})
	}
}

func TestAddDerivedColumns_SemicircleConversion(t *testing.T) {
	// 2^30 semicircles = 90 degrees.
	table := NewTable()
	table.AddRow(map[string]any{
		"position_lat":  float64(1 << 30),
		"position_long": float64(-1 << 30),
	})

	AddDerivedColumns(table)

	lat, ok := table.Value(0, "lat")
	require.True(t, ok)
	assert.InDelta(t, 90.0, lat.(float64), 1e-9)

	lon, ok := table.Value(0, "lon")
	require.True(t, ok)
	assert.InDelta(t, -90.0, lon.(float64), 1e-9)
}

func TestAddDerivedColumns_AltitudeAlias(t *testing.T) {
	table := NewTable()
	table.AddRow(map[string]any{"enhanced_altitude": 512.4})

	AddDerivedColumns(table)

	v, ok := table.Value(0, "altitude")
	require.True(t, ok)
	assert.Equal(t, 512.4, v)
}

func TestAddDerivedColumns_AltitudePresentNotOverwritten(t *testing.T) {
	table := NewTable()
	table.AddRow(map[string]any{"enhanced_altitude": 512.4, "altitude": 500.0})

	AddDerivedColumns(table)

	v, ok := table.Value(0, "altitude")
	require.True(t, ok)
	assert.Equal(t, 500.0, v)
}

func TestAddDerivedColumns_TimestampSortAndDrop(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC)

	table := NewTable()
	table.AddRow(map[string]any{"timestamp": t0.Add(2 * time.Minute), "n": 3.0})
	table.AddRow(map[string]any{"timestamp": "not a time", "n": 99.0})
	table.AddRow(map[string]any{"timestamp": t0, "n": 1.0})
	table.AddRow(map[string]any{"timestamp": t0.Add(time.Minute), "n": 2.0})

	AddDerivedColumns(table)

	// The unparsable-timestamp row is dropped; the rest sort ascending.
	require.Equal(t, 3, table.Len())
	var prev time.Time
	for i := 0; i < table.Len(); i++ {
		ts := table.Row(i)["timestamp"].(time.Time)
		assert.False(t, ts.Before(prev), "timestamps must be non-decreasing")
		prev = ts
	}
	assert.Equal(t, 1.0, table.Row(0)["n"])
	assert.Equal(t, 3.0, table.Row(2)["n"])
}

func TestAddDerivedColumns_StringTimestampParsed(t *testing.T) {
	table := NewTable()
	table.AddRow(map[string]any{"timestamp": "2024-03-01T06:30:00Z"})

	AddDerivedColumns(table)

	require.Equal(t, 1, table.Len())
	ts, ok := table.Value(0, "timestamp")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC), ts)
}

func TestAddDerivedColumns_NoTimestampKeepsOrderAndCount(t *testing.T) {
	table := NewTable()
	table.AddRow(map[string]any{"n": 2.0})
	table.AddRow(map[string]any{"n": 1.0})

	AddDerivedColumns(table)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, 2.0, table.Row(0)["n"])
	assert.Equal(t, 1.0, table.Row(1)["n"])
}

func TestAddDerivedColumns_EmptyTable(t *testing.T) {
	table := NewTable()
	AddDerivedColumns(table)
	assert.Zero(t, table.Len())
}
