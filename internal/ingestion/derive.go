package ingestion

import (
	"time"
)

// semicircleToDeg converts the integer angular encoding used by Garmin
// devices to degrees.
const semicircleToDeg = 180.0 / 2147483648.0

// AddDerivedColumns enriches a per-file table with convenience columns and
// normalized units. Each rule applies only when its source column exists:
//
//   - timestamp is coerced to time.Time; unparsable values become null
//   - distance_km = distance / 1000
//   - pace_min_per_km = (1000/speed)/60 for positive numeric speed, else null
//   - altitude aliases enhanced_altitude when absent
//   - lat/lon = position_lat/position_long converted from semicircles
//
// When a timestamp column exists, rows with a null timestamp are dropped and
// the remaining rows are stable-sorted by timestamp ascending. The table is
// modified in place and returned for chaining.
func AddDerivedColumns(t *Table) *Table {
	if t.Len() == 0 {
		return t
	}

	hasTimestamp := t.HasColumn("timestamp")
	if hasTimestamp {
		for i := 0; i < t.Len(); i++ {
			v, ok := t.Value(i, "timestamp")
			if !ok {
				continue
			}
			if ts, ok := parseTimestamp(v); ok {
				t.Set(i, "timestamp", ts)
			} else {
				t.Set(i, "timestamp", nil)
			}
		}
	}

	if t.HasColumn("distance") {
		t.EnsureColumn("distance_km")
		for i := 0; i < t.Len(); i++ {
			if d, ok := numericCell(t, i, "distance"); ok {
				t.Set(i, "distance_km", d/1000.0)
			}
		}
	}

	if t.HasColumn("speed") {
		t.EnsureColumn("pace_min_per_km")
		for i := 0; i < t.Len(); i++ {
			if s, ok := numericCell(t, i, "speed"); ok && s > 0 {
				t.Set(i, "pace_min_per_km", (1000.0/s)/60.0)
			}
		}
	}

	if t.HasColumn("enhanced_altitude") && !t.HasColumn("altitude") {
		t.EnsureColumn("altitude")
		for i := 0; i < t.Len(); i++ {
			if v, ok := t.Value(i, "enhanced_altitude"); ok {
				t.Set(i, "altitude", v)
			}
		}
	}

	if t.HasColumn("position_lat") {
		t.EnsureColumn("lat")
		for i := 0; i < t.Len(); i++ {
			if v, ok := numericCell(t, i, "position_lat"); ok {
				t.Set(i, "lat", v*semicircleToDeg)
			}
		}
	}

	if t.HasColumn("position_long") {
		t.EnsureColumn("lon")
		for i := 0; i < t.Len(); i++ {
			if v, ok := numericCell(t, i, "position_long"); ok {
				t.Set(i, "lon", v*semicircleToDeg)
			}
		}
	}

	if hasTimestamp {
		t.Filter(func(row map[string]any) bool {
			_, ok := row["timestamp"].(time.Time)
			return ok
		})
		t.SortStable(func(a, b map[string]any) bool {
			ta := a["timestamp"].(time.Time)
			tb := b["timestamp"].(time.Time)
			return ta.Before(tb)
		})
	}

	return t
}

// parseTimestamp coerces a raw timestamp cell into a time.Time. The FIT
// adapter already yields time.Time; string values cover the other record
// shapes. Anything else is unparsable and becomes a null cell.
func parseTimestamp(v any) (time.Time, bool) {
	switch ts := v.(type) {
	case time.Time:
		if ts.IsZero() {
			return time.Time{}, false
		}
		return ts, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, ts); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// numericCell returns a cell as float64, false for null or non-numeric cells.
func numericCell(t *Table, i int, col string) (float64, bool) {
	v, ok := t.Value(i, col)
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

// asFloat converts any numeric scalar to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
