package ingestion

import (
	"log/slog"
)

// ExtractFields returns a mapping of field name to value for one decoded
// record message. It tries, in order:
//
//  1. the direct value mapping (ValueProvider)
//  2. the field collection, as a map (FieldMapProvider) or a list
//     (FieldListProvider)
//  3. raw iteration over the record (FieldSeqProvider)
//
// The first strategy that yields a non-empty result wins. A strategy that
// panics counts as failed and the next one is tried. Nil values are never
// stored; an absent field is a missing key, not a null placeholder. A record
// with no usable fields yields an empty map, never a panic.
func ExtractFields(record any) map[string]any {
	if record == nil {
		return map[string]any{}
	}

	if data := extractFromValues(record); len(data) > 0 {
		return data
	}
	if data := extractFromFieldMap(record); len(data) > 0 {
		return data
	}
	if data := extractFromFieldList(record); len(data) > 0 {
		return data
	}
	if data := extractFromFieldSeq(record); data != nil {
		return data
	}
	return map[string]any{}
}

// extractFromValues handles records exposing a ready-made name->value map.
func extractFromValues(record any) (data map[string]any) {
	defer recoverStrategy("values", &data)

	vp, ok := record.(ValueProvider)
	if !ok {
		return nil
	}

	vals := vp.Values()
	data = make(map[string]any, len(vals))
	for k, v := range vals {
		if v != nil {
			data[k] = v
		}
	}
	return data
}

// extractFromFieldMap handles records exposing their fields as a map. A map
// value that is itself a Field supplies its own name; the map key is used
// otherwise.
func extractFromFieldMap(record any) (data map[string]any) {
	defer recoverStrategy("field map", &data)

	fm, ok := record.(FieldMapProvider)
	if !ok {
		return nil
	}

	fields := fm.FieldMap()
	data = make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if f, ok := v.(Field); ok {
			name := f.Name
			if name == "" {
				name = k
			}
			if f.Value != nil {
				data[name] = f.Value
			}
			continue
		}
		data[k] = v
	}
	return data
}

// extractFromFieldList handles records exposing their fields as a slice.
func extractFromFieldList(record any) (data map[string]any) {
	defer recoverStrategy("field list", &data)

	fl, ok := record.(FieldListProvider)
	if !ok {
		return nil
	}

	fields := fl.FieldList()
	data = make(map[string]any, len(fields))
	for _, f := range fields {
		if f.Name != "" && f.Value != nil {
			data[f.Name] = f.Value
		}
	}
	return data
}

// extractFromFieldSeq is the raw-iteration fallback. Items with a missing
// name or nil value are dropped.
func extractFromFieldSeq(record any) (data map[string]any) {
	data = map[string]any{}
	defer recoverStrategy("field seq", &data)

	fs, ok := record.(FieldSeqProvider)
	if !ok {
		return data
	}

	fs.FieldSeq(func(f Field) bool {
		if f.Name != "" && f.Value != nil {
			data[f.Name] = f.Value
		}
		return true
	})
	return data
}

// recoverStrategy absorbs a panic raised inside one extraction strategy so
// the caller can fall through to the next one. Whatever the strategy had
// collected before panicking is discarded.
func recoverStrategy(strategy string, data *map[string]any) {
	if r := recover(); r != nil {
		slog.Debug("record extraction strategy failed",
			slog.String("strategy", strategy),
			slog.Any("panic", r))
		*data = nil
	}
}
