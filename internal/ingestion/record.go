package ingestion

// Field is one named scalar carried by a decoded record message.
type Field struct {
	Name  string
	Value any
}

// A decoded record message is an opaque value supplied by the decoding
// library. Different libraries (and different versions of the same library)
// expose the per-record fields through different shapes, so extraction probes
// the capabilities below in order instead of assuming one of them.

// ValueProvider is the direct-access shape: the record can hand over a
// ready-made mapping of field name to value.
type ValueProvider interface {
	Values() map[string]any
}

// FieldMapProvider exposes the record's fields as a mapping. A mapping value
// may itself be a Field carrying its own name, or a plain scalar keyed by the
// mapping key.
type FieldMapProvider interface {
	FieldMap() map[string]any
}

// FieldListProvider exposes the record's fields as a collection of Field
// values.
type FieldListProvider interface {
	FieldList() []Field
}

// FieldSeqProvider is the raw-iteration fallback: the record yields its
// fields one at a time.
type FieldSeqProvider interface {
	FieldSeq(yield func(Field) bool)
}
