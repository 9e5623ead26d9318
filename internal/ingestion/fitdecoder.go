package ingestion

import (
	"io"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/kit/datetime"
	"github.com/muktihari/fit/profile"
	"github.com/muktihari/fit/profile/untyped/mesgnum"
	"github.com/muktihari/fit/proto"
)

// FITDecoder decodes FIT streams with github.com/muktihari/fit and exposes
// the record-kind messages through the field-collection record shape.
type FITDecoder struct{}

// NewFITDecoder creates the production FIT decoder.
func NewFITDecoder() *FITDecoder {
	return &FITDecoder{}
}

// Decode decodes one FIT stream and keeps only its record messages.
func (d *FITDecoder) Decode(r io.Reader) (ActivityFile, error) {
	dec := decoder.New(r)
	fit, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	records := make([]any, 0, len(fit.Messages))
	for i := range fit.Messages {
		mesg := &fit.Messages[i]
		if mesg.Num != mesgnum.Record {
			continue
		}
		records = append(records, &fitRecord{mesg: mesg})
	}
	return &fitActivityFile{records: records}, nil
}

// fitActivityFile holds the record messages of one decoded file.
type fitActivityFile struct {
	records []any
}

func (f *fitActivityFile) Records() []any {
	return f.records
}

// fitRecord adapts one proto.Message to the FieldListProvider shape,
// normalizing values on the way out: invalid sentinel values are dropped,
// profile scale/offset is applied, and FIT date-times become time.Time.
type fitRecord struct {
	mesg *proto.Message
}

func (r *fitRecord) FieldList() []Field {
	fields := make([]Field, 0, len(r.mesg.Fields))
	for i := range r.mesg.Fields {
		f := &r.mesg.Fields[i]
		if f.Name == "" || f.Array {
			continue
		}
		if !f.Value.Valid(f.BaseType) {
			continue
		}
		v, ok := normalizeFieldValue(f)
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: f.Name, Value: v})
	}
	return fields
}

// normalizeFieldValue converts a raw proto field value into the scalar the
// table stores. Numeric values are scaled per the profile definition so the
// result is in the field's declared units (meters, m/s, ...), matching what
// higher-level FIT libraries return from their value accessors.
func normalizeFieldValue(f *proto.Field) (any, bool) {
	raw := f.Value.Any()

	if f.Type == profile.DateTime || f.Type == profile.LocalDateTime {
		u, ok := raw.(uint32)
		if !ok {
			return nil, false
		}
		t := datetime.ToTime(u)
		if t.IsZero() {
			return nil, false
		}
		return t, true
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil, false
		}
		return v, true
	case bool:
		return v, true
	}

	n, ok := asFloat(raw)
	if !ok {
		return nil, false
	}
	if f.Scale != 0 && f.Scale != 1 {
		n /= f.Scale
	}
	if f.Offset != 0 {
		n -= f.Offset
	}
	return n, true
}
