package models

import (
	"fmt"
	"math"
)

// BusinessRecord is one stored business entity (inventory item, order, return)
// as retrieved from the document store. The underlying document has no enforced
// schema; accessors return (value, ok) and a missing or mistyped field is
// reported as absent, never as an error.
type BusinessRecord struct {
	fields map[string]interface{}
}

// NewBusinessRecord wraps a raw document mapping. The map is not copied; the
// record treats it as read-only from this point on.
func NewBusinessRecord(fields map[string]interface{}) BusinessRecord {
	return BusinessRecord{fields: fields}
}

// BusinessRecords wraps a slice of raw documents, preserving order.
func BusinessRecords(docs []map[string]interface{}) []BusinessRecord {
	records := make([]BusinessRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, NewBusinessRecord(doc))
	}
	return records
}

// Field returns the raw value for a field name.
func (r BusinessRecord) Field(name string) (interface{}, bool) {
	if r.fields == nil {
		return nil, false
	}
	value, ok := r.fields[name]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// StringField returns a field coerced to string. Non-string scalars are
// rendered with fmt; composite values are reported as absent.
func (r BusinessRecord) StringField(name string) (string, bool) {
	value, ok := r.Field(name)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64, float32, int, int32, int64, bool:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

// IntField returns a field coerced to int. BSON decodes numbers as int32,
// int64 or float64 depending on the source document.
func (r BusinessRecord) IntField(name string) (int, bool) {
	value, ok := r.Field(name)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// FloatField returns a numeric field as float64.
func (r BusinessRecord) FloatField(name string) (float64, bool) {
	value, ok := r.Field(name)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func (r BusinessRecord) Description() (string, bool) {
	return r.StringField("description")
}

func (r BusinessRecord) Category() (string, bool) {
	return r.StringField("category")
}

func (r BusinessRecord) Stock() (int, bool) {
	return r.IntField("stock")
}

func (r BusinessRecord) ReturnReason() (string, bool) {
	return r.StringField("return_reason")
}
