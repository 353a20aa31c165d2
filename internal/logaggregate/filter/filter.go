package filter

import "github.com/swdev-SL/logaggregate/internal/logaggregate/model"

// Filter decides whether a decoded record is accepted into the pipeline.
// It must be pure and is evaluated exactly once per successfully decoded
// record, before the record counts towards any limit. Rejected records are
// discarded silently.
type Filter func(model.Record) bool

// Default accepts everything. This is the place to hang custom filter logic;
// see FieldNotEquals for a ready-made predicate.
func Default(model.Record) bool {
	return true
}

// FieldNotEquals rejects records whose field key equals sentinel. Records
// without the field are accepted.
func FieldNotEquals(key string, sentinel interface{}) Filter {
	return func(rec model.Record) bool {
		v, ok := rec[key]
		if !ok {
			return true
		}
		return v != sentinel
	}
}
