package model

// Record is one decoded event: a schema-less JSON object. Keys are arbitrary
// and values may be any JSON-representable type. Records are immutable once
// produced by the decoder.
type Record map[string]interface{}

// Batch is an ordered sequence of accepted records. A batch is owned by a
// single ingestion cycle and is discarded after it has been handed to the sink.
type Batch []Record

// MergeDefaults overlays rec on top of defaults and returns the effective
// record used for parameter binding. Record fields win on key collision;
// default fields fill the gaps. Neither input is modified.
func MergeDefaults(defaults map[string]interface{}, rec Record) map[string]interface{} {
	merged := make(map[string]interface{}, len(defaults)+len(rec))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range rec {
		merged[k] = v
	}
	return merged
}
