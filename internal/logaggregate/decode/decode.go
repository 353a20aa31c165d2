package decode

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/model"
)

// ErrNotObject indicates a frame that parsed as valid JSON but was not a JSON
// object. Such frames are treated the same as unparseable ones: discarded.
var ErrNotObject = errors.New("frame is not a JSON object")

// Decode parses one raw datagram frame into a Record. A failure is a value,
// not a terminal condition: callers discard the frame and continue receiving.
// No field validation is performed beyond the frame being a JSON object;
// unexpected fields pass through verbatim.
func Decode(frame []byte) (model.Record, error) {
	var rec model.Record
	if err := json.Unmarshal(frame, &rec); err != nil {
		return nil, errors.WithStack(err)
	}
	// json.Unmarshal leaves the map nil for a literal "null"
	if rec == nil {
		return nil, ErrNotObject
	}
	return rec, nil
}

// Encode serializes a Record into the wire frame format. Decode(Encode(r)) is
// loss-free for any record containing only JSON-representable values.
func Encode(rec model.Record) ([]byte, error) {
	frame, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return frame, nil
}
