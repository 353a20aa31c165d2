package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/model"
)

func TestDecode_ValidObject(t *testing.T) {
	rec, err := Decode([]byte(`{"msg":"hi","count":3,"ok":true,"ref":null}`))
	require.NoError(t, err)
	assert.Equal(t, model.Record{
		"msg":   "hi",
		"count": float64(3),
		"ok":    true,
		"ref":   nil,
	}, rec)
}

func TestDecode_HeterogeneousFieldsPassThrough(t *testing.T) {
	rec, err := Decode([]byte(`{"nested":{"a":[1,"two",false]},"weird key":""}`))
	require.NoError(t, err)
	assert.Equal(t, model.Record{
		"nested":    map[string]interface{}{"a": []interface{}{float64(1), "two", false}},
		"weird key": "",
	}, rec)
}

func TestDecode_MalformedFrame(t *testing.T) {
	malformed := [][]byte{
		[]byte(``),
		[]byte(`{`),
		[]byte(`{"msg":`),
		[]byte(`not json at all`),
		{0xff, 0xfe, 0x00},
	}
	for _, frame := range malformed {
		_, err := Decode(frame)
		assert.Error(t, err, "frame %q should not decode", frame)
	}
}

func TestDecode_NonObjectJSONIsRejected(t *testing.T) {
	nonObjects := [][]byte{
		[]byte(`null`),
		[]byte(`42`),
		[]byte(`"a string"`),
		[]byte(`[{"msg":"hi"}]`),
		[]byte(`true`),
	}
	for _, frame := range nonObjects {
		_, err := Decode(frame)
		assert.Error(t, err, "frame %q should not decode", frame)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	records := []model.Record{
		{},
		{"msg": "hi"},
		{"region": "eu", "count": float64(7), "tags": []interface{}{"a", "b"}},
		{"nested": map[string]interface{}{"deep": map[string]interface{}{"x": nil}}},
	}
	for _, rec := range records {
		frame, err := Encode(rec)
		require.NoError(t, err)
		decoded, err := Decode(frame)
		require.NoError(t, err)
		assert.Equal(t, rec, decoded)
	}
}
