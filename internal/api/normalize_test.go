package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawStrings(items []json.RawMessage) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(it)
	}
	return out
}

func TestNormalize_ArrayIsReturnedAsIs(t *testing.T) {
	inputs := []string{
		`[]`,
		`[{"id":1}]`,
		`[{"id":1},{"id":2},{"id":3}]`,
		`[1, "two", null]`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			parsed, err := Normalize([]byte(in), "jobs")
			require.NoError(t, err)
			assert.Equal(t, ShapeArray, parsed.Shape)

			var want []json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(in), &want))
			assert.Equal(t, rawStrings(want), rawStrings(parsed.Items))
		})
	}
}

func TestNormalize_WrappedExtractsInnerSequence(t *testing.T) {
	parsed, err := Normalize([]byte(`{"jobs": [{"id":"a"},{"id":"b"}], "total": 2}`), "jobs")
	require.NoError(t, err)

	assert.Equal(t, ShapeWrapped, parsed.Shape)
	assert.Equal(t, []string{`{"id":"a"}`, `{"id":"b"}`}, rawStrings(parsed.Items))

	parsed, err = Normalize([]byte(`{"products": []}`), "products")
	require.NoError(t, err)
	assert.Equal(t, ShapeWrapped, parsed.Shape)
	assert.Empty(t, parsed.Items)
}

func TestNormalize_OtherShapesAreEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null", body: `null`},
		{name: "number", body: `42`},
		{name: "string", body: `"jobs"`},
		{name: "boolean", body: `true`},
		{name: "object without key", body: `{"items": [{"id":1}]}`},
		{name: "key is not an array", body: `{"jobs": {"id":1}}`},
		{name: "key is null", body: `{"jobs": null}`},
		{name: "other resource key", body: `{"products": [{"id":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Normalize([]byte(tt.body), "jobs")
			require.NoError(t, err, "unexpected shapes degrade silently")
			assert.Equal(t, ShapeUnrecognized, parsed.Shape)
			assert.Empty(t, parsed.Items)
		})
	}
}

func TestNormalize_InvalidJSON(t *testing.T) {
	for _, body := range []string{``, `{`, `<html>oops</html>`} {
		_, err := Normalize([]byte(body), "jobs")
		assert.Error(t, err, "body %q", body)
	}
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "array", ShapeArray.String())
	assert.Equal(t, "wrapped", ShapeWrapped.String())
	assert.Equal(t, "unrecognized", ShapeUnrecognized.String())
}
