package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{name: "string", in: `"500+"`, want: "500+"},
		{name: "integer", in: `42`, want: "42"},
		{name: "float", in: `4.5`, want: "4.5"},
		{name: "null", in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var f FlexString
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &f))
}

func TestJob_DecodesNumericID(t *testing.T) {
	var job Job
	err := json.Unmarshal([]byte(`{"id": 7, "title": "DevOps Engineer", "requirements": ["Kubernetes", "Terraform"]}`), &job)
	require.NoError(t, err)

	assert.Equal(t, "7", job.ID.String())
	n, err := job.ID.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, job.Requirements)
}

func TestProduct_IsAvailable(t *testing.T) {
	assert.True(t, Product{Status: StatusAvailable}.IsAvailable())
	assert.False(t, Product{Status: StatusComingSoon}.IsAvailable())
	assert.False(t, Product{}.IsAvailable())
}
