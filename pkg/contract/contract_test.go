package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name", "score"],
	"properties": {
		"name":  {"type": "string"},
		"score": {"type": "integer"},
		"tags":  {"type": ["array", "null"], "items": {"type": "string"}}
	}
}`

func TestSchemaValidate(t *testing.T) {
	s := MustCompile(testSchema)

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"Valid document", `{"name":"go","score":10}`, false},
		{"Null optional list", `{"name":"go","score":10,"tags":null}`, false},
		{"Missing required field", `{"name":"go"}`, true},
		{"Wrong type", `{"name":"go","score":"high"}`, true},
		{"Wrong item type", `{"name":"go","score":1,"tags":[1]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate([]byte(tt.doc))
			if tt.wantErr {
				var ve *ValidationError
				require.Error(t, err)
				require.True(t, errors.As(err, &ve))
				assert.NotEmpty(t, ve.Errors)
				assert.NotEmpty(t, ve.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaValidateMalformedJSON(t *testing.T) {
	s := MustCompile(testSchema)
	err := s.Validate([]byte("not json at all"))
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "broken JSON is not a field-level validation error")
}

func TestMustCompilePanicsOnBadSchema(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`{"type": 42`) })
}
