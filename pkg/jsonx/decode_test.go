package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDecodeOptional(t *testing.T) {
	def := []string{"default"}

	tests := []struct {
		name        string
		raw         *string
		want        []string
		wantPresent bool
		wantErr     bool
	}{
		{name: "nil column", raw: nil, want: def},
		{name: "empty text", raw: strPtr(""), want: def},
		{name: "whitespace", raw: strPtr("   "), want: def},
		{name: "json null", raw: strPtr("null"), want: def},
		{name: "valid list", raw: strPtr(`["Maths","Physics"]`), want: []string{"Maths", "Physics"}, wantPresent: true},
		{name: "empty list", raw: strPtr(`[]`), want: []string{}, wantPresent: true},
		{name: "malformed", raw: strPtr(`["Maths",`), want: def, wantErr: true},
		{name: "wrong shape", raw: strPtr(`{"a":1}`), want: def, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeOptional(tt.raw, def)
			assert.Equal(t, tt.want, got.Get())
			assert.Equal(t, tt.wantPresent, got.Present)
			if tt.wantErr {
				assert.Error(t, got.Err)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	got, err := Encode([]string{"a"}, false)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, `["a"]`, *got)
	}

	got, err = Encode([]string{}, true)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
