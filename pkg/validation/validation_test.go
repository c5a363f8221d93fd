package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Identity string `json:"email_phone" validate:"required,email_or_phone"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

func TestIsEmailOrPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"student@college.edu", true},
		{"a.b+c@x.co", true},
		{"9876543210", true},
		{"987654321", false},
		{"98765432100", false},
		{"not-an-email", false},
		{"a@b", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailOrPhone(tt.in))
		})
	}
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(signup{Identity: "9876543210", Role: "student"}))

	err := v.Struct(signup{Identity: "nope", Role: ""})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrValidation)

	fields := verr.FieldMap()
	assert.Equal(t, emailOrPhoneText, fields["email_phone"])
	assert.Equal(t, requiredText, fields["role"])
}
