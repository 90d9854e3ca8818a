package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type contactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type categoryInput struct {
	Name        string `json:"name" validate:"required,token"`
	DisplayName string `json:"displayName" validate:"required"`
}

func TestValidator_ReportsEveryOffendingField(t *testing.T) {
	v := NewValidator()

	errs := v.Validate(contactInput{})
	require.Len(t, errs, 3)

	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
		require.NotEmpty(t, fe.Msg)
	}
	require.True(t, fields["name"])
	require.True(t, fields["email"])
	require.True(t, fields["message"])
}

func TestValidator_EmailRule(t *testing.T) {
	v := NewValidator()

	errs := v.Validate(contactInput{Name: "a", Email: "not-an-email", Message: "m"})
	require.Len(t, errs, 1)
	require.Equal(t, "email", errs[0].Field)

	require.Nil(t, v.Validate(contactInput{Name: "a", Email: "a@example.com", Message: "m"}))
}

func TestValidator_TokenRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		valid bool
	}{
		{"video", true},
		{"video-editing", true},
		{"3d-work", true},
		{"Video", false},
		{"video editing", false},
		{"-video", false},
		{"video-", false},
	}
	for _, tt := range tests {
		errs := v.Validate(categoryInput{Name: tt.name, DisplayName: "X"})
		if tt.valid {
			require.Nil(t, errs, "name %q should be accepted", tt.name)
		} else {
			require.NotNil(t, errs, "name %q should be rejected", tt.name)
			require.Equal(t, "name", errs[0].Field)
		}
	}
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	errs := v.Validate(categoryInput{Name: "video"})
	require.Len(t, errs, 1)
	require.Equal(t, "displayName", errs[0].Field)
}
