// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Dune", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "jdoe").
		MinLen("username", "jdoe", 3).
		MaxLen("username", "jdoe", 10).
		Email("email", "jane@example.com").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_Password checks the password strength rule.
*/
func TestValidator_Password(t *testing.T) {
	tests := []struct {
		name     string
		password string
		isValid  bool
	}{
		{"strong", "Sup3r$ecret", true},
		{"too_short", "Ab1!", false},
		{"no_upper", "sup3r$ecret", false},
		{"no_lower", "SUP3R$ECRET", false},
		{"no_digit", "Super$ecret", false},
		{"no_symbol", "Sup3rSecret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Password("password", tt.password)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Date accepts empty values and calendar dates only.
*/
func TestValidator_Date(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Date("start_date", "").HasErrors())
	assert.False(t, (&validate.Validator{}).Date("start_date", "2024-02-29").HasErrors())
	assert.True(t, (&validate.Validator{}).Date("start_date", "2023-02-29").HasErrors())
	assert.True(t, (&validate.Validator{}).Date("start_date", "29/02/2024").HasErrors())
}

/*
TestValidator_Numbers covers Positive, NonNegative and Range.
*/
func TestValidator_Numbers(t *testing.T) {
	err := (&validate.Validator{}).
		Positive("id", 0).
		NonNegative("page_count", -1).
		Range("rating", 6, 1, 5).
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "id", ae.Details[0].Field)
	assert.Equal(t, "page_count", ae.Details[1].Field)
	assert.Equal(t, "rating", ae.Details[2].Field)

	assert.NoError(t, (&validate.Validator{}).Positive("id", 1).NonNegative("page_count", 0).Range("rating", 5, 1, 5).Err())
}

/*
TestValidator_ISBN checks hyphenated and plain ISBNs.
*/
func TestValidator_ISBN(t *testing.T) {
	assert.False(t, (&validate.Validator{}).ISBN("isbn", "978-0-441-17271-9").HasErrors())
	assert.False(t, (&validate.Validator{}).ISBN("isbn", "044117271X").HasErrors())
	assert.True(t, (&validate.Validator{}).ISBN("isbn", "not-an-isbn").HasErrors())
}
