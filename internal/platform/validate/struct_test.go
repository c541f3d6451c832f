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

type reviewPayload struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=read unread reading"`
	StartDate string `json:"start_date" validate:"date"`
}

/*
TestStruct_ReportsJSONFieldNames verifies tag failures map to JSON names.
*/
func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	tests := []struct {
		name    string
		payload reviewPayload
		field   string
	}{
		{"rating_missing", reviewPayload{}, "rating"},
		{"rating_too_high", reviewPayload{Rating: 6}, "rating"},
		{"status_unknown", reviewPayload{Rating: 3, Status: "finished"}, "status"},
		{"bad_date", reviewPayload{Rating: 3, StartDate: "2024/01/01"}, "start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.payload)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestStruct_Valid accepts a payload that satisfies every tag.
*/
func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, validate.Struct(reviewPayload{Rating: 1, Status: "reading", StartDate: "2024-01-31"}))
	assert.NoError(t, validate.Struct(reviewPayload{Rating: 5}))
}
