// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/pkg/date"
)

/*
TestParse covers empty, valid and malformed input.
*/
func TestParse(t *testing.T) {
	empty, err := date.Parse("")
	require.NoError(t, err)
	assert.Nil(t, empty)

	parsed, err := date.Parse("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, date.New(2024, time.March, 9), *parsed)

	_, err = date.Parse("09/03/2024")
	assert.Error(t, err)
}

/*
TestDate_JSON keeps the calendar form on the wire.
*/
func TestDate_JSON(t *testing.T) {
	type payload struct {
		Start *date.Date `json:"start_date"`
		End   *date.Date `json:"end_date"`
	}

	start := date.New(2023, time.December, 31)
	raw, err := json.Marshal(payload{Start: &start})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"2023-12-31","end_date":null}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2024-01-02","end_date":null}`), &decoded))
	require.NotNil(t, decoded.Start)
	assert.Equal(t, "2024-01-02", decoded.Start.String())
	assert.Nil(t, decoded.End)

	assert.Error(t, json.Unmarshal([]byte(`{"start_date":"tomorrow"}`), &decoded))
}

/*
TestFromTime_Arg round-trips through the storage helpers.
*/
func TestFromTime_Arg(t *testing.T) {
	assert.Nil(t, date.FromTime(nil))
	assert.Nil(t, date.Arg(nil))

	scanned := time.Date(2022, time.June, 1, 15, 4, 5, 0, time.FixedZone("X", 3600))
	d := date.FromTime(&scanned)
	require.NotNil(t, d)
	assert.Equal(t, "2022-06-01", d.String())
	assert.Equal(t, d.Time, date.Arg(d))
}
