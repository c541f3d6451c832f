// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar date that travels as "YYYY-MM-DD" in JSON.

Postgres DATE columns are scanned into *time.Time by the repositories and
wrapped with [FromTime]; writes pass [Arg] so a nil date stores NULL.
*/
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format of a [Date].
const Layout = "2006-01-02"

// Date is a calendar day with no time-of-day component.
type Date struct {
	time.Time
}

// New builds a date in UTC.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads "YYYY-MM-DD". An empty string yields a nil date.
func Parse(value string) (*Date, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return nil, fmt.Errorf("date: %q is not YYYY-MM-DD: %w", value, err)
	}
	return &Date{parsed}, nil
}

// FromTime wraps a scanned DATE column; nil stays nil.
func FromTime(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Arg converts a date into a query argument.
func Arg(d *Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return fmt.Errorf("date: %q is not YYYY-MM-DD: %w", value, err)
	}
	d.Time = parsed
	return nil
}
