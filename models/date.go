package models

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time of day and no location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, normalising out of range values
// the way time.Date does
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf returns the calendar date of t in its own location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return DateOf(t), nil
}

// Validate checks the date is a real day between years 1 and 9999, the range
// YYYY-MM-DD can hold
func (d Date) Validate() error {
	if d.Year < 1 || d.Year > 9999 {
		return errors.Wrapf(ErrInvalidValue, "date %s: year out of range", d)
	}
	if NewDate(d.Year, d.Month, d.Day) != d {
		return errors.Wrapf(ErrInvalidValue, "date %s: no such day", d)
	}
	return nil
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Ptr returns a pointer to a copy of d, for populating optional fields
func (d Date) Ptr() *Date {
	return &d
}
