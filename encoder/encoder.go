package encoder

import (
	"net/url"
	"time"

	"github.com/ONSdigital/dp-datadoc-generator/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnsupportedType is returned for values the encoder has no string form for
var ErrUnsupportedType = errors.New("value is not JSON serializable")

const (
	secondsLayout       = "2006-01-02T15:04:05"
	microsecondsLayout  = "2006-01-02T15:04:05.000000"
	offsetLayout        = "-07:00"
	offsetSecondsLayout = "-07:00:00"
)

// Kind identifies which encoding rule applies to a value
type Kind uint8

// The kinds of value the encoder handles, plus the fallback
const (
	Unsupported Kind = iota
	Identifier
	CalendarDate
	Timestamp
	Locator
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case CalendarDate:
		return "calendar date"
	case Timestamp:
		return "timestamp"
	case Locator:
		return "url"
	}
	return "unsupported"
}

// Value is a value tagged with its Kind. Only the member matching Kind is set.
type Value struct {
	Kind Kind
	id   uuid.UUID
	date models.Date
	ts   time.Time
	loc  *url.URL
	raw  interface{}
}

// Tag classifies v. Anything outside the handled kinds, including nil
// pointers, is tagged Unsupported.
func Tag(v interface{}) Value {
	switch x := v.(type) {
	case uuid.UUID:
		return Value{Kind: Identifier, id: x}
	case *uuid.UUID:
		if x != nil {
			return Value{Kind: Identifier, id: *x}
		}
	case models.Date:
		return Value{Kind: CalendarDate, date: x}
	case *models.Date:
		if x != nil {
			return Value{Kind: CalendarDate, date: *x}
		}
	case time.Time:
		return Value{Kind: Timestamp, ts: x}
	case *time.Time:
		if x != nil {
			return Value{Kind: Timestamp, ts: *x}
		}
	case url.URL:
		return Value{Kind: Locator, loc: &x}
	case *url.URL:
		if x != nil {
			return Value{Kind: Locator, loc: x}
		}
	}
	return Value{Kind: Unsupported, raw: v}
}

// Encode returns the string form of the tagged value
func (v Value) Encode() (string, error) {
	switch v.Kind {
	case Identifier:
		return v.id.String(), nil
	case CalendarDate:
		if err := v.date.Validate(); err != nil {
			return "", errors.Wrap(err, "cannot encode calendar date")
		}
		return v.date.String(), nil
	case Timestamp:
		return isoformat(v.ts), nil
	case Locator:
		return v.loc.String(), nil
	}
	return "", errors.Wrapf(ErrUnsupportedType, "%T", v.raw)
}

// Encode returns the string form of a value JSON cannot represent natively:
// the canonical form of an identifier, YYYY-MM-DD for a date, ISO 8601 with
// offset for a timestamp and the string form of a URL. Any other value is an
// ErrUnsupportedType error. Timestamps are written to the microsecond; finer
// precision is truncated. Dates outside years 1 to 9999, or naming a day
// that does not exist, are an error.
func Encode(v interface{}) (string, error) {
	return Tag(v).Encode()
}

// isoformat keeps the offset, with seconds when it has any, and only writes
// microseconds when there are some
func isoformat(t time.Time) string {
	layout := secondsLayout
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = microsecondsLayout
	}
	if _, offset := t.Zone(); offset%60 != 0 {
		return t.Format(layout + offsetSecondsLayout)
	}
	return t.Format(layout + offsetLayout)
}
