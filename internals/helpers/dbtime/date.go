// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date (day granularity). Accepts "2006-01-02" or a full
// RFC3339 timestamp on input; always persists and serializes as "2006-01-02".
type Date struct{ time.Time }

const layout = "2006-01-02"

func From(t time.Time) Date {
	return Date{Time: truncate(t)}
}

func Today() Date {
	return From(time.Now().UTC())
}

func Parse(s string) (Date, error) {
	var d Date
	return d, d.parse(s)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(layout, s); err == nil {
		d.Time = t
		return nil
	}
	// also tolerate a full timestamp, coerced to day granularity
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = truncate(t.UTC())
		return nil
	}
	return fmt.Errorf("dbtime: invalid date %q (want YYYY-MM-DD or RFC3339)", s)
}

// Scan: accept time.Time or string/bytes from the driver.
func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		d.Time = truncate(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T", v)
	}
}

func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(layout), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(layout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	return d.parse(string(b))
}

func (Date) GormDataType() string {
	return "date"
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(layout)
}

// Equal compares at day granularity.
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}
