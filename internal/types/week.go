// Package types implements special types for the allocation backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Week is a week, represented by its Monday at midnight UTC.
type Week time.Time

const weekIDLayout = "2006-01-02"

// WeekOf returns the Week in which a time occurs. Weeks start on Monday,
// so a Sunday belongs to the week that started six days earlier.
func WeekOf(t time.Time) Week {
	year, month, day := t.Date()
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// time.Weekday has Sunday as 0
	offset := (int(d.Weekday()) + 6) % 7
	return Week(d.AddDate(0, 0, -offset))
}

// ParseWeek parses a "YYYY-MM-DD" string and returns the week containing
// that day.
func ParseWeek(s string) (Week, error) {
	t, err := time.Parse(weekIDLayout, s)
	if err != nil {
		return Week{}, err
	}

	return WeekOf(t), nil
}

// String returns the week ID, the Monday formatted as YYYY-MM-DD.
func (w Week) String() string {
	return time.Time(w).Format(weekIDLayout)
}

// Range returns the human readable key of the week, e.g.
// "3/10/2025 - 3/16/2025".
func (w Week) Range() string {
	start := time.Time(w)
	end := start.AddDate(0, 0, 6)

	return fmt.Sprintf("%s - %s", shortDate(start), shortDate(end))
}

func shortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
}

// AddWeeks returns the week n weeks after w. n may be negative.
func (w Week) AddWeeks(n int) Week {
	return Week(time.Time(w).AddDate(0, 0, 7*n))
}

// Time returns the Monday of the week.
func (w Week) Time() time.Time {
	return time.Time(w)
}

// IsZero reports if the week is the zero value.
func (w Week) IsZero() bool {
	return time.Time(w).IsZero()
}

// Before reports whether w is before v.
func (w Week) Before(v Week) bool {
	return time.Time(w).Before(time.Time(v))
}

// After reports whether w is after v.
func (w Week) After(v Week) bool {
	return time.Time(w).After(time.Time(v))
}

// Equal reports whether w and v are the same week.
func (w Week) Equal(v Week) bool {
	return time.Time(w).Equal(time.Time(v))
}

// Contains reports whether the time instant is in the week.
func (w Week) Contains(t time.Time) bool {
	return WeekOf(t).Equal(w)
}

// MarshalJSON implements the json.Marshaler interface. Weeks are encoded as
// their week ID.
func (w Week) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both "YYYY-MM-DD" and RFC3339 timestamps are accepted. The result is the
// week containing the given day.
func (w *Week) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	return w.UnmarshalParam(value)
}

// UnmarshalParam implements gin's BindUnmarshaler so that weeks can be
// bound from query strings and URIs.
func (w *Week) UnmarshalParam(p string) error {
	if p == "" {
		*w = Week{}
		return nil
	}

	layout := weekIDLayout
	if len(p) > len(weekIDLayout) {
		layout = time.RFC3339
	}

	t, err := time.Parse(layout, p)
	if err != nil {
		return err
	}

	*w = WeekOf(t)
	return nil
}

// Scan writes the value from the database.
func (w *Week) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*w = Week(nullTime.Time.In(time.UTC))
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (w Week) Value() (driver.Value, error) {
	return time.Time(WeekOf(time.Time(w))), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Week) GormDataType() string {
	return "date"
}
