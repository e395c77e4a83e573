// Package calendar provides proleptic Gregorian dates with checked day
// arithmetic over a fixed supported year range.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported years, inclusive.
const (
	MinYear = -262143
	MaxYear = 262142
)

// maxStep is larger than any distance between two supported dates.
const maxStep = int64(MaxYear-MinYear+1) * 366

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrOutOfRange  = errors.New("year out of supported range")
)

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %d", ErrOutOfRange, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Valid reports whether d is a real day inside the supported years.
func (d Date) Valid() bool {
	_, err := New(d.Year, d.Month, d.Day)
	return err == nil
}

// MustNew is New for literals known to be valid.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime drops the time-of-day of t, keeping its wall-clock date. The year
// is not range checked; callers that accept arbitrary times should use Valid.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads YYYY-MM-DD. The year may have more than four digits or a
// leading minus sign.
func Parse(s string) (Date, error) {
	raw := strings.TrimSpace(s)
	neg := strings.HasPrefix(raw, "-")
	body := strings.TrimPrefix(raw, "-")
	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q: want YYYY-MM-DD", ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	if neg {
		nums[0] = -nums[0]
	}
	return New(nums[0], time.Month(nums[1]), nums[2])
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// YearDay0 is the zero-based day of the year (January 1st is 0).
func (d Date) YearDay0() int {
	return d.Time().YearDay() - 1
}

// AddDays steps the date by n days, which may be negative. ok is false when
// the result falls outside [MinYear, MaxYear].
func (d Date) AddDays(n int64) (Date, bool) {
	if n > maxStep || n < -maxStep {
		return Date{}, false
	}
	next := FromTime(d.Time().AddDate(0, 0, int(n)))
	if next.Year < MinYear || next.Year > MaxYear {
		return Date{}, false
	}
	return next, true
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
