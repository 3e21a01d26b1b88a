// Package util provides formatting helpers shared across canteenms.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the wire format for record dates (ISO calendar date).
	DateFormat = "2006-01-02"

	// TimeFormat is the wire format for production start/end times.
	TimeFormat = "15:04"
)

// LocalDate returns the calendar date in the caller's time zone as an ISO
// date string. Record dates must never go through UTC: a kitchen entering
// data at 00:30 local time is still entering it for "today".
func LocalDate(now time.Time) string {
	return now.Local().Format(DateFormat)
}

// Today returns the current local calendar date as an ISO date string.
func Today() string {
	return LocalDate(time.Now())
}

// FormatMoney renders an amount with a currency symbol and two decimals.
func FormatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// DisplayDateFormat is the default layout for dates shown to the operator.
const DisplayDateFormat = "02 Jan 2006"

// FormatDisplayDate re-renders a wire date with the given layout (the
// default display layout when empty). Unparsable input is shown as-is.
func FormatDisplayDate(wire, layout string) string {
	t, err := time.Parse(DateFormat, wire)
	if err != nil {
		return wire
	}
	if layout == "" {
		layout = DisplayDateFormat
	}
	return t.Format(layout)
}

// ParsePositive parses a string as a strictly positive number.
func ParsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive: %v", v)
	}
	return v, nil
}

// TitleFromCamel splits a CamelCase identifier into spaced words,
// e.g. "FoodManagement" -> "Food Management".
func TitleFromCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
