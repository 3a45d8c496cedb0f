package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned when a header's date or time fields
// do not decode to a representable wall-clock value.
var ErrInvalidTimestamp = fmt.Errorf("invalid timestamp")

var timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}) ?([AaPp][Mm])$`)

// DecodeTimestamp converts an export date ("DD/MM/YY", one or two digit
// day and month) and a 12-hour time ("H:MM am|pm", case-insensitive,
// optional space before the meridiem) into an absolute time in loc.
// Two-digit years below 50 map to 2000+, the rest to 1900+.
func DecodeTimestamp(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidTimestamp, dateStr)
	}

	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidTimestamp, dateStr)
	}

	if year < 50 {
		year += 2000
	} else {
		year += 1900
	}

	m := timeRe.FindStringSubmatch(timeStr)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrInvalidTimestamp, timeStr)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	meridiem := strings.ToLower(m[3])

	if month < 1 || month > 12 || day < 1 || hour < 1 || hour > 12 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidTimestamp, dateStr, timeStr)
	}

	if meridiem == "pm" && hour != 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// time.Date normalizes overflow (e.g. 31/02 becomes March); reject it.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidTimestamp, dateStr)
	}
	return t, nil
}
