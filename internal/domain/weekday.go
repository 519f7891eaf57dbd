package domain

import (
	"errors"
	"time"
)

// ErrUnknownWeekday is returned when a weekday string cannot be parsed
var ErrUnknownWeekday = errors.New("domain: unknown weekday")

// Weekday is a working day of the interview week (Monday to Friday)
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
)

// Weekdays lists the working days in calendar order
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ParseWeekday converts a short day name ("Mon".."Fri") to a Weekday
func ParseWeekday(s string) (Weekday, error) {
	for _, day := range Weekdays() {
		if string(day) == s {
			return day, nil
		}
	}
	return "", ErrUnknownWeekday
}

// WeekdayFromDate converts a calendar date to a Weekday
// Saturday and Sunday are not interview days and produce ErrUnknownWeekday
func WeekdayFromDate(date time.Time) (Weekday, error) {
	switch date.Weekday() {
	case time.Monday:
		return Monday, nil
	case time.Tuesday:
		return Tuesday, nil
	case time.Wednesday:
		return Wednesday, nil
	case time.Thursday:
		return Thursday, nil
	case time.Friday:
		return Friday, nil
	default:
		return "", ErrUnknownWeekday
	}
}

// ToTimeWeekday converts a Weekday to the standard library time.Weekday
func (d Weekday) ToTimeWeekday() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	default:
		return time.Friday
	}
}

// IsWorkingDay returns true if the date falls on Monday through Friday
func IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
