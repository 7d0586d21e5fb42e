// Package calendar converts Bikram Sambat (BS) dates to Gregorian time.
// The shop records dates in the local BS calendar; storage and the
// domain layer work exclusively in Gregorian time.Time values.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported BS year range.
const (
	MinYear = 2000
	MaxYear = 2090
)

// epoch is the Gregorian date of BS 2000-01-01.
var epoch = time.Date(1943, time.April, 14, 0, 0, 0, 0, time.UTC)

// monthDays[y-MinYear][m-1] is the day count of month m in BS year y.
var monthDays = [...][12]int{
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31},
	{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 31, 29, 30, 29, 29, 30, 31},
	{31, 32, 31, 32, 31, 31, 30, 29, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	{30, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
}

// DaysInMonth returns the day count of the given BS month, or an error
// if the date components are out of the supported range.
func DaysInMonth(year, month int) (int, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("bs year %d out of supported range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("bs month %d out of range [1, 12]", month)
	}
	return monthDays[year-MinYear][month-1], nil
}

// ToGregorian converts a BS date string "YYYY-MM-DD" to the corresponding
// Gregorian date at midnight UTC. It is a pure function: same input, same
// output, no state.
func ToGregorian(bsDate string) (time.Time, error) {
	year, month, day, err := parse(bsDate)
	if err != nil {
		return time.Time{}, err
	}

	maxDay, err := DaysInMonth(year, month)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 || day > maxDay {
		return time.Time{}, fmt.Errorf("bs day %d out of range [1, %d] for %04d-%02d", day, maxDay, year, month)
	}

	days := 0
	for y := MinYear; y < year; y++ {
		for m := 0; m < 12; m++ {
			days += monthDays[y-MinYear][m]
		}
	}
	for m := 1; m < month; m++ {
		days += monthDays[year-MinYear][m-1]
	}
	days += day - 1

	return epoch.AddDate(0, 0, days), nil
}

func parse(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid bs date %q: want YYYY-MM-DD", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid bs year in %q", s)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid bs month in %q", s)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid bs day in %q", s)
	}
	return year, month, day, nil
}
