package attendance

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StandardShiftHours is the daily threshold after which hours count as overtime.
const StandardShiftHours = 8.0

var ErrInvalidTime = errors.New("invalid time of day")

// Hours is the result of a single check-in/check-out computation.
type Hours struct {
	TotalHrs float64 `json:"totalHrs"`
	OtHrs    float64 `json:"otHrs"`
}

// ComputeHours returns worked and overtime hours for one day.
//
// An empty check-in or check-out yields zero hours and no error. A check-out
// earlier than the check-in is not treated as an overnight shift: the total
// goes negative and overtime stays at zero.
func ComputeHours(checkIn, checkOut string) (Hours, error) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)
	if checkIn == "" || checkOut == "" {
		return Hours{}, nil
	}

	inMinutes, err := ParseClock(checkIn)
	if err != nil {
		return Hours{}, err
	}
	outMinutes, err := ParseClock(checkOut)
	if err != nil {
		return Hours{}, err
	}

	totalHrs := float64(outMinutes-inMinutes) / 60
	otHrs := math.Max(0, totalHrs-StandardShiftHours)

	return Hours{
		TotalHrs: Round2(totalHrs),
		OtHrs:    Round2(otHrs),
	}, nil
}

// ParseClock converts "H:MM" or "HH:MM" into minutes since midnight. Only
// ASCII digits are accepted, matching the "15:04" layout used for payloads.
func ParseClock(value string) (int, error) {
	hourStr, minStr, ok := strings.Cut(value, ":")
	if !ok || !digits(hourStr, 1, 2) || !digits(minStr, 2, 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	return hour*60 + minute, nil
}

func digits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Round2 rounds to the nearest hundredth, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
