package attendance

import (
	"fmt"
	"log"
	"time"

	"github.com/teambition/rrule-go"
)

const dateLayout = "2006-01-02"

// Period is one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodFromIndex builds a Period from a zero-based month index (0 is January).
func PeriodFromIndex(year, monthIndex int) (Period, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return Period{}, fmt.Errorf("month index %d out of range 0-11", monthIndex)
	}
	return Period{Year: year, Month: time.Month(monthIndex + 1)}, nil
}

// CurrentPeriod returns the month containing t.
func CurrentPeriod(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) Index() int {
	return int(p.Month) - 1
}

func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth is day zero of the following month, so February follows the
// Gregorian leap-year rule.
func (p Period) DaysInMonth() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Title is the grid and export name, e.g. Monthly_Attendance_2024_02.
func (p Period) Title() string {
	return fmt.Sprintf("Monthly_Attendance_%d_%02d", p.Year, int(p.Month))
}

// ParseDate reads a record date. Plain YYYY-MM-DD is expected; full RFC 3339
// timestamps are accepted and their calendar date is used as written.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t, nil
}

// WorkingDays lists the Monday to Friday days of month in p.
func WorkingDays(p Period) []int {
	start := p.Start()
	until := time.Date(p.Year, p.Month, p.DaysInMonth(), 0, 0, 0, 0, time.UTC)

	days, err := occurrenceDays(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   start,
		Until:     until,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		log.Printf("attendance: working days for %s: %v", p.Title(), err)
		return make([]int, 0)
	}
	return days
}

// occurrenceDays expands a recurrence into day-of-month numbers.
func occurrenceDays(opt rrule.ROption) ([]int, error) {
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("build recurrence: %w", err)
	}

	occurrences := rule.All()
	days := make([]int, 0, len(occurrences))
	for _, occ := range occurrences {
		days = append(days, occ.Day())
	}
	return days, nil
}
