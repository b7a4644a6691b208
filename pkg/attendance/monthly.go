package attendance

import (
	"station-attendance/models"
)

// MonthlySummary is one user's attendance folded over one month.
type MonthlySummary struct {
	UserID      string                   `json:"userId"`
	Year        int                      `json:"year"`
	Month       int                      `json:"month"`
	DaysInMonth int                      `json:"daysInMonth"`
	Days        map[int]models.DayRecord `json:"days"`

	TotalPresentDays int     `json:"totalPresentDays"`
	TotalOtHrs       float64 `json:"totalOtHrs"`

	WorkingDays       int `json:"workingDays"`
	AbsentWorkingDays int `json:"absentWorkingDays"`
}

// GridRow is a user line of the monthly grid. UserID is the human-facing code.
type GridRow struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"userId"`
	UserName          string                   `json:"userName"`
	Days              map[int]models.DayRecord `json:"days"`
	TotalPresentDays  int                      `json:"totalPresentDays"`
	TotalOtHrs        float64                  `json:"totalOtHrs"`
	AbsentWorkingDays int                      `json:"absentWorkingDays"`
}

type MonthlyGrid struct {
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	MonthName   string    `json:"monthName"`
	DaysInMonth int       `json:"daysInMonth"`
	Days        []int     `json:"days"`
	WorkingDays []int     `json:"workingDays"`
	Rows        []GridRow `json:"rows"`
}

// FilterByUserAndMonth keeps the records of userID (the opaque user id) dated
// inside p, in their stored order. Records with an unreadable date are
// dropped.
func FilterByUserAndMonth(records []models.AttendanceRecord, userID string, p Period) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, 0)
	for _, rec := range records {
		if rec.UserID != userID {
			continue
		}
		date, err := ParseDate(rec.Date)
		if err != nil || !p.Contains(date) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// AggregateMonth folds the records of one user into a per-day map and totals.
// When two records share a day the later one in records wins.
func AggregateMonth(records []models.AttendanceRecord, userID string, p Period) MonthlySummary {
	return aggregate(records, userID, p, WorkingDays(p))
}

func aggregate(records []models.AttendanceRecord, userID string, p Period, workingDays []int) MonthlySummary {
	days := make(map[int]models.DayRecord)
	for _, rec := range FilterByUserAndMonth(records, userID, p) {
		date, _ := ParseDate(rec.Date)
		days[date.Day()] = models.DayRecord{
			CheckIn:  rec.CheckIn,
			CheckOut: rec.CheckOut,
			TotalHrs: rec.TotalHrs,
			OtHrs:    rec.OtHrs,
		}
	}

	var otSum float64
	for _, d := range days {
		otSum += d.OtHrs
	}

	absent := 0
	for _, day := range workingDays {
		if _, ok := days[day]; !ok {
			absent++
		}
	}

	return MonthlySummary{
		UserID:            userID,
		Year:              p.Year,
		Month:             p.Index(),
		DaysInMonth:       p.DaysInMonth(),
		Days:              days,
		TotalPresentDays:  len(days),
		TotalOtHrs:        Round2(otSum),
		WorkingDays:       len(workingDays),
		AbsentWorkingDays: absent,
	}
}

// BuildMonthlyGrid aggregates every user for p, keeping the users' order.
func BuildMonthlyGrid(users []models.User, records []models.AttendanceRecord, p Period) MonthlyGrid {
	workingDays := WorkingDays(p)

	dayNumbers := make([]int, p.DaysInMonth())
	for i := range dayNumbers {
		dayNumbers[i] = i + 1
	}

	rows := make([]GridRow, 0, len(users))
	for _, user := range users {
		summary := aggregate(records, user.ID, p, workingDays)
		rows = append(rows, GridRow{
			ID:                user.ID,
			UserID:            user.UserID,
			UserName:          user.UserName,
			Days:              summary.Days,
			TotalPresentDays:  summary.TotalPresentDays,
			TotalOtHrs:        summary.TotalOtHrs,
			AbsentWorkingDays: summary.AbsentWorkingDays,
		})
	}

	return MonthlyGrid{
		Title:       p.Title(),
		Year:        p.Year,
		Month:       p.Index(),
		MonthName:   p.Month.String(),
		DaysInMonth: p.DaysInMonth(),
		Days:        dayNumbers,
		WorkingDays: workingDays,
		Rows:        rows,
	}
}
