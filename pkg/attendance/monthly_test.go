package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"station-attendance/models"
)

func record(id, userID, date, in, out string) models.AttendanceRecord {
	h, err := ComputeHours(in, out)
	if err != nil {
		panic(err)
	}
	return models.AttendanceRecord{
		ID: id, UserID: userID, Date: date,
		CheckIn: in, CheckOut: out,
		TotalHrs: h.TotalHrs, OtHrs: h.OtHrs,
	}
}

func TestAggregateMonthLeapFebruaryWithDuplicate(t *testing.T) {
	records := []models.AttendanceRecord{
		record("1", "u1", "2024-02-01", "09:00", "18:30"),
		record("2", "u1", "2024-02-15", "09:00", "17:00"),
		record("3", "u2", "2024-02-15", "09:00", "20:00"),
		record("4", "u1", "2024-02-15", "08:00", "17:15"),
		record("5", "u1", "2024-02-28", "09:00", "17:30"),
		record("6", "u1", "2024-03-01", "09:00", "21:00"),
		record("7", "u1", "2023-02-10", "09:00", "21:00"),
	}

	p, err := PeriodFromIndex(2024, 1)
	require.NoError(t, err)

	got := AggregateMonth(records, "u1", p)

	require.Len(t, got.Days, 3)
	assert.Contains(t, got.Days, 1)
	assert.Contains(t, got.Days, 15)
	assert.Contains(t, got.Days, 28)
	assert.Equal(t, models.DayRecord{CheckIn: "08:00", CheckOut: "17:15", TotalHrs: 9.25, OtHrs: 1.25}, got.Days[15])
	assert.Equal(t, 3, got.TotalPresentDays)
	assert.Equal(t, Round2(1.5+1.25+0.5), got.TotalOtHrs)
	assert.Equal(t, 29, got.DaysInMonth)
	assert.Equal(t, 1, got.Month)
	assert.Equal(t, 2024, got.Year)
}

func TestAggregateMonthEmpty(t *testing.T) {
	records := []models.AttendanceRecord{
		record("1", "someone-else", "2023-02-03", "09:00", "18:00"),
	}

	leap := AggregateMonth(records, "u1", Period{Year: 2024, Month: time.February})
	assert.Empty(t, leap.Days)
	assert.Equal(t, 0, leap.TotalPresentDays)
	assert.Equal(t, 0.0, leap.TotalOtHrs)
	assert.Equal(t, 29, leap.DaysInMonth)

	common := AggregateMonth(nil, "u1", Period{Year: 2023, Month: time.February})
	assert.Empty(t, common.Days)
	assert.Equal(t, 28, common.DaysInMonth)
	assert.Equal(t, 20, common.WorkingDays)
	assert.Equal(t, 20, common.AbsentWorkingDays)
}

func TestAggregateMonthMatchesOpaqueIDOnly(t *testing.T) {
	records := []models.AttendanceRecord{
		record("1", "EMP001", "2024-05-06", "09:00", "18:00"),
	}
	got := AggregateMonth(records, "1717000000000", Period{Year: 2024, Month: time.May})
	assert.Empty(t, got.Days)
}

func TestAggregateMonthSkipsUnreadableDates(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: "1", UserID: "u1", Date: "not-a-date", OtHrs: 4},
		record("2", "u1", "2024-05-06T00:00:00Z", "09:00", "18:00"),
	}
	got := AggregateMonth(records, "u1", Period{Year: 2024, Month: time.May})
	require.Len(t, got.Days, 1)
	assert.Equal(t, 1.0, got.TotalOtHrs)
}

func TestDaysInMonth(t *testing.T) {
	cases := map[Period]int{
		{Year: 2024, Month: time.February}:  29,
		{Year: 2023, Month: time.February}:  28,
		{Year: 1900, Month: time.February}:  28,
		{Year: 2000, Month: time.February}:  29,
		{Year: 2024, Month: time.April}:     30,
		{Year: 2024, Month: time.December}:  31,
		{Year: 2024, Month: time.January}:   31,
		{Year: 2025, Month: time.September}: 30,
	}
	for p, want := range cases {
		assert.Equal(t, want, p.DaysInMonth(), p.Title())
	}
}

func TestPeriodFromIndex(t *testing.T) {
	p, err := PeriodFromIndex(2024, 0)
	require.NoError(t, err)
	assert.Equal(t, time.January, p.Month)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, "Monthly_Attendance_2024_01", p.Title())

	_, err = PeriodFromIndex(2024, 12)
	assert.Error(t, err)
	_, err = PeriodFromIndex(2024, -1)
	assert.Error(t, err)
}

func TestWorkingDays(t *testing.T) {
	// February 2024 starts on a Thursday.
	days := WorkingDays(Period{Year: 2024, Month: time.February})
	require.Len(t, days, 21)
	assert.Equal(t, []int{1, 2, 5, 6, 7, 8, 9}, days[:7])
	assert.Equal(t, 29, days[len(days)-1])
}

func TestBuildMonthlyGrid(t *testing.T) {
	users := []models.User{
		{ID: "a", UserID: "EMP001", UserName: "Asha"},
		{ID: "b", UserID: "EMP002", UserName: "Bilal"},
	}
	records := []models.AttendanceRecord{
		record("1", "a", "2024-02-05", "09:00", "19:00"),
		record("2", "b", "2024-02-06", "09:00", "17:00"),
		record("3", "ghost", "2024-02-06", "09:00", "17:00"),
	}

	grid := BuildMonthlyGrid(users, records, Period{Year: 2024, Month: time.February})

	assert.Equal(t, "Monthly_Attendance_2024_02", grid.Title)
	assert.Equal(t, "February", grid.MonthName)
	assert.Len(t, grid.Days, 29)
	assert.Equal(t, 1, grid.Days[0])
	assert.Equal(t, 29, grid.Days[28])
	require.Len(t, grid.Rows, 2)

	assert.Equal(t, "EMP001", grid.Rows[0].UserID)
	assert.Equal(t, 2.0, grid.Rows[0].TotalOtHrs)
	assert.Equal(t, 1, grid.Rows[0].TotalPresentDays)
	assert.Equal(t, 20, grid.Rows[0].AbsentWorkingDays)

	assert.Equal(t, "Bilal", grid.Rows[1].UserName)
	assert.Equal(t, 0.0, grid.Rows[1].TotalOtHrs)
}

func TestBuildMonthlyGridNoUsers(t *testing.T) {
	grid := BuildMonthlyGrid(nil, nil, Period{Year: 2023, Month: time.February})
	assert.Empty(t, grid.Rows)
	assert.NotNil(t, grid.Rows)
	assert.Equal(t, 28, grid.DaysInMonth)
}

func TestOccurrenceDaysReportsBadRule(t *testing.T) {
	_, err := occurrenceDays(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Bymonth: []int{13},
	})
	assert.Error(t, err)

	days, err := occurrenceDays(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Until:     time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC),
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, days)
}
