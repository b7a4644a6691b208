package models

// AttendanceRecord is one check-in/check-out event for one user on one date.
// TotalHrs and OtHrs are computed when the record is written and are never
// derived again from CheckIn/CheckOut.
type AttendanceRecord struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Date     string  `json:"date"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	TotalHrs float64 `json:"totalHrs"`
	OtHrs    float64 `json:"otHrs"`
}

type AttendanceEntryPayload struct {
	UserID   string `json:"userId" validate:"required"`
	CheckIn  string `json:"checkIn" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"checkOut" validate:"omitempty,datetime=15:04"`
}

type AttendanceCreatePayload struct {
	Date    string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Entries []AttendanceEntryPayload `json:"entries" validate:"required,dive"`
}

// DayRecord is the figure shown in one cell of the monthly grid.
type DayRecord struct {
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	TotalHrs float64 `json:"totalHrs"`
	OtHrs    float64 `json:"otHrs"`
}
