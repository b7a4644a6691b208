package models

type MessageResponse struct {
	Message string `json:"message"`
}

type GetAllUsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type CreateUserResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type RecordAttendanceResponse struct {
	Message string             `json:"message"`
	Saved   int                `json:"saved"`
	Records []AttendanceRecord `json:"records"`
}

type CreateStationResponse struct {
	Message string   `json:"message"`
	Station *Station `json:"station"`
}

// LocateResponse reports how far a point is from a station, in metres.
type LocateResponse struct {
	StationID string  `json:"stationId"`
	Distance  float64 `json:"distance"`
	Radius    int     `json:"radius"`
	Inside    bool    `json:"inside"`
}
