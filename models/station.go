package models

import "time"

const (
	DefaultStationRadius    = 100
	DefaultNearbyBusStation = "Not Available"
)

// Station is a geofenced point of interest. Radius is in metres.
type Station struct {
	ID               string    `json:"id"`
	StationName      string    `json:"stationName"`
	PlaceArea        string    `json:"placeArea"`
	NearbyBusStation string    `json:"nearbyBusStation"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Radius           int       `json:"radius"`
	CreatedAt        time.Time `json:"createdAt"`
}

type StationCreatePayload struct {
	StationName      string   `json:"stationName" validate:"required,max=200"`
	PlaceArea        string   `json:"placeArea" validate:"max=200"`
	NearbyBusStation string   `json:"nearbyBusStation" validate:"max=200"`
	Latitude         *float64 `json:"latitude" validate:"required,latitude"`
	Longitude        *float64 `json:"longitude" validate:"required,longitude"`
	Radius           int      `json:"radius" validate:"omitempty,min=20,max=500"`
}

type LocatePayload struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type StationPage struct {
	Data       []Station `json:"data"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalPages int       `json:"totalPages"`
	// Start and End are 1-based positions for "Showing Start to End of Total".
	Start int `json:"start"`
	End   int `json:"end"`
}
