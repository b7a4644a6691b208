package main

import (
	_ "time/tzdata"

	"station-attendance/cli"
)

// @title Station Attendance API
// @version 1.0
// @description Users, station geofences, daily attendance with overtime, and monthly grids.
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Attendance
// @tag.description Daily check-in/check-out recording and hour previews
//
// @tag.name Monthly
// @tag.description Monthly summaries, grid and exports
//
// @tag.name Stations
// @tag.description Station master data, QR codes and geofence checks
func main() {
	cli.Execute()
}
