package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "station-attendance/docs"
	"station-attendance/handlers"
	"station-attendance/repository"
)

// Repositories are the stores the routes read from and write to.
type Repositories struct {
	Users      *repository.UserRepository
	Attendance repository.AttendanceRepository
	Stations   repository.StationRepository
}

func SetupRoutes(app *fiber.App, repos Repositories) {
	log.Println("Registering application routes...")

	userHandler := handlers.NewUserHandler(repos.Users)
	attendanceHandler := handlers.NewAttendanceHandler(repos.Attendance, repos.Users)
	stationHandler := handlers.NewStationHandler(repos.Stations)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Station Attendance API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Get("/", userHandler.GetAllUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUserByID)
	users.Delete("/:id", userHandler.DeleteUser)

	attendance := api.Group("/attendance")
	attendance.Get("/", attendanceHandler.GetUserAttendance)
	attendance.Post("/", attendanceHandler.RecordAttendance)
	attendance.Get("/compute", attendanceHandler.ComputeHours)
	attendance.Get("/monthly", attendanceHandler.GetMonthlyGrid)
	// export is registered before :userId so it is not taken for an id
	attendance.Get("/monthly/export", attendanceHandler.ExportMonthly)
	attendance.Get("/monthly/:userId", attendanceHandler.GetMonthlySummary)

	stations := api.Group("/stations")
	stations.Get("/", stationHandler.GetStations)
	stations.Post("/", stationHandler.CreateStation)
	stations.Get("/:id", stationHandler.GetStationByID)
	stations.Get("/:id/qr", stationHandler.GetStationQRCode)
	stations.Post("/:id/locate", stationHandler.LocateInStation)

	log.Println("All application routes registered.")
}
