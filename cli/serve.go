package cli

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"station-attendance/config"
	"station-attendance/repository"
	"station-attendance/router"
	"station-attendance/seeder"
	"station-attendance/store"
)

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	return cmd
}

func runServe(port string) error {
	cfg := config.LoadConfig()
	if port != "" {
		cfg.Port = port
	}

	backend, err := config.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	repos := newRepositories(backend)
	if cfg.SeedDemo {
		seeder.SeedUsers(repos.Users)
		seeder.SeedStations(repos.Stations)
	}

	app := NewApp(cfg, repos)

	log.Printf("Server running on port %s (store: %s)", cfg.Port, cfg.StoreDriver)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", cfg.AllowedOrigins)
	return app.Listen(":" + cfg.Port)
}

// NewApp builds the Fiber app with middleware and routes but does not listen.
func NewApp(cfg *config.AppConfig, repos router.Repositories) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "station-attendance"})

	app.Use(recover.New())
	config.SetupCORS(app, cfg.AllowedOrigins)
	app.Use(logger.New())

	router.SetupRoutes(app, repos)
	return app
}

func newRepositories(backend store.Backend) router.Repositories {
	return router.Repositories{
		Users:      repository.NewUserRepository(backend),
		Attendance: repository.NewAttendanceRepository(backend),
		Stations:   repository.NewStationRepository(backend),
	}
}
