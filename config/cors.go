package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const defaultOrigins = "http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173"

func SetupCORS(app *fiber.App, allowedOrigins []string) {
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:  "GET, POST, DELETE, OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Requested-With",
		ExposeHeaders: "Content-Length, Content-Type, Content-Disposition",
	}))
}
