package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

// SetupRoutes registers the login endpoint. Login itself is unprotected.
func SetupRoutes(app *fiber.App, asm *views.Assembler, jwtSecret string) {
	app.Post("/api/auth", LoginAPI(asm, jwtSecret))
}
