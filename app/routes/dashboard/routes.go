package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func SetupRoutes(app *fiber.App, asm *views.Assembler, protect fiber.Handler) {
	// Health stays unprotected so the supervisor can probe it.
	app.Get("/api/health", GetHealthAPI(asm))

	api := app.Group("/api", protect)
	api.Get("/dashboard-data", GetDashboardDataAPI(asm))
}
