package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func SetupRoutes(app *fiber.App, asm *views.Assembler, protect fiber.Handler) {
	api := app.Group("/api", protect)
	api.Get("/attendance-data", GetAttendanceDataAPI(asm))
}
