package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func GetDashboardDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := asm.Dashboard(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(view)
	}
}

func GetHealthAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": asm.Health(c.UserContext())})
	}
}
