package workshops

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func GetWorkshopsDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := asm.Workshops(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(view)
	}
}
