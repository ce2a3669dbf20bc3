package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func GetAttendanceDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := asm.Attendance(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(view)
	}
}
