package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func GetTeacherDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacher, err := asm.TeacherInfo(c.UserContext(), c.Query("id"))
		if err != nil {
			return err
		}
		return c.JSON(teacher)
	}
}
