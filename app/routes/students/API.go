package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func GetEnrollmentDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := asm.Enrollment(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}
}

func GetCategoriesDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := asm.Categories(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(view)
	}
}

func GetStudentDetailsAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := asm.StudentDetails(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(view)
	}
}
