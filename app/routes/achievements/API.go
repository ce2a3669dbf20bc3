package achievements

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func GetAchievementsDataAPI(asm *views.Assembler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := asm.Achievements(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"records": records,
			"count":   len(records),
		})
	}
}
