package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

func LoginAPI(asm *views.Assembler, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginRequest struct {
			EmployeeID string `json:"employeeId"`
		}

		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		cred, err := asm.Authenticate(c.UserContext(), req.EmployeeID)
		if err != nil {
			return err
		}

		token, err := GenerateToken(jwtSecret, cred.EmployeeID)
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Login successful",
			"token":   token,
		})
	}
}
