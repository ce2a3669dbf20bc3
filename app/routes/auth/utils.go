package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	EmployeeID string `json:"employee_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues the placeholder access token: a signed JWT whose only
// payload is the employee ID.
func GenerateToken(secret, employeeID string) (string, error) {
	claims := Claims{
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "teacher-dashboard",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Middleware guards the data endpoints. The scheme is a placeholder: any
// token that parses and verifies is accepted, with no per-route scopes.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if raw == "" || raw == c.Get("Authorization") {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing bearer token")
		}

		token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		if claims, ok := token.Claims.(*Claims); ok {
			c.Locals("employee_id", claims.EmployeeID)
		}
		return c.Next()
	}
}
