package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

type stubStore struct {
	tables map[string][][]string
}

func (s *stubStore) Table(_ context.Context, name, _ string) ([][]string, error) {
	return s.tables[name], nil
}

const testSecret = "test-secret"

func testApp() *fiber.App {
	asm := &views.Assembler{
		Store: &stubStore{tables: map[string][][]string{
			"Authentication": {
				{"id", "token"},
				{"EMP001", "tok-1"},
			},
		}},
		Now: time.Now,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"success": false, "message": fiberErr.Message})
			}
			code, message := views.HTTPStatus(err)
			return c.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	SetupRoutes(app, asm, testSecret)

	// A protected probe route for middleware tests.
	app.Get("/api/probe", Middleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"employeeId": c.Locals("employee_id")})
	})
	return app
}

func TestLoginIssuesToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/auth", strings.NewReader(`{"employeeId":"EMP001"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)

	token, err := jwt.ParseWithClaims(body.Token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*Claims)
	assert.Equal(t, "EMP001", claims.EmployeeID)
}

func TestLoginMissingEmployeeID(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/auth", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestLoginUnknownEmployee(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/auth", strings.NewReader(`{"employeeId":"EMP404"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMiddleware(t *testing.T) {
	app := testApp()

	// No token.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Garbage token.
	req := httptest.NewRequest("GET", "/api/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Valid token.
	token, err := GenerateToken(testSecret, "EMP001")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/api/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
