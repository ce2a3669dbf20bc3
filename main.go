package main

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/config"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/achievements"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/assessments"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/attendance"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/auth"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/calendar"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/communications"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/dashboard"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/discipline"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/performance"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/students"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/syllabus"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/teachers"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/routes/workshops"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/services"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/sheets"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/views"
)

// apiErrorHandler maps the assembly pipeline's error taxonomy onto HTTP
// statuses. Anything unrecognized becomes a 500 with a generic message;
// internal detail stays in the logs.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code, message = fiberErr.Code, fiberErr.Message
	} else {
		code, message = views.HTTPStatus(err)
		if code == fiber.StatusInternalServerError {
			log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
		}
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
	return c.Status(code).SendString(message)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// The table-store client is built once here and injected everywhere;
	// nothing else constructs one.
	store := sheets.NewClient(cfg.SheetsBaseURL, cfg.SpreadsheetID, cfg.GoogleAPIKey, cfg.HTTPTimeout)
	asm := views.NewAssembler(store)

	services.StartStoreMonitor(store, 10*time.Minute)

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: apiErrorHandler,
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Teacher Dashboard API",
		})
	})

	protect := auth.Middleware(cfg.JWTSecret)

	auth.SetupRoutes(app, asm, cfg.JWTSecret)
	teachers.SetupRoutes(app, asm, protect)
	dashboard.SetupRoutes(app, asm, protect)
	students.SetupRoutes(app, asm, protect)
	performance.SetupRoutes(app, asm, protect)
	workshops.SetupRoutes(app, asm, protect)
	discipline.SetupRoutes(app, asm, protect)
	achievements.SetupRoutes(app, asm, protect)
	attendance.SetupRoutes(app, asm, protect)
	assessments.SetupRoutes(app, asm, protect)
	syllabus.SetupRoutes(app, asm, protect)
	calendar.SetupRoutes(app, asm, protect)
	communications.SetupRoutes(app, asm, protect)

	log.Println("Server starting on port " + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
