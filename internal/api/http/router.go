package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Employees *handlers.EmployeesHandler
	Trainees  *handlers.TraineesHandler
	Dashboard *handlers.DashboardHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	employees := app.Group("/employees")
	employees.Get("/search", cfg.Employees.SearchEmployees)
	employees.Post("/", cfg.Employees.CreateEmployee)
	employees.Get("/", cfg.Employees.ListEmployees)
	employees.Get("/:id", cfg.Employees.GetEmployee)
	employees.Put("/:id", cfg.Employees.UpdateEmployee)
	employees.Delete("/:id", cfg.Employees.DeactivateEmployee)

	trainees := app.Group("/trainees")
	trainees.Get("/search", cfg.Trainees.SearchTrainees)
	trainees.Get("/employee/:id", cfg.Trainees.ListByEmployee)
	trainees.Delete("/name/:name", cfg.Trainees.DeleteByEmployeeName)
	trainees.Post("/", cfg.Trainees.EnrollTrainee)
	trainees.Get("/", cfg.Trainees.ListTrainees)
	trainees.Get("/:id", cfg.Trainees.GetTrainee)
	trainees.Put("/:id", cfg.Trainees.UpdateTrainee)
	trainees.Delete("/:id", cfg.Trainees.DeleteTrainee)

	app.Get("/dashboard/stats", cfg.Dashboard.GetStats)
}
