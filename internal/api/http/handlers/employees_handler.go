package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-service/internal/api/dto"
	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/repository"
	"github.com/spec-kit/training-service/internal/service"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// EmployeesHandler manages employee record endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// CreateEmployee POST /employees.
func (h *EmployeesHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := req.ToInput()
	if err != nil {
		return err
	}
	emp, err := h.service.CreateEmployee(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Employee created successfully", dto.FromEmployee(emp)))
}

// ListEmployees GET /employees.
func (h *EmployeesHandler) ListEmployees(c *fiber.Ctx) error {
	filter := parseEmployeeFilter(c)
	list, err := h.service.ListEmployees(c.Context(), filter)
	if err != nil {
		return err
	}
	items := dto.FromEmployees(list)
	return c.JSON(dto.OKCount("Employees fetched successfully", items, len(items)))
}

// GetEmployee GET /employees/:id.
func (h *EmployeesHandler) GetEmployee(c *fiber.Ctx) error {
	emp, err := h.service.GetEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Employee fetched successfully", dto.FromEmployee(emp)))
}

// UpdateEmployee PUT /employees/:id.
func (h *EmployeesHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := req.ToInput()
	if err != nil {
		return err
	}
	emp, err := h.service.UpdateEmployee(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Employee updated successfully", dto.FromEmployee(emp)))
}

// DeactivateEmployee DELETE /employees/:id. The row survives as inactive.
func (h *EmployeesHandler) DeactivateEmployee(c *fiber.Ctx) error {
	if err := h.service.DeactivateEmployee(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK("Employee deactivated successfully", nil))
}

// SearchEmployees GET /employees/search?q=term.
func (h *EmployeesHandler) SearchEmployees(c *fiber.Ctx) error {
	list, err := h.service.SearchEmployees(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	items := dto.FromEmployees(list)
	return c.JSON(dto.OKCount("Employees fetched successfully", items, len(items)))
}

func parseEmployeeFilter(c *fiber.Ctx) repository.EmployeeFilter {
	filter := repository.EmployeeFilter{}
	if raw := c.Query("department"); raw != "" {
		dept := domain.Department(raw)
		filter.Department = &dept
	}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = limit
	}
	if offset := c.QueryInt("offset"); offset > 0 {
		filter.Offset = offset
	}
	return filter
}
