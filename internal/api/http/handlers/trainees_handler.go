package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-service/internal/api/dto"
	"github.com/spec-kit/training-service/internal/service"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// TraineesHandler manages enrollment record endpoints.
type TraineesHandler struct {
	service *service.TraineeService
}

// NewTraineesHandler constructs handler.
func NewTraineesHandler(traineeService *service.TraineeService) *TraineesHandler {
	return &TraineesHandler{service: traineeService}
}

// EnrollTrainee POST /trainees.
func (h *TraineesHandler) EnrollTrainee(c *fiber.Ctx) error {
	var req dto.TraineeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := req.ToInput()
	if err != nil {
		return err
	}
	tr, err := h.service.Enroll(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Trainee enrolled successfully", dto.FromTrainee(tr)))
}

// ListTrainees GET /trainees.
func (h *TraineesHandler) ListTrainees(c *fiber.Ctx) error {
	list, err := h.service.ListTrainees(c.Context())
	if err != nil {
		return err
	}
	items := dto.FromTrainees(list)
	return c.JSON(dto.OKCount("Trainees fetched successfully", items, len(items)))
}

// GetTrainee GET /trainees/:id.
func (h *TraineesHandler) GetTrainee(c *fiber.Ctx) error {
	tr, err := h.service.GetTrainee(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Trainee fetched successfully", dto.FromTrainee(tr)))
}

// UpdateTrainee PUT /trainees/:id.
func (h *TraineesHandler) UpdateTrainee(c *fiber.Ctx) error {
	var req dto.TraineeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := req.ToInput()
	if err != nil {
		return err
	}
	tr, err := h.service.UpdateTrainee(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Trainee updated successfully", dto.FromTrainee(tr)))
}

// DeleteTrainee DELETE /trainees/:id.
func (h *TraineesHandler) DeleteTrainee(c *fiber.Ctx) error {
	if err := h.service.DeleteTrainee(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK("Trainee deleted successfully", nil))
}

// ListByEmployee GET /trainees/employee/:id.
func (h *TraineesHandler) ListByEmployee(c *fiber.Ctx) error {
	list, err := h.service.ListByEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := dto.FromTrainees(list)
	return c.JSON(dto.OKCount("Trainees fetched successfully", items, len(items)))
}

// DeleteByEmployeeName DELETE /trainees/name/:name.
func (h *TraineesHandler) DeleteByEmployeeName(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil {
		return apperrors.NewValidationError("invalid employee name", nil)
	}
	count, err := h.service.DeleteByEmployeeName(c.Context(), name)
	if err != nil {
		return err
	}
	deleted := int(count)
	return c.JSON(dto.OKCount("Trainee records deleted successfully", nil, deleted))
}

// SearchTrainees GET /trainees/search?q=term.
func (h *TraineesHandler) SearchTrainees(c *fiber.Ctx) error {
	list, err := h.service.SearchTrainees(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	items := dto.FromTrainees(list)
	return c.JSON(dto.OKCount("Trainees fetched successfully", items, len(items)))
}

// decodeParam unescapes a path segment so names with spaces round-trip.
func decodeParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
