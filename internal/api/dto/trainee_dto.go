package dto

import (
	"time"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/service"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// TraineeRequest payload. The end date is optional while a training runs.
type TraineeRequest struct {
	EmployeeID   string                  `json:"employeeId"`
	TrainingName domain.TrainingCategory `json:"trainingName"`
	StartDate    string                  `json:"startDate"`
	EndDate      string                  `json:"endDate,omitempty"`
	Status       domain.TraineeStatus    `json:"status"`
}

// TraineeResponse mirrors a stored enrollment record.
type TraineeResponse struct {
	ID           string                  `json:"id"`
	EmployeeID   string                  `json:"employeeId"`
	EmployeeName string                  `json:"employeeName"`
	TrainingName domain.TrainingCategory `json:"trainingName"`
	StartDate    string                  `json:"startDate"`
	EndDate      *string                 `json:"endDate,omitempty"`
	Status       domain.TraineeStatus    `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// ToInput converts the request into the service payload.
func (r TraineeRequest) ToInput() (service.TraineeInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return service.TraineeInput{}, apperrors.NewValidationError("startDate must be YYYY-MM-DD", map[string]any{"startDate": r.StartDate})
	}
	input := service.TraineeInput{
		EmployeeID:   r.EmployeeID,
		TrainingName: r.TrainingName,
		StartDate:    start,
		Status:       r.Status,
	}
	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return service.TraineeInput{}, apperrors.NewValidationError("endDate must be YYYY-MM-DD", map[string]any{"endDate": r.EndDate})
		}
		input.EndDate = &end
	}
	return input, nil
}

// FromTrainee maps a domain record onto the wire shape.
func FromTrainee(tr *domain.Trainee) TraineeResponse {
	resp := TraineeResponse{
		ID:           tr.ID,
		EmployeeID:   tr.EmployeeID,
		EmployeeName: tr.EmployeeName,
		TrainingName: tr.TrainingName,
		StartDate:    tr.StartDate.Format(DateLayout),
		Status:       tr.Status,
		CreatedAt:    tr.CreatedAt,
		UpdatedAt:    tr.UpdatedAt,
	}
	if tr.EndDate != nil {
		end := tr.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	return resp
}

// FromTrainees maps a slice, never returning nil so JSON stays an array.
func FromTrainees(list []domain.Trainee) []TraineeResponse {
	out := make([]TraineeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromTrainee(&list[i]))
	}
	return out
}
