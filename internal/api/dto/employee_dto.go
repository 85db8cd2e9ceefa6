package dto

import (
	"time"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/service"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// EmployeeRequest payload. Dates travel as calendar strings.
type EmployeeRequest struct {
	EmployeeID  string            `json:"employeeId"`
	Name        string            `json:"employeeName"`
	Email       string            `json:"email"`
	Department  domain.Department `json:"department"`
	JoiningDate string            `json:"joiningDate"`
	Phone       string            `json:"phone"`
}

// EmployeeResponse mirrors a stored employee record.
type EmployeeResponse struct {
	EmployeeID  string            `json:"employeeId"`
	Name        string            `json:"employeeName"`
	Email       string            `json:"email"`
	Department  domain.Department `json:"department"`
	JoiningDate string            `json:"joiningDate"`
	Phone       string            `json:"phone"`
	Active      bool              `json:"isActive"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ToInput converts the request into the service payload.
func (r EmployeeRequest) ToInput() (service.EmployeeInput, error) {
	joining, err := parseDate(r.JoiningDate)
	if err != nil {
		return service.EmployeeInput{}, apperrors.NewValidationError("joiningDate must be YYYY-MM-DD", map[string]any{"joiningDate": r.JoiningDate})
	}
	return service.EmployeeInput{
		EmployeeID:  r.EmployeeID,
		Name:        r.Name,
		Email:       r.Email,
		Department:  r.Department,
		JoiningDate: joining,
		Phone:       r.Phone,
	}, nil
}

// FromEmployee maps a domain record onto the wire shape.
func FromEmployee(emp *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  emp.EmployeeID,
		Name:        emp.Name,
		Email:       emp.Email,
		Department:  emp.Department,
		JoiningDate: emp.JoiningDate.Format(DateLayout),
		Phone:       emp.Phone,
		Active:      emp.Active,
		CreatedAt:   emp.CreatedAt,
		UpdatedAt:   emp.UpdatedAt,
	}
}

// FromEmployees maps a slice, never returning nil so JSON stays an array.
func FromEmployees(list []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromEmployee(&list[i]))
	}
	return out
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, value)
}
