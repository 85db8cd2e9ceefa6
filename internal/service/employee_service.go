package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/events"
	"github.com/spec-kit/training-service/internal/repository"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

const uniqueViolationCode = "23505"

// EmployeeService coordinates employee record workflows.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// EmployeeDependencies bundles collaborators for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// EmployeeInput describes the mutable employee payload. The identifier is
// accepted on create only and frozen afterwards.
type EmployeeInput struct {
	EmployeeID  string
	Name        string
	Email       string
	Department  domain.Department
	JoiningDate time.Time
	Phone       string
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateEmployee validates and persists a new employee. Validation failures
// block before any repository call.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	if err := validateEmployeeInput(input, true); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		EmployeeID:  input.EmployeeID,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Department:  input.Department,
		JoiningDate: domain.DateOnly(input.JoiningDate),
		Phone:       input.Phone,
		Active:      true,
	}

	if err := s.employees.Create(ctx, emp); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.NewConflict("Employee already exists", map[string]any{"employeeId": emp.EmployeeID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventEmployeeCreated, events.EmployeePayload{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Department: emp.Department,
		Active:     emp.Active,
	})
	return emp, nil
}

// ListEmployees returns employees matching the filter.
func (s *EmployeeService) ListEmployees(ctx context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	list, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// GetEmployee fetches a single employee by identifier.
func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"employeeId": id})
		}
		return nil, apperrors.MapError(err)
	}
	return emp, nil
}

// UpdateEmployee mutates every field except the identifier, which is
// immutable once the record exists.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error) {
	if err := validateEmployeeInput(input, false); err != nil {
		return nil, err
	}

	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	emp.Name = strings.TrimSpace(input.Name)
	emp.Email = strings.TrimSpace(input.Email)
	emp.Department = input.Department
	emp.JoiningDate = domain.DateOnly(input.JoiningDate)
	emp.Phone = input.Phone

	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventEmployeeUpdated, events.EmployeePayload{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Department: emp.Department,
		Active:     emp.Active,
	})
	return emp, nil
}

// DeactivateEmployee soft-deletes the record: the row stays, active drops.
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, id string) error {
	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employees.Deactivate(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("employee", map[string]any{"employeeId": id})
		}
		return apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventEmployeeDeactivated, events.EmployeePayload{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Department: emp.Department,
		Active:     false,
	})
	return nil
}

// SearchEmployees runs the server-side term search. A blank term falls back
// to the unfiltered listing.
func (s *EmployeeService) SearchEmployees(ctx context.Context, term string) ([]domain.Employee, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListEmployees(ctx, repository.EmployeeFilter{})
	}
	list, err := s.employees.SearchByTerm(ctx, term)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

func (s *EmployeeService) publishEvent(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func validateEmployeeInput(input EmployeeInput, requireID bool) error {
	details := map[string]any{}
	if requireID && !domain.ValidEmployeeID(input.EmployeeID) {
		details["employeeId"] = "must match EMP followed by five digits"
	}
	if strings.TrimSpace(input.Name) == "" {
		details["employeeName"] = "required"
	}
	if !domain.ValidEmail(strings.TrimSpace(input.Email)) {
		details["email"] = "invalid email"
	}
	if !input.Department.Valid() {
		details["department"] = "unknown department"
	}
	if input.JoiningDate.IsZero() {
		details["joiningDate"] = "required"
	}
	if !domain.ValidPhone(input.Phone) {
		details["phone"] = "must be exactly ten digits"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("employee validation failed", details)
	}
	return nil
}
