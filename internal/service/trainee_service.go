package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/events"
	"github.com/spec-kit/training-service/internal/repository"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// TraineeService coordinates enrollment workflows.
type TraineeService struct {
	trainees   repository.TraineeRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// TraineeDependencies bundles collaborators for the trainee service.
type TraineeDependencies struct {
	TraineeRepo  repository.TraineeRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// TraineeInput describes an enrollment payload.
type TraineeInput struct {
	EmployeeID   string
	TrainingName domain.TrainingCategory
	StartDate    time.Time
	EndDate      *time.Time
	Status       domain.TraineeStatus
}

// NewTraineeService constructs the service.
func NewTraineeService(deps TraineeDependencies) *TraineeService {
	return &TraineeService{
		trainees:   deps.TraineeRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Enroll validates and persists a new enrollment, denormalizing the
// employee name from the authoritative employee record.
func (s *TraineeService) Enroll(ctx context.Context, input TraineeInput) (*domain.Trainee, error) {
	if err := validateTraineeInput(input); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, input.EmployeeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"employeeId": input.EmployeeID})
		}
		return nil, apperrors.MapError(err)
	}

	tr := &domain.Trainee{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.Name,
		TrainingName: input.TrainingName,
		StartDate:    domain.DateOnly(input.StartDate),
		EndDate:      normalizeEndDate(input.EndDate),
		Status:       input.Status,
	}

	if err := s.trainees.Create(ctx, tr); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventTraineeEnrolled, events.TraineePayload{
		TraineeID:    tr.ID,
		EmployeeID:   tr.EmployeeID,
		EmployeeName: tr.EmployeeName,
		TrainingName: tr.TrainingName,
		Status:       tr.Status,
	})
	return tr, nil
}

// ListTrainees returns every enrollment record.
func (s *TraineeService) ListTrainees(ctx context.Context) ([]domain.Trainee, error) {
	list, err := s.trainees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// ListByEmployee returns the enrollments referencing one employee.
func (s *TraineeService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Trainee, error) {
	list, err := s.trainees.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// GetTrainee fetches one enrollment by internal id.
func (s *TraineeService) GetTrainee(ctx context.Context, id string) (*domain.Trainee, error) {
	tr, err := s.trainees.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("trainee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return tr, nil
}

// UpdateTrainee mutates an existing enrollment.
func (s *TraineeService) UpdateTrainee(ctx context.Context, id string, input TraineeInput) (*domain.Trainee, error) {
	if err := validateTraineeInput(input); err != nil {
		return nil, err
	}

	tr, err := s.GetTrainee(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.EmployeeID != tr.EmployeeID {
		emp, err := s.employees.GetByID(ctx, input.EmployeeID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.NewNotFound("employee", map[string]any{"employeeId": input.EmployeeID})
			}
			return nil, apperrors.MapError(err)
		}
		tr.EmployeeID = emp.EmployeeID
		tr.EmployeeName = emp.Name
	}

	tr.TrainingName = input.TrainingName
	tr.StartDate = domain.DateOnly(input.StartDate)
	tr.EndDate = normalizeEndDate(input.EndDate)
	tr.Status = input.Status

	if !tr.HasValidDates() {
		return nil, apperrors.NewValidationError("end date must not precede start date", nil)
	}

	if err := s.trainees.Update(ctx, tr); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventTraineeUpdated, events.TraineePayload{
		TraineeID:    tr.ID,
		EmployeeID:   tr.EmployeeID,
		EmployeeName: tr.EmployeeName,
		TrainingName: tr.TrainingName,
		Status:       tr.Status,
	})
	return tr, nil
}

// DeleteTrainee removes one enrollment by internal id.
func (s *TraineeService) DeleteTrainee(ctx context.Context, id string) error {
	tr, err := s.GetTrainee(ctx, id)
	if err != nil {
		return err
	}

	if err := s.trainees.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventTraineeDeleted, events.TraineePayload{
		TraineeID:    tr.ID,
		EmployeeID:   tr.EmployeeID,
		EmployeeName: tr.EmployeeName,
		TrainingName: tr.TrainingName,
		Status:       tr.Status,
	})
	return nil
}

// DeleteByEmployeeName bulk-removes every enrollment carrying the given
// denormalized name and reports how many were removed.
func (s *TraineeService) DeleteByEmployeeName(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperrors.NewValidationError("employee name required", nil)
	}

	count, err := s.trainees.DeleteByEmployeeName(ctx, name)
	if err != nil {
		return 0, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventTraineeDeleted, events.TraineeBulkDeletePayload{
		EmployeeName: name,
		Deleted:      count,
	})
	return count, nil
}

// SearchTrainees runs the server-side term search, falling back to the full
// listing for a blank term.
func (s *TraineeService) SearchTrainees(ctx context.Context, term string) ([]domain.Trainee, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListTrainees(ctx)
	}
	list, err := s.trainees.SearchByTerm(ctx, term)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

func (s *TraineeService) publishEvent(ctx context.Context, eventType events.EventType, payload any) {
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

func normalizeEndDate(end *time.Time) *time.Time {
	if end == nil || end.IsZero() {
		return nil
	}
	d := domain.DateOnly(*end)
	return &d
}

func validateTraineeInput(input TraineeInput) error {
	details := map[string]any{}
	if !domain.ValidEmployeeID(input.EmployeeID) {
		details["employeeId"] = "must match EMP followed by five digits"
	}
	if !input.TrainingName.Valid() {
		details["trainingName"] = "unknown training"
	}
	if input.StartDate.IsZero() {
		details["startDate"] = "required"
	}
	if !input.Status.Valid() {
		details["status"] = "must be Pending, Ongoing, or Completed"
	}
	if input.EndDate != nil && !input.EndDate.IsZero() &&
		domain.DateOnly(*input.EndDate).Before(domain.DateOnly(input.StartDate)) {
		details["endDate"] = "must not precede start date"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("trainee validation failed", details)
	}
	return nil
}
