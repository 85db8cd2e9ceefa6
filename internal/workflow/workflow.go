// Package workflow drives the interactive enrollment and record-editing
// flows. Every mutation passes through a confirmation gate before any
// network call; a declined confirmation is a normal outcome, not an error.
package workflow

import (
	"context"

	"github.com/spec-kit/training-service/internal/api/dto"
)

// State tracks where a form flow currently stands.
type State string

const (
	StateIdle                 State = "Idle"
	StateComposing            State = "Composing"
	StateAwaitingConfirmation State = "AwaitingConfirmation"
	StateSubmitting           State = "Submitting"
	StateSucceeded            State = "Succeeded"
	StateFailed               State = "Failed"
)

// Outcome is the terminal result of one submit attempt.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeDeclined  Outcome = "declined"
	OutcomeFailed    Outcome = "failed"
	// OutcomeDiscarded marks a submit whose result arrived after the flow
	// was closed; the store call happened but nothing was applied locally.
	OutcomeDiscarded Outcome = "discarded"
)

// EmployeeStore is the record-store surface the employee flow needs.
type EmployeeStore interface {
	Create(ctx context.Context, req dto.EmployeeRequest) (dto.EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req dto.EmployeeRequest) (dto.EmployeeResponse, error)
	Deactivate(ctx context.Context, employeeID string) error
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Search(ctx context.Context, term string) ([]dto.EmployeeResponse, error)
}

// TraineeStore is the record-store surface the enrollment flow needs.
type TraineeStore interface {
	Enroll(ctx context.Context, req dto.TraineeRequest) (dto.TraineeResponse, error)
	Update(ctx context.Context, id string, req dto.TraineeRequest) (dto.TraineeResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeName(ctx context.Context, name string) (int, error)
	List(ctx context.Context) ([]dto.TraineeResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]dto.TraineeResponse, error)
	Search(ctx context.Context, term string) ([]dto.TraineeResponse, error)
}
