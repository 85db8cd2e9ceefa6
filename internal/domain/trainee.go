package domain

import "time"

// TraineeStatus enumerates the lifecycle of an enrollment. The set is
// closed: no other values are valid anywhere in the system.
type TraineeStatus string

const (
	TraineeStatusPending   TraineeStatus = "Pending"
	TraineeStatusOngoing   TraineeStatus = "Ongoing"
	TraineeStatusCompleted TraineeStatus = "Completed"
)

// TraineeStatuses lists every valid enrollment status.
func TraineeStatuses() []TraineeStatus {
	return []TraineeStatus{TraineeStatusPending, TraineeStatusOngoing, TraineeStatusCompleted}
}

// Valid reports whether s is one of the three closed statuses.
func (s TraineeStatus) Valid() bool {
	switch s {
	case TraineeStatusPending, TraineeStatusOngoing, TraineeStatusCompleted:
		return true
	}
	return false
}

// TrainingCategory enumerates the offered training programs.
type TrainingCategory string

const (
	TrainingMEAN       TrainingCategory = "MEAN"
	TrainingCBP        TrainingCategory = "CBP"
	TrainingSAP        TrainingCategory = "SAP"
	TrainingFunctional TrainingCategory = "Functional"
)

// TrainingCategories lists every offered training program.
func TrainingCategories() []TrainingCategory {
	return []TrainingCategory{TrainingMEAN, TrainingCBP, TrainingSAP, TrainingFunctional}
}

// Valid reports whether c names an offered training program.
func (c TrainingCategory) Valid() bool {
	switch c {
	case TrainingMEAN, TrainingCBP, TrainingSAP, TrainingFunctional:
		return true
	}
	return false
}

// Trainee links one employee to one training with a lifecycle status. The
// employee name is denormalized at enrollment time so enrollment rows stay
// readable even when the employee record changes later. Multiple enrollments
// may exist per employee, one per training.
type Trainee struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	TrainingName TrainingCategory
	StartDate    time.Time
	EndDate      *time.Time
	Status       TraineeStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasValidDates reports whether the end date, if present, is on or after
// the start date. Enforced at every write path.
func (t Trainee) HasValidDates() bool {
	if t.EndDate == nil {
		return true
	}
	return !t.EndDate.Before(t.StartDate)
}

// CompletionDate returns the end date when present, else the start date.
// Used to order recent completions.
func (t Trainee) CompletionDate() time.Time {
	if t.EndDate != nil {
		return *t.EndDate
	}
	return t.StartDate
}
