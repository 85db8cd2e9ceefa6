package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/training-service/internal/api/dto"
	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/search"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// EnrollmentFlow runs the enroll/edit/delete lifecycle for trainee
// records. Like EmployeeFlow it belongs to one user session.
type EnrollmentFlow struct {
	store     TraineeStore
	confirmer Confirmer

	state    State
	form     dto.TraineeRequest
	editing  bool
	editID   string
	closed   bool
	trainees []dto.TraineeResponse

	subscriptions *SubscriptionSet
}

// NewEnrollmentFlow constructs an idle flow.
func NewEnrollmentFlow(store TraineeStore, confirmer Confirmer) *EnrollmentFlow {
	return &EnrollmentFlow{
		store:         store,
		confirmer:     confirmer,
		state:         StateIdle,
		subscriptions: NewSubscriptionSet(),
	}
}

// State reports the current flow state.
func (w *EnrollmentFlow) State() State {
	return w.state
}

// Form returns the working copy of the form.
func (w *EnrollmentFlow) Form() dto.TraineeRequest {
	return w.form
}

// Trainees returns the last fetched listing.
func (w *EnrollmentFlow) Trainees() []dto.TraineeResponse {
	out := make([]dto.TraineeResponse, len(w.trainees))
	copy(out, w.trainees)
	return out
}

// Subscribe registers a listener invoked after every successful refresh.
func (w *EnrollmentFlow) Subscribe(fn func()) *Subscription {
	return w.subscriptions.Subscribe(fn)
}

// Refresh re-fetches the trainee listing and notifies subscribers.
func (w *EnrollmentFlow) Refresh(ctx context.Context) error {
	list, err := w.store.List(ctx)
	if err != nil {
		return err
	}
	w.trainees = list
	w.subscriptions.Notify()
	return nil
}

// Search runs the server-side term search without touching flow state.
func (w *EnrollmentFlow) Search(ctx context.Context, term string) ([]dto.TraineeResponse, error) {
	return w.store.Search(ctx, term)
}

// Filter narrows the last fetched listing by a free-text term, matching
// employee name, employee identifier, or training name.
func (w *EnrollmentFlow) Filter(term string) []dto.TraineeResponse {
	return search.Filter(w.Trainees(), term, func(tr dto.TraineeResponse) []string {
		return []string{tr.EmployeeName, tr.EmployeeID, string(tr.TrainingName)}
	})
}

// BeginEnroll opens a blank enrollment form.
func (w *EnrollmentFlow) BeginEnroll() {
	w.form = dto.TraineeRequest{Status: domain.TraineeStatusPending}
	w.editing = false
	w.editID = ""
	w.closed = false
	w.state = StateComposing
}

// BeginEdit loads an existing enrollment into the form.
func (w *EnrollmentFlow) BeginEdit(tr dto.TraineeResponse) {
	w.form = dto.TraineeRequest{
		EmployeeID:   tr.EmployeeID,
		TrainingName: tr.TrainingName,
		StartDate:    tr.StartDate,
		Status:       tr.Status,
	}
	if tr.EndDate != nil {
		w.form.EndDate = *tr.EndDate
	}
	w.editing = true
	w.editID = tr.ID
	w.closed = false
	w.state = StateComposing
}

// SetForm replaces the mutable form fields.
func (w *EnrollmentFlow) SetForm(req dto.TraineeRequest) {
	w.form = req
}

// Cancel abandons the form without any network traffic.
func (w *EnrollmentFlow) Cancel() {
	w.form = dto.TraineeRequest{}
	w.editing = false
	w.editID = ""
	w.state = StateIdle
}

// Close abandons the flow entirely: listeners are dropped and any
// in-flight result is discarded.
func (w *EnrollmentFlow) Close() {
	w.closed = true
	w.subscriptions.Clear()
	w.Cancel()
}

// PickEmployee binds the form to the chosen employee. The store
// re-denormalizes the display name from the authoritative record on
// submit, so only the identifier travels.
func (w *EnrollmentFlow) PickEmployee(emp dto.EmployeeResponse) {
	w.form.EmployeeID = emp.EmployeeID
}

// ClearEmployee detaches the form from its chosen employee.
func (w *EnrollmentFlow) ClearEmployee() {
	w.form.EmployeeID = ""
}

// Submit validates the form, asks for confirmation, and only then calls
// the store. Semantics match EmployeeFlow.Submit.
func (w *EnrollmentFlow) Submit(ctx context.Context) (Outcome, error) {
	if err := validateTraineeRequest(w.form); err != nil {
		return OutcomeFailed, err
	}

	w.state = StateAwaitingConfirmation
	prompt := Prompt{
		Kind:  PromptQuestion,
		Title: "Enroll this trainee?",
		Text:  w.form.EmployeeID + " in " + string(w.form.TrainingName),
	}
	if w.editing {
		prompt.Title = "Save changes to this enrollment?"
	}
	approved, err := w.confirmer.Confirm(ctx, prompt)
	if err != nil {
		w.state = StateComposing
		return OutcomeFailed, err
	}
	if !approved {
		w.state = StateComposing
		return OutcomeDeclined, nil
	}

	w.state = StateSubmitting
	var submitErr error
	if w.editing {
		_, submitErr = w.store.Update(ctx, w.editID, w.form)
	} else {
		_, submitErr = w.store.Enroll(ctx, w.form)
	}

	if w.closed {
		return OutcomeDiscarded, nil
	}

	if submitErr != nil {
		w.state = StateFailed
		w.confirmer.Notify(ctx, Prompt{
			Kind:  PromptError,
			Title: "Request failed",
			Text:  apperrors.ToDomainError(submitErr).Message,
		})
		return OutcomeFailed, submitErr
	}

	w.confirmer.Notify(ctx, Prompt{
		Kind:  PromptSuccess,
		Title: "Saved",
		Text:  w.form.EmployeeID + " in " + string(w.form.TrainingName),
	})
	w.form = dto.TraineeRequest{}
	w.editing = false
	w.editID = ""
	w.state = StateSucceeded

	if err := w.Refresh(ctx); err != nil {
		return OutcomeSucceeded, err
	}
	return OutcomeSucceeded, nil
}

// Delete removes one enrollment behind a warning gate.
func (w *EnrollmentFlow) Delete(ctx context.Context, tr dto.TraineeResponse) (Outcome, error) {
	approved, err := w.confirmer.Confirm(ctx, Prompt{
		Kind:  PromptWarning,
		Title: "Delete this enrollment?",
		Text:  tr.EmployeeName + " in " + string(tr.TrainingName),
	})
	if err != nil {
		return OutcomeFailed, err
	}
	if !approved {
		return OutcomeDeclined, nil
	}

	if err := w.store.Delete(ctx, tr.ID); err != nil {
		w.confirmer.Notify(ctx, Prompt{
			Kind:  PromptError,
			Title: "Request failed",
			Text:  apperrors.ToDomainError(err).Message,
		})
		return OutcomeFailed, err
	}

	w.confirmer.Notify(ctx, Prompt{
		Kind:  PromptSuccess,
		Title: "Deleted",
		Text:  tr.EmployeeName + " in " + string(tr.TrainingName),
	})
	if err := w.Refresh(ctx); err != nil {
		return OutcomeSucceeded, err
	}
	return OutcomeSucceeded, nil
}

// DeleteByEmployeeName bulk-removes every enrollment carrying the name,
// reporting the removed count on success.
func (w *EnrollmentFlow) DeleteByEmployeeName(ctx context.Context, name string) (Outcome, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return OutcomeFailed, 0, apperrors.NewValidationError("employee name required", nil)
	}

	approved, err := w.confirmer.Confirm(ctx, Prompt{
		Kind:  PromptWarning,
		Title: "Delete every enrollment for this employee?",
		Text:  name,
	})
	if err != nil {
		return OutcomeFailed, 0, err
	}
	if !approved {
		return OutcomeDeclined, 0, nil
	}

	count, err := w.store.DeleteByEmployeeName(ctx, name)
	if err != nil {
		w.confirmer.Notify(ctx, Prompt{
			Kind:  PromptError,
			Title: "Request failed",
			Text:  apperrors.ToDomainError(err).Message,
		})
		return OutcomeFailed, 0, err
	}

	w.confirmer.Notify(ctx, Prompt{
		Kind:  PromptSuccess,
		Title: "Deleted",
		Text:  name,
	})
	if err := w.Refresh(ctx); err != nil {
		return OutcomeSucceeded, count, err
	}
	return OutcomeSucceeded, count, nil
}

func validateTraineeRequest(req dto.TraineeRequest) error {
	details := map[string]any{}
	if !domain.ValidEmployeeID(req.EmployeeID) {
		details["employeeId"] = "must match EMP followed by five digits"
	}
	if !req.TrainingName.Valid() {
		details["trainingName"] = "unknown training"
	}
	if !req.Status.Valid() {
		details["status"] = "must be Pending, Ongoing, or Completed"
	}
	start, startErr := time.Parse(dto.DateLayout, req.StartDate)
	if req.StartDate == "" || startErr != nil {
		details["startDate"] = "must be YYYY-MM-DD"
	}
	if req.EndDate != "" {
		end, err := time.Parse(dto.DateLayout, req.EndDate)
		switch {
		case err != nil:
			details["endDate"] = "must be YYYY-MM-DD"
		case startErr == nil && end.Before(start):
			details["endDate"] = "must not precede start date"
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("trainee validation failed", details)
	}
	return nil
}
