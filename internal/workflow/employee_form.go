package workflow

import (
	"context"
	"strings"

	"github.com/spec-kit/training-service/internal/api/dto"
	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/search"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

// EmployeeFlow runs the create/edit/deactivate lifecycle for employee
// records. A flow belongs to one user session and is not safe for
// concurrent use.
type EmployeeFlow struct {
	store     EmployeeStore
	confirmer Confirmer

	state     State
	form      dto.EmployeeRequest
	editing   bool
	editID    string
	closed    bool
	employees []dto.EmployeeResponse

	subscriptions *SubscriptionSet
}

// NewEmployeeFlow constructs an idle flow.
func NewEmployeeFlow(store EmployeeStore, confirmer Confirmer) *EmployeeFlow {
	return &EmployeeFlow{
		store:         store,
		confirmer:     confirmer,
		state:         StateIdle,
		subscriptions: NewSubscriptionSet(),
	}
}

// State reports the current flow state.
func (w *EmployeeFlow) State() State {
	return w.state
}

// Form returns the working copy of the form.
func (w *EmployeeFlow) Form() dto.EmployeeRequest {
	return w.form
}

// Employees returns the last fetched listing.
func (w *EmployeeFlow) Employees() []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, len(w.employees))
	copy(out, w.employees)
	return out
}

// Subscribe registers a listener invoked after every successful refresh.
func (w *EmployeeFlow) Subscribe(fn func()) *Subscription {
	return w.subscriptions.Subscribe(fn)
}

// Refresh re-fetches the employee listing and notifies subscribers.
func (w *EmployeeFlow) Refresh(ctx context.Context) error {
	list, err := w.store.List(ctx)
	if err != nil {
		return err
	}
	w.employees = list
	w.subscriptions.Notify()
	return nil
}

// Search runs the server-side term search without touching flow state.
func (w *EmployeeFlow) Search(ctx context.Context, term string) ([]dto.EmployeeResponse, error) {
	return w.store.Search(ctx, term)
}

// Filter narrows the last fetched listing by a free-text term, matching
// name, identifier, or email. The cached listing is left untouched.
func (w *EmployeeFlow) Filter(term string) []dto.EmployeeResponse {
	return search.Filter(w.Employees(), term, func(emp dto.EmployeeResponse) []string {
		return []string{emp.Name, emp.EmployeeID, emp.Email}
	})
}

// BeginCreate opens a blank form, suggesting the next sequential
// identifier from the last fetched count.
func (w *EmployeeFlow) BeginCreate() {
	w.form = dto.EmployeeRequest{
		EmployeeID: domain.NextEmployeeID(len(w.employees)),
	}
	w.editing = false
	w.editID = ""
	w.closed = false
	w.state = StateComposing
}

// BeginEdit loads an existing record into the form. The identifier is
// frozen for the whole edit.
func (w *EmployeeFlow) BeginEdit(emp dto.EmployeeResponse) {
	w.form = dto.EmployeeRequest{
		EmployeeID:  emp.EmployeeID,
		Name:        emp.Name,
		Email:       emp.Email,
		Department:  emp.Department,
		JoiningDate: emp.JoiningDate,
		Phone:       emp.Phone,
	}
	w.editing = true
	w.editID = emp.EmployeeID
	w.closed = false
	w.state = StateComposing
}

// SetForm replaces the mutable form fields. During an edit the identifier
// stays frozen regardless of what the caller passes.
func (w *EmployeeFlow) SetForm(req dto.EmployeeRequest) {
	if w.editing {
		req.EmployeeID = w.editID
	}
	w.form = req
}

// Cancel abandons the form without any network traffic.
func (w *EmployeeFlow) Cancel() {
	w.form = dto.EmployeeRequest{}
	w.editing = false
	w.editID = ""
	w.state = StateIdle
}

// Close abandons the flow entirely: listeners are dropped and a submit
// already in flight completes against the store but its result is discarded.
func (w *EmployeeFlow) Close() {
	w.closed = true
	w.subscriptions.Clear()
	w.Cancel()
}

// Submit validates the form, asks for confirmation, and only then calls
// the store. A declined confirmation leaves the form untouched and issues
// no network call. A store failure keeps the form so the user can retry;
// success resets the form and re-fetches the listing.
func (w *EmployeeFlow) Submit(ctx context.Context) (Outcome, error) {
	if err := validateEmployeeRequest(w.form, !w.editing); err != nil {
		return OutcomeFailed, err
	}

	w.state = StateAwaitingConfirmation
	prompt := Prompt{
		Kind:  PromptQuestion,
		Title: "Add this employee?",
		Text:  w.form.Name + " (" + w.form.EmployeeID + ")",
	}
	if w.editing {
		prompt.Title = "Save changes to this employee?"
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
		_, submitErr = w.store.Create(ctx, w.form)
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
		Text:  w.form.Name + " (" + w.form.EmployeeID + ")",
	})
	w.form = dto.EmployeeRequest{}
	w.editing = false
	w.editID = ""
	w.state = StateSucceeded

	if err := w.Refresh(ctx); err != nil {
		return OutcomeSucceeded, err
	}
	return OutcomeSucceeded, nil
}

// Deactivate soft-deletes a record behind a warning gate. Declining issues
// no network call.
func (w *EmployeeFlow) Deactivate(ctx context.Context, emp dto.EmployeeResponse) (Outcome, error) {
	approved, err := w.confirmer.Confirm(ctx, Prompt{
		Kind:  PromptWarning,
		Title: "Deactivate this employee?",
		Text:  emp.Name + " (" + emp.EmployeeID + ")",
	})
	if err != nil {
		return OutcomeFailed, err
	}
	if !approved {
		return OutcomeDeclined, nil
	}

	if err := w.store.Deactivate(ctx, emp.EmployeeID); err != nil {
		w.confirmer.Notify(ctx, Prompt{
			Kind:  PromptError,
			Title: "Request failed",
			Text:  apperrors.ToDomainError(err).Message,
		})
		return OutcomeFailed, err
	}

	w.confirmer.Notify(ctx, Prompt{
		Kind:  PromptSuccess,
		Title: "Deactivated",
		Text:  emp.Name + " (" + emp.EmployeeID + ")",
	})
	if err := w.Refresh(ctx); err != nil {
		return OutcomeSucceeded, err
	}
	return OutcomeSucceeded, nil
}

func validateEmployeeRequest(req dto.EmployeeRequest, requireID bool) error {
	details := map[string]any{}
	if requireID && !domain.ValidEmployeeID(req.EmployeeID) {
		details["employeeId"] = "must match EMP followed by five digits"
	}
	if strings.TrimSpace(req.Name) == "" {
		details["employeeName"] = "required"
	}
	if !domain.ValidEmail(strings.TrimSpace(req.Email)) {
		details["email"] = "invalid email"
	}
	if !req.Department.Valid() {
		details["department"] = "unknown department"
	}
	if req.JoiningDate == "" {
		details["joiningDate"] = "required"
	}
	if !domain.ValidPhone(req.Phone) {
		details["phone"] = "must be exactly ten digits"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("employee validation failed", details)
	}
	return nil
}
