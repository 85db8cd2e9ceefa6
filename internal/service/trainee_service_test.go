package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/events"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

func validTraineeInput() TraineeInput {
	return TraineeInput{
		EmployeeID:   "EMP00001",
		TrainingName: domain.TrainingMEAN,
		StartDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.TraineeStatusPending,
	}
}

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo) {
	t.Helper()
	repo.employees["EMP00001"] = &domain.Employee{
		EmployeeID: "EMP00001",
		Name:       "Asha Rao",
		Email:      "asha.rao@corp.example",
		Department: domain.DepartmentIT,
		Active:     true,
	}
}

func newTraineeService(emp *fakeEmployeeRepo, tr *fakeTraineeRepo, d events.Dispatcher) *TraineeService {
	return NewTraineeService(TraineeDependencies{
		TraineeRepo:  tr,
		EmployeeRepo: emp,
		Dispatcher:   d,
	})
}

func TestEnrollDenormalizesEmployeeName(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo()
	seedEmployee(t, empRepo)
	trRepo := newFakeTraineeRepo()
	dispatcher := &fakeDispatcher{}
	svc := newTraineeService(empRepo, trRepo, dispatcher)

	tr, err := svc.Enroll(context.Background(), validTraineeInput())
	if err != nil {
		t.Fatalf("Enroll returned error: %v", err)
	}
	if tr.EmployeeName != "Asha Rao" {
		t.Fatalf("employee name not denormalized: %q", tr.EmployeeName)
	}
	if tr.ID == "" {
		t.Fatal("store-assigned id missing")
	}

	types := dispatcher.eventTypes()
	if len(types) != 1 || types[0] != events.EventTraineeEnrolled {
		t.Fatalf("published events = %v", types)
	}
}

func TestEnrollUnknownEmployeeIsNotFound(t *testing.T) {
	t.Parallel()

	trRepo := newFakeTraineeRepo()
	svc := newTraineeService(newFakeEmployeeRepo(), trRepo, &fakeDispatcher{})

	_, err := svc.Enroll(context.Background(), validTraineeInput())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if len(trRepo.calls) != 0 {
		t.Fatalf("trainee repository touched: %v", trRepo.calls)
	}
}

func TestEnrollRejectsEndBeforeStart(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo()
	seedEmployee(t, empRepo)
	trRepo := newFakeTraineeRepo()
	svc := newTraineeService(empRepo, trRepo, &fakeDispatcher{})

	input := validTraineeInput()
	end := input.StartDate.AddDate(0, 0, -1)
	input.EndDate = &end

	_, err := svc.Enroll(context.Background(), input)

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	if _, ok := domainErr.Details["endDate"]; !ok {
		t.Fatalf("endDate detail missing: %v", domainErr.Details)
	}
	if len(trRepo.calls) != 0 {
		t.Fatalf("trainee repository touched: %v", trRepo.calls)
	}
}

func TestEnrollRejectsUnknownCategoryAndStatus(t *testing.T) {
	t.Parallel()

	svc := newTraineeService(newFakeEmployeeRepo(), newFakeTraineeRepo(), &fakeDispatcher{})

	input := validTraineeInput()
	input.TrainingName = "Underwater Basketweaving"
	input.Status = "Paused"

	_, err := svc.Enroll(context.Background(), input)

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	for _, field := range []string{"trainingName", "status"} {
		if _, ok := domainErr.Details[field]; !ok {
			t.Fatalf("%s detail missing: %v", field, domainErr.Details)
		}
	}
}

func TestUpdateTraineeRefreshesNameOnEmployeeChange(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo()
	seedEmployee(t, empRepo)
	empRepo.employees["EMP00002"] = &domain.Employee{
		EmployeeID: "EMP00002",
		Name:       "Ben Oduya",
		Active:     true,
	}
	trRepo := newFakeTraineeRepo()
	svc := newTraineeService(empRepo, trRepo, &fakeDispatcher{})

	created, err := svc.Enroll(context.Background(), validTraineeInput())
	if err != nil {
		t.Fatalf("seed enroll failed: %v", err)
	}

	input := validTraineeInput()
	input.EmployeeID = "EMP00002"
	input.Status = domain.TraineeStatusOngoing

	updated, err := svc.UpdateTrainee(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("UpdateTrainee returned error: %v", err)
	}
	if updated.EmployeeName != "Ben Oduya" {
		t.Fatalf("denormalized name stale: %q", updated.EmployeeName)
	}
	if updated.Status != domain.TraineeStatusOngoing {
		t.Fatalf("status not updated: %q", updated.Status)
	}
}

func TestDeleteTraineePublishesEvent(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo()
	seedEmployee(t, empRepo)
	trRepo := newFakeTraineeRepo()
	dispatcher := &fakeDispatcher{}
	svc := newTraineeService(empRepo, trRepo, dispatcher)

	created, err := svc.Enroll(context.Background(), validTraineeInput())
	if err != nil {
		t.Fatalf("seed enroll failed: %v", err)
	}

	if err := svc.DeleteTrainee(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteTrainee returned error: %v", err)
	}
	if len(trRepo.trainees) != 0 {
		t.Fatalf("trainee not removed: %v", trRepo.trainees)
	}

	types := dispatcher.eventTypes()
	if len(types) != 2 || types[1] != events.EventTraineeDeleted {
		t.Fatalf("published events = %v", types)
	}
}

func TestDeleteByEmployeeNameCountsAndToleratesZero(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo()
	seedEmployee(t, empRepo)
	trRepo := newFakeTraineeRepo()
	svc := newTraineeService(empRepo, trRepo, &fakeDispatcher{})

	for i := 0; i < 2; i++ {
		if _, err := svc.Enroll(context.Background(), validTraineeInput()); err != nil {
			t.Fatalf("seed enroll failed: %v", err)
		}
	}

	count, err := svc.DeleteByEmployeeName(context.Background(), "Asha Rao")
	if err != nil {
		t.Fatalf("DeleteByEmployeeName returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("deleted count = %d, want 2", count)
	}

	// No matches is a zero count, not an error.
	count, err = svc.DeleteByEmployeeName(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("DeleteByEmployeeName returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("deleted count = %d, want 0", count)
	}

	if _, err := svc.DeleteByEmployeeName(context.Background(), "  "); err == nil {
		t.Fatal("blank name must fail validation")
	}
}

func TestSearchTraineesBlankTermListsAll(t *testing.T) {
	t.Parallel()

	trRepo := newFakeTraineeRepo()
	svc := newTraineeService(newFakeEmployeeRepo(), trRepo, &fakeDispatcher{})

	if _, err := svc.SearchTrainees(context.Background(), ""); err != nil {
		t.Fatalf("SearchTrainees returned error: %v", err)
	}
	if len(trRepo.calls) != 1 || trRepo.calls[0] != "List" {
		t.Fatalf("blank term should fall back to List, got %v", trRepo.calls)
	}
}
