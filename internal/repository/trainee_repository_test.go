package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/spec-kit/training-service/internal/domain"
)

func traineeRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "employee_id", "employee_name", "training_name",
		"start_date", "end_date", "status", "created_at", "updated_at",
	})
}

func TestTraineeRepositoryCreate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTraineeRepository(mock)
	now := time.Now().UTC()
	tr := &domain.Trainee{
		EmployeeID:   "EMP00001",
		EmployeeName: "Asha Rao",
		TrainingName: domain.TrainingMEAN,
		StartDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.TraineeStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO trainees (employee_id, employee_name, training_name, start_date, end_date, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`)).
		WithArgs(tr.EmployeeID, tr.EmployeeName, tr.TrainingName, tr.StartDate, tr.EndDate, tr.Status).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("3f6c1c9e-0000-0000-0000-000000000001", now, now))

	if err := repo.Create(context.Background(), tr); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tr.ID == "" {
		t.Fatal("store-assigned id not populated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTraineeRepositoryListScansOptionalEndDate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTraineeRepository(mock)
	now := time.Now().UTC()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM trainees ORDER BY created_at ASC").
		WillReturnRows(traineeRows().
			AddRow("id-1", "EMP00001", "Asha Rao", "MEAN", start, &end, "Completed", now, now).
			AddRow("id-2", "EMP00002", "Ben Oduya", "SAP", start, nil, "Pending", now, now))

	result, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d trainees, want 2", len(result))
	}
	if result[0].EndDate == nil || !result[0].EndDate.Equal(end) {
		t.Fatalf("end date not scanned: %+v", result[0])
	}
	if result[1].EndDate != nil {
		t.Fatalf("nil end date expected: %+v", result[1])
	}
	if result[1].Status != domain.TraineeStatusPending {
		t.Fatalf("status not scanned: %+v", result[1])
	}
}

func TestTraineeRepositoryDeleteMissing(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTraineeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM trainees WHERE id=$1`)).
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), "missing-id"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestTraineeRepositoryDeleteByEmployeeName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTraineeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM trainees WHERE employee_name=$1`)).
		WithArgs("Asha Rao").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	count, err := repo.DeleteByEmployeeName(context.Background(), "Asha Rao")
	if err != nil {
		t.Fatalf("DeleteByEmployeeName returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("deleted count = %d, want 3", count)
	}

	// No matches is a zero count, not an error.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM trainees WHERE employee_name=$1`)).
		WithArgs("Nobody").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	count, err = repo.DeleteByEmployeeName(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("DeleteByEmployeeName returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("deleted count = %d, want 0", count)
	}
}

func TestTraineeRepositoryListByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTraineeRepository(mock)
	now := time.Now().UTC()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM trainees WHERE employee_id=\\$1 ORDER BY created_at ASC").
		WithArgs("EMP00001").
		WillReturnRows(traineeRows().
			AddRow("id-1", "EMP00001", "Asha Rao", "CBP", start, nil, "Ongoing", now, now))

	result, err := repo.ListByEmployee(context.Background(), "EMP00001")
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}
	if len(result) != 1 || result[0].TrainingName != domain.TrainingCBP {
		t.Fatalf("unexpected result: %+v", result)
	}
}
