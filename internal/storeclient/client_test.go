package storeclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spec-kit/training-service/internal/api/dto"
	apperrors "github.com/spec-kit/training-service/pkg/util"
)

func TestEmployeeClientCreateDecodesEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/employees" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "Employee created successfully",
			"data": {"employeeId":"EMP00001","employeeName":"Asha Rao","isActive":true}
		}`))
	}))
	defer srv.Close()

	client := NewEmployeeClient(NewClient(srv.URL))
	emp, err := client.Create(context.Background(), dto.EmployeeRequest{EmployeeID: "EMP00001"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if emp.EmployeeID != "EMP00001" || !emp.Active {
		t.Fatalf("envelope data not decoded: %+v", emp)
	}
}

func TestClientSuccessFalseIsStoreErrorWithMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "Employee already exists"}`))
	}))
	defer srv.Close()

	client := NewEmployeeClient(NewClient(srv.URL))
	_, err := client.Create(context.Background(), dto.EmployeeRequest{EmployeeID: "EMP00001"})

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "STORE_ERROR" {
		t.Fatalf("expected STORE_ERROR, got %v", err)
	}
	if domainErr.Message != "Employee already exists" {
		t.Fatalf("server message not preserved: %q", domainErr.Message)
	}
}

func TestClientNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success": false, "message": "employee not found"}`))
	}))
	defer srv.Close()

	client := NewEmployeeClient(NewClient(srv.URL))
	_, err := client.Get(context.Background(), "EMP99999")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestClientMalformedEnvelopeIsStoreError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`this is not json`))
	}))
	defer srv.Close()

	client := NewTraineeClient(NewClient(srv.URL))
	_, err := client.List(context.Background())

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "STORE_ERROR" {
		t.Fatalf("expected STORE_ERROR for malformed body, got %v", err)
	}
}

func TestTraineeClientDeleteByNameReturnsCount(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trainees/name/Asha%20Rao" && r.URL.Path != "/trainees/name/Asha Rao" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success": true, "message": "Trainee records deleted successfully", "count": 3}`))
	}))
	defer srv.Close()

	client := NewTraineeClient(NewClient(srv.URL))
	count, err := client.DeleteByEmployeeName(context.Background(), "Asha Rao")
	if err != nil {
		t.Fatalf("DeleteByEmployeeName returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestClientContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewEmployeeClient(NewClient(srv.URL))
	if _, err := client.List(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
