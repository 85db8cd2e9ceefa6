package storeclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/training-service/internal/api/dto"
)

// EmployeeClient exposes the employee endpoints of the record store.
type EmployeeClient struct {
	client *Client
}

// NewEmployeeClient wraps the shared client.
func NewEmployeeClient(client *Client) *EmployeeClient {
	return &EmployeeClient{client: client}
}

// Create registers a new employee record.
func (c *EmployeeClient) Create(ctx context.Context, req dto.EmployeeRequest) (dto.EmployeeResponse, error) {
	var out dto.EmployeeResponse
	if _, err := c.client.doRequest(ctx, http.MethodPost, "/employees", req, &out); err != nil {
		return dto.EmployeeResponse{}, err
	}
	return out, nil
}

// List fetches every employee record.
func (c *EmployeeClient) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var out []dto.EmployeeResponse
	if _, err := c.client.doRequest(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one employee by identifier.
func (c *EmployeeClient) Get(ctx context.Context, employeeID string) (dto.EmployeeResponse, error) {
	var out dto.EmployeeResponse
	path := "/employees/" + url.PathEscape(employeeID)
	if _, err := c.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return dto.EmployeeResponse{}, err
	}
	return out, nil
}

// Update replaces the mutable fields of an employee record.
func (c *EmployeeClient) Update(ctx context.Context, employeeID string, req dto.EmployeeRequest) (dto.EmployeeResponse, error) {
	var out dto.EmployeeResponse
	path := "/employees/" + url.PathEscape(employeeID)
	if _, err := c.client.doRequest(ctx, http.MethodPut, path, req, &out); err != nil {
		return dto.EmployeeResponse{}, err
	}
	return out, nil
}

// Deactivate soft-deletes an employee record.
func (c *EmployeeClient) Deactivate(ctx context.Context, employeeID string) error {
	path := "/employees/" + url.PathEscape(employeeID)
	_, err := c.client.doRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// Search runs the server-side term search.
func (c *EmployeeClient) Search(ctx context.Context, term string) ([]dto.EmployeeResponse, error) {
	var out []dto.EmployeeResponse
	path := "/employees/search?q=" + url.QueryEscape(term)
	if _, err := c.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
