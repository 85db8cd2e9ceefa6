package storeclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/training-service/internal/api/dto"
)

// TraineeClient exposes the enrollment endpoints of the record store.
type TraineeClient struct {
	client *Client
}

// NewTraineeClient wraps the shared client.
func NewTraineeClient(client *Client) *TraineeClient {
	return &TraineeClient{client: client}
}

// Enroll registers a new enrollment record.
func (c *TraineeClient) Enroll(ctx context.Context, req dto.TraineeRequest) (dto.TraineeResponse, error) {
	var out dto.TraineeResponse
	if _, err := c.client.doRequest(ctx, http.MethodPost, "/trainees", req, &out); err != nil {
		return dto.TraineeResponse{}, err
	}
	return out, nil
}

// List fetches every enrollment record.
func (c *TraineeClient) List(ctx context.Context) ([]dto.TraineeResponse, error) {
	var out []dto.TraineeResponse
	if _, err := c.client.doRequest(ctx, http.MethodGet, "/trainees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one enrollment by internal id.
func (c *TraineeClient) Get(ctx context.Context, id string) (dto.TraineeResponse, error) {
	var out dto.TraineeResponse
	path := "/trainees/" + url.PathEscape(id)
	if _, err := c.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return dto.TraineeResponse{}, err
	}
	return out, nil
}

// Update replaces an enrollment record.
func (c *TraineeClient) Update(ctx context.Context, id string, req dto.TraineeRequest) (dto.TraineeResponse, error) {
	var out dto.TraineeResponse
	path := "/trainees/" + url.PathEscape(id)
	if _, err := c.client.doRequest(ctx, http.MethodPut, path, req, &out); err != nil {
		return dto.TraineeResponse{}, err
	}
	return out, nil
}

// Delete removes one enrollment by internal id.
func (c *TraineeClient) Delete(ctx context.Context, id string) error {
	path := "/trainees/" + url.PathEscape(id)
	_, err := c.client.doRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// ListByEmployee fetches the enrollments referencing one employee.
func (c *TraineeClient) ListByEmployee(ctx context.Context, employeeID string) ([]dto.TraineeResponse, error) {
	var out []dto.TraineeResponse
	path := "/trainees/employee/" + url.PathEscape(employeeID)
	if _, err := c.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByEmployeeName bulk-removes enrollments by denormalized name and
// reports how many rows went away.
func (c *TraineeClient) DeleteByEmployeeName(ctx context.Context, name string) (int, error) {
	path := "/trainees/name/" + url.PathEscape(name)
	env, err := c.client.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return 0, err
	}
	if env.Count != nil {
		return *env.Count, nil
	}
	return 0, nil
}

// Search runs the server-side term search.
func (c *TraineeClient) Search(ctx context.Context, term string) ([]dto.TraineeResponse, error) {
	var out []dto.TraineeResponse
	path := "/trainees/search?q=" + url.QueryEscape(term)
	if _, err := c.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
