package storeclient

import (
	"context"
	"net/http"

	"github.com/spec-kit/training-service/internal/api/dto"
)

// DashboardClient exposes the aggregated statistics endpoint.
type DashboardClient struct {
	client *Client
}

// NewDashboardClient wraps the shared client.
func NewDashboardClient(client *Client) *DashboardClient {
	return &DashboardClient{client: client}
}

// Stats fetches the dashboard snapshot.
func (c *DashboardClient) Stats(ctx context.Context) (dto.StatsResponse, error) {
	var out dto.StatsResponse
	if _, err := c.client.doRequest(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return dto.StatsResponse{}, err
	}
	return out, nil
}
