package client

import (
	"context"
	"fmt"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// TriggerRefresh starts a reconciliation pass and returns its summary.
func (c *Client) TriggerRefresh(ctx context.Context) (*domain.ReconcileResult, error) {
	var result domain.ReconcileResult
	if err := c.post(ctx, "/api/v1/refresh", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for a specific scheduled job.
func (c *Client) GetJobHistory(ctx context.Context, jobName string) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, fmt.Sprintf("/api/v1/jobs/%s", jobName), &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
