package client

import (
	"context"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// CreateJobRequest is the payload for POST /api/jobs.
type CreateJobRequest struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	WorkMode        string   `json:"work_mode,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	RecruiterEmail  string   `json:"recruiter_email,omitempty"`
}

// ListJobs returns job postings ordered by sortKey.
func (c *Client) ListJobs(ctx context.Context, sortKey string, limit int) ([]model.Job, error) {
	var out []model.Job
	if err := c.do(ctx, "jobs", "list", http.MethodGet, listPath("jobs", sortKey, limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJob publishes a job posting.
func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (*model.Job, error) {
	var j model.Job
	if err := c.do(ctx, "jobs", "create", http.MethodPost, "/api/jobs", req, &j, http.StatusCreated); err != nil {
		return nil, err
	}
	return &j, nil
}

// DeleteJob removes a job posting by ID.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, "jobs", "delete", http.MethodDelete, "/api/jobs/"+id, nil, nil, http.StatusNoContent)
}
