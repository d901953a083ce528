package client

import (
	"context"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// ListCourses returns catalog courses ordered by sortKey.
func (c *Client) ListCourses(ctx context.Context, sortKey string, limit int) ([]model.Course, error) {
	var out []model.Course
	if err := c.do(ctx, "courses", "list", http.MethodGet, listPath("courses", sortKey, limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCourseRequest is the payload for POST /api/courses.
type CreateCourseRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	InstructorName string  `json:"instructor_name,omitempty"`
	Category       string  `json:"category,omitempty"`
	Level          string  `json:"level,omitempty"`
	Duration       string  `json:"duration,omitempty"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// CreateCourse publishes a course to the catalog.
func (c *Client) CreateCourse(ctx context.Context, req CreateCourseRequest) (*model.Course, error) {
	var out model.Course
	if err := c.do(ctx, "courses", "create", http.MethodPost, "/api/courses", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCourse fetches a course by ID.
func (c *Client) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	var out model.Course
	if err := c.do(ctx, "courses", "get", http.MethodGet, "/api/courses/"+id, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
