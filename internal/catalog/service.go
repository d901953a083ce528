package catalog

import (
	"context"
	"fmt"

	"github.com/conectajovem/platform/client"
	"github.com/conectajovem/platform/internal/model"
)

// API is the slice of the entity SDK the catalog views need.
// Satisfied by *client.Client.
type API interface {
	ListJobs(ctx context.Context, sortKey string, limit int) ([]model.Job, error)
	CreateJob(ctx context.Context, req client.CreateJobRequest) (*model.Job, error)
	ListCourses(ctx context.Context, sortKey string, limit int) ([]model.Course, error)
}

// Service loads the job board and course catalog.
type Service struct {
	api API
}

func NewService(api API) *Service { return &Service{api: api} }

// Jobs returns all postings, newest first.
func (s *Service) Jobs(ctx context.Context) ([]model.Job, error) {
	return s.api.ListJobs(ctx, "-created_date", 0)
}

// BrowseJobs loads the board and applies the active filters
// client-side.
func (s *Service) BrowseJobs(ctx context.Context, f JobFilters) ([]model.Job, error) {
	jobs, err := s.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(jobs), nil
}

// PublishJob creates a posting on behalf of a recruiter account.
func (s *Service) PublishJob(ctx context.Context, recruiter model.User, req client.CreateJobRequest) (*model.Job, error) {
	if recruiter.UserType != "recruiter" {
		return nil, fmt.Errorf("only recruiter accounts can publish jobs: %w", model.ErrValidation)
	}
	req.RecruiterEmail = recruiter.Email
	return s.api.CreateJob(ctx, req)
}

// Courses returns the catalog, newest first.
func (s *Service) Courses(ctx context.Context) ([]model.Course, error) {
	return s.api.ListCourses(ctx, "-created_date", 0)
}

// BrowseCourses loads the catalog and applies the active filters
// client-side.
func (s *Service) BrowseCourses(ctx context.Context, f CourseFilters) ([]model.Course, error) {
	courses, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(courses), nil
}

// PremiumCourses returns the catalog with the premium discount
// applied to every course, newest first.
func (s *Service) PremiumCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}
	return DiscountAll(courses, PremiumRatio)
}

// JobStats are the board's headline numbers.
type JobStats struct {
	Total        int `json:"total"`
	Internships  int `json:"internships"`
	Remote       int `json:"remote"`
	NoExperience int `json:"no_experience"`
}

// JobStatsOf tallies the board's headline numbers.
func JobStatsOf(jobs []model.Job) JobStats {
	st := JobStats{Total: len(jobs)}
	for _, j := range jobs {
		if j.JobType == "internship" {
			st.Internships++
		}
		if j.WorkMode == "remote" {
			st.Remote++
		}
		if j.ExperienceLevel == "no_experience" {
			st.NoExperience++
		}
	}
	return st
}

// CourseStats are the catalog's headline numbers.
type CourseStats struct {
	Total    int `json:"total"`
	Students int `json:"students"`
}

// CourseStatsOf tallies the catalog's headline numbers.
func CourseStatsOf(courses []model.Course) CourseStats {
	st := CourseStats{Total: len(courses)}
	for _, c := range courses {
		st.Students += c.StudentsCount
	}
	return st
}
