// Package catalog filters and prices the browsable job and course
// listings. Filtering is a pure predicate chain over the in-memory
// read snapshot; no call leaves the process.
package catalog

import (
	"strings"

	"github.com/conectajovem/platform/internal/model"
)

// FilterAll is the sentinel value that deactivates a categorical
// filter field.
const FilterAll = "all"

// Price bucket values understood by CourseFilters.Price.
const (
	PriceFree = "free"
	PricePaid = "paid"
)

// Apply keeps the items satisfying every predicate, preserving input
// order. An empty input yields an empty result, never an error.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// containsFold reports whether any of the fields contains term,
// case-insensitively.
func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// JobFilters holds the active job-board filters. Zero or "all" values
// deactivate a field.
type JobFilters struct {
	JobType         string
	ExperienceLevel string
	WorkMode        string
	Location        string
	Search          string
}

func (f JobFilters) predicates() []func(model.Job) bool {
	var preds []func(model.Job) bool
	if f.Search != "" {
		preds = append(preds, func(j model.Job) bool {
			return containsFold(f.Search, j.Title, j.Company, j.Description)
		})
	}
	if f.JobType != "" && f.JobType != FilterAll {
		preds = append(preds, func(j model.Job) bool { return j.JobType == f.JobType })
	}
	if f.ExperienceLevel != "" && f.ExperienceLevel != FilterAll {
		preds = append(preds, func(j model.Job) bool { return j.ExperienceLevel == f.ExperienceLevel })
	}
	if f.WorkMode != "" && f.WorkMode != FilterAll {
		preds = append(preds, func(j model.Job) bool { return j.WorkMode == f.WorkMode })
	}
	if f.Location != "" {
		preds = append(preds, func(j model.Job) bool { return containsFold(f.Location, j.Location) })
	}
	return preds
}

// Apply returns the jobs matching every active filter.
func (f JobFilters) Apply(jobs []model.Job) []model.Job {
	return Apply(jobs, f.predicates()...)
}

// CourseFilters holds the active course-catalog filters.
type CourseFilters struct {
	Category string
	Level    string
	Price    string
	Search   string
}

func (f CourseFilters) predicates() []func(model.Course) bool {
	var preds []func(model.Course) bool
	if f.Search != "" {
		preds = append(preds, func(c model.Course) bool {
			return containsFold(f.Search, c.Title, c.Description, c.InstructorName)
		})
	}
	if f.Category != "" && f.Category != FilterAll {
		preds = append(preds, func(c model.Course) bool { return c.Category == f.Category })
	}
	if f.Level != "" && f.Level != FilterAll {
		preds = append(preds, func(c model.Course) bool { return c.Level == f.Level })
	}
	switch f.Price {
	case PriceFree:
		preds = append(preds, func(c model.Course) bool { return c.Price == 0 })
	case PricePaid:
		preds = append(preds, func(c model.Course) bool { return c.Price > 0 })
	}
	return preds
}

// Apply returns the courses matching every active filter.
func (f CourseFilters) Apply(courses []model.Course) []model.Course {
	return Apply(courses, f.predicates()...)
}
