package catalog

import (
	"reflect"
	"testing"

	"github.com/conectajovem/platform/internal/model"
)

func sampleJobs() []model.Job {
	return []model.Job{
		{ID: "1", Title: "Estágio Backend", Company: "Loopify", Description: "Go e SQL", JobType: "internship", ExperienceLevel: "no_experience", WorkMode: "remote", Location: "São Paulo"},
		{ID: "2", Title: "Dev Júnior", Company: "Dataflow", Description: "APIs REST", JobType: "fulltime", ExperienceLevel: "junior", WorkMode: "hybrid", Location: "Recife"},
		{ID: "3", Title: "QA Trainee", Company: "Loopify", Description: "Testes automatizados", JobType: "internship", ExperienceLevel: "entry_level", WorkMode: "onsite", Location: "São Paulo"},
	}
}

func TestJobFilters_InactiveIsIdentity(t *testing.T) {
	jobs := sampleJobs()
	f := JobFilters{JobType: FilterAll, ExperienceLevel: FilterAll, WorkMode: FilterAll}
	got := f.Apply(jobs)
	if !reflect.DeepEqual(got, jobs) {
		t.Fatalf("inactive filters changed the result: %+v", got)
	}
}

func TestJobFilters_AndSemantics(t *testing.T) {
	f := JobFilters{JobType: "internship", WorkMode: "remote"}
	got := f.Apply(sampleJobs())
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("got %+v, want only job 1", got)
	}
}

func TestJobFilters_SearchAnyField(t *testing.T) {
	f := JobFilters{Search: "sql"}
	got := f.Apply(sampleJobs())
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search sql: got %+v", got)
	}
	f = JobFilters{Search: "LOOPIFY"}
	if got := f.Apply(sampleJobs()); len(got) != 2 {
		t.Fatalf("search is not case-insensitive: got %d jobs", len(got))
	}
}

func TestJobFilters_LocationSubstring(t *testing.T) {
	f := JobFilters{Location: "são"}
	if got := f.Apply(sampleJobs()); len(got) != 2 {
		t.Fatalf("location match: got %d, want 2", len(got))
	}
}

func TestApply_PreservesOrderAndEmptyInput(t *testing.T) {
	if got := Apply([]model.Job(nil)); len(got) != 0 {
		t.Fatalf("empty input: got %v", got)
	}
	jobs := sampleJobs()
	got := Apply(jobs, func(model.Job) bool { return true })
	for i := range jobs {
		if got[i].ID != jobs[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].ID, jobs[i].ID)
		}
	}
}

func TestCourseFilters_PriceBuckets(t *testing.T) {
	courses := []model.Course{
		{ID: "a", Title: "Go do Zero", Price: 100},
		{ID: "b", Title: "SQL Básico", Price: 0},
	}
	if got := (CourseFilters{Price: PriceFree}).Apply(courses); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("free bucket: got %+v", got)
	}
	if got := (CourseFilters{Price: PricePaid}).Apply(courses); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("paid bucket: got %+v", got)
	}
	if got := (CourseFilters{Price: FilterAll}).Apply(courses); len(got) != 2 {
		t.Fatalf("all bucket: got %d", len(got))
	}
}

func TestCourseFilters_SearchInstructor(t *testing.T) {
	courses := []model.Course{
		{ID: "a", Title: "Go do Zero", InstructorName: "Bruno Lima"},
		{ID: "b", Title: "SQL Básico", InstructorName: "Ana Souza"},
	}
	got := (CourseFilters{Search: "bruno"}).Apply(courses)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("instructor search: got %+v", got)
	}
}
