package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/internal/catalog"
)

func newJobsCmd() *cobra.Command {
	var filters catalog.JobFilters
	var stats bool
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List job postings, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := waitForService(cmd.Context(), c); err != nil {
				return err
			}
			return runJobs(cmd.Context(), catalog.NewService(c), filters, stats, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&filters.JobType, "type", catalog.FilterAll, "Job type (fulltime, parttime, internship, contract)")
	cmd.Flags().StringVar(&filters.ExperienceLevel, "experience", catalog.FilterAll, "Experience level (no_experience, entry_level, junior)")
	cmd.Flags().StringVar(&filters.WorkMode, "mode", catalog.FilterAll, "Work mode (onsite, remote, hybrid)")
	cmd.Flags().StringVar(&filters.Location, "location", "", "Location substring")
	cmd.Flags().StringVarP(&filters.Search, "search", "q", "", "Search term over title, company and description")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print board stats instead of the listing")
	return cmd
}

func runJobs(ctx context.Context, svc *catalog.Service, f catalog.JobFilters, stats bool, w io.Writer) error {
	if stats {
		jobs, err := svc.Jobs(ctx)
		if err != nil {
			return err
		}
		st := catalog.JobStatsOf(jobs)
		fmt.Fprintf(w, "total=%d internships=%d remote=%d no_experience=%d\n",
			st.Total, st.Internships, st.Remote, st.NoExperience)
		return nil
	}

	jobs, err := svc.BrowseJobs(ctx, f)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Fprintln(w, "no jobs match")
		return nil
	}
	for _, j := range jobs {
		fmt.Fprintf(w, "%-30s  %-20s  %s/%s/%s  %s\n",
			j.Title, j.Company, j.JobType, j.ExperienceLevel, j.WorkMode, j.Location)
	}
	return nil
}
