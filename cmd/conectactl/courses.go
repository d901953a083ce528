package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/internal/catalog"
	"github.com/conectajovem/platform/internal/model"
)

func newCoursesCmd() *cobra.Command {
	var filters catalog.CourseFilters
	var premium bool
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses, optionally at the premium discount",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := waitForService(cmd.Context(), c); err != nil {
				return err
			}
			return runCourses(cmd.Context(), catalog.NewService(c), filters, premium, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&filters.Category, "category", catalog.FilterAll, "Course category")
	cmd.Flags().StringVar(&filters.Level, "level", catalog.FilterAll, "Course level")
	cmd.Flags().StringVar(&filters.Price, "price", catalog.FilterAll, "Price bucket (free, paid)")
	cmd.Flags().StringVarP(&filters.Search, "search", "q", "", "Search term over title, description and instructor")
	cmd.Flags().BoolVar(&premium, "premium", false, "Apply the premium discount to listed prices")
	return cmd
}

func runCourses(ctx context.Context, svc *catalog.Service, f catalog.CourseFilters, premium bool, w io.Writer) error {
	var courses []model.Course
	var err error
	if premium {
		courses, err = svc.PremiumCourses(ctx)
		if err == nil {
			courses = f.Apply(courses)
		}
	} else {
		courses, err = svc.BrowseCourses(ctx, f)
	}
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(w, "no courses match")
		return nil
	}
	for _, c := range courses {
		price := fmt.Sprintf("R$ %.2f", c.Price)
		if c.Price == 0 {
			price = "free"
		}
		if c.OriginalPrice > 0 && c.OriginalPrice != c.Price {
			price = fmt.Sprintf("%s (was R$ %.2f)", price, c.OriginalPrice)
		}
		fmt.Fprintf(w, "%-35s  %-20s  %-12s  %s\n", c.Title, c.InstructorName, c.Level, price)
	}
	return nil
}
