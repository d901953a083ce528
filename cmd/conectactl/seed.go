package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/client"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users, posts, jobs and courses into the emulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := waitForService(cmd.Context(), c); err != nil {
				return err
			}
			return runSeed(cmd.Context(), c, cmd.OutOrStdout())
		},
	}
}

func runSeed(ctx context.Context, c *client.Client, w io.Writer) error {
	users := []client.CreateUserRequest{
		{Email: "ana@example.com", FullName: "Ana Souza", UserType: "candidate", Bio: "Estudante de ADS em busca do primeiro estágio"},
		{Email: "bruno@example.com", FullName: "Bruno Lima", UserType: "candidate", Bio: "Dev júnior apaixonado por backend"},
		{Email: "carla@example.com", FullName: "Carla Mendes", UserType: "recruiter", Bio: "Tech recruiter na Loopify"},
	}
	for _, u := range users {
		if _, err := c.CreateUser(ctx, u); err != nil {
			return err
		}
	}

	posts := []client.CreatePostRequest{
		{AuthorEmail: "ana@example.com", Content: "Finalizei meu primeiro projeto em Go! #golang #primeiroprojeto", PostType: "achievement"},
		{AuthorEmail: "bruno@example.com", Content: "Dica: pratiquem SQL antes das entrevistas de estágio.", PostType: "text"},
	}
	for _, p := range posts {
		if _, err := c.CreatePost(ctx, p); err != nil {
			return err
		}
	}

	jobs := []client.CreateJobRequest{
		{Title: "Estágio em Desenvolvimento Backend", Company: "Loopify", JobType: "internship", ExperienceLevel: "no_experience", WorkMode: "remote", Location: "São Paulo, SP", RecruiterEmail: "carla@example.com"},
		{Title: "Dev Júnior Go", Company: "Dataflow", JobType: "fulltime", ExperienceLevel: "junior", WorkMode: "hybrid", Location: "Recife, PE", RecruiterEmail: "carla@example.com"},
	}
	for _, j := range jobs {
		if _, err := c.CreateJob(ctx, j); err != nil {
			return err
		}
	}

	courses := []client.CreateCourseRequest{
		{Title: "Go do Zero", InstructorName: "Bruno Lima", Category: "programming", Level: "beginner", Price: 100, Duration: "12h"},
		{Title: "SQL para Entrevistas", InstructorName: "Ana Souza", Category: "data", Level: "beginner", Price: 0, Duration: "6h"},
	}
	for _, course := range courses {
		if _, err := c.CreateCourse(ctx, course); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "seeded demo data")
	return nil
}
