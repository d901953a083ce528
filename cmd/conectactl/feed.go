package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/internal/feed"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Log in against the emulator and print a bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			token, err := c.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func newFeedCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the newest feed posts with resolved authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := waitForService(cmd.Context(), c); err != nil {
				return err
			}
			return runFeed(cmd.Context(), feed.NewService(c), limit, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", feed.DefaultLimit, "Number of posts to fetch")
	return cmd
}

func runFeed(ctx context.Context, svc *feed.Service, limit int, w io.Writer) error {
	posts, err := svc.Load(ctx, limit)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(w, "no posts")
		return nil
	}
	for _, p := range posts {
		fmt.Fprintf(w, "%s  %s\n  %s\n", p.CreatedDate.Format("2006-01-02 15:04"), p.Author.FullName, p.Content)
	}
	return nil
}
