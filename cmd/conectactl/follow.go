package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/internal/social"
)

func newFollowCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Toggle the follow edge between two users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to required")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := waitForService(cmd.Context(), c); err != nil {
				return err
			}
			svc := social.NewService(c)
			following, err := svc.IsFollowing(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			toggle := svc.NewToggle(from, to, following)
			if err := toggle.Do(cmd.Context()); err != nil {
				return err
			}
			if toggle.Following() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s now follows %s\n", from, to)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s no longer follows %s\n", from, to)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Follower email")
	cmd.Flags().StringVar(&to, "to", "", "Followee email")
	return cmd
}
