// conectactl is an operator CLI over the Conecta entity API, used
// against the local emulator or a deployed backend.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/client"
)

var (
	apiFlag   string
	tokenFlag string
	userFlag  string

	rootCmd = &cobra.Command{
		Use:   "conectactl",
		Short: "CLI client for the Conecta entity API",
	}
)

func newClient() (*client.Client, error) {
	return client.New(apiFlag, client.WithAuthToken(tokenFlag))
}

// waitForService polls /health until the backend answers or the
// backoff gives up.
func waitForService(ctx context.Context, c *client.Client) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	return backoff.Retry(func() error {
		return c.Health(ctx)
	}, backoff.WithContext(policy, ctx))
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Entity service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "Bearer token (from conectactl login)")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newFeedCmd())
	rootCmd.AddCommand(newJobsCmd())
	rootCmd.AddCommand(newCoursesCmd())
	rootCmd.AddCommand(newMessagesCmd())
	rootCmd.AddCommand(newFollowCmd())
	rootCmd.AddCommand(newSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
