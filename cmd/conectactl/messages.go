package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conectajovem/platform/internal/chat"
)

func newMessagesCmd() *cobra.Command {
	var sendTo, sendText string
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Show conversation threads for a user, or send a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := waitForService(cmd.Context(), c); err != nil {
				return err
			}
			svc := chat.NewService(c)
			if sendTo != "" {
				if _, err := svc.Send(cmd.Context(), userFlag, sendTo, sendText); err != nil {
					return err
				}
			}
			return runConversations(cmd.Context(), svc, userFlag, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "User email (required)")
	cmd.Flags().StringVar(&sendTo, "to", "", "Send a message to this email before listing")
	cmd.Flags().StringVar(&sendText, "text", "", "Message body for --to")
	return cmd
}

func runConversations(ctx context.Context, svc *chat.Service, userEmail string, w io.Writer) error {
	convos, err := svc.Conversations(ctx, userEmail)
	if err != nil {
		return err
	}
	if len(convos) == 0 {
		fmt.Fprintln(w, "no conversations")
		return nil
	}
	for _, convo := range convos {
		last := convo.Latest()
		fmt.Fprintf(w, "%s  (%d messages, %d unread)  last: %s\n",
			convo.OtherUserEmail, len(convo.Messages), convo.Unread(userEmail), last.Message)
	}
	return nil
}
