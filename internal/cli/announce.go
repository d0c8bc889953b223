package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAnnounceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Announcement board commands",
	}

	cmd.AddCommand(newAnnounceListCmd())
	cmd.AddCommand(newAnnouncePostCmd())
	cmd.AddCommand(newAnnounceDeleteCmd())
	cmd.AddCommand(newAnnounceVoteCmd())

	return cmd
}

func newAnnounceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List announcements, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Announcement

			if err := client.Get("/api/v1/announcements", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAnnouncePostCmd() *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new announcement (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || body == "" {
				return fmt.Errorf("--title and --body are required")
			}

			req := map[string]string{
				"title": title,
				"body":  body,
			}
			var result Announcement

			if err := client.Post("/api/v1/announcements", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Announcement title (required)")
	cmd.Flags().StringVar(&body, "body", "", "Announcement body (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

func newAnnounceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an announcement (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete("/api/v1/announcements/" + id); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Announcement %s deleted", id))
			return nil
		},
	}
}

func newAnnounceVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote <id> <up|down>",
		Short: "Vote on an announcement",
		Long: `Vote on an announcement.

Voting the same direction twice removes your vote. Voting the opposite
direction moves your vote across.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			direction := args[1]
			if direction != "up" && direction != "down" {
				return fmt.Errorf("direction must be 'up' or 'down'")
			}

			req := map[string]string{"direction": direction}
			var result Announcement

			if err := client.Post("/api/v1/announcements/"+id+"/vote", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
