package cli

import (
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard commands",
	}

	cmd.AddCommand(newAdminOverviewCmd())
	cmd.AddCommand(newAdminMembersCmd())

	return cmd
}

func newAdminOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show hub-wide counters (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Overview

			if err := client.Get("/api/v1/admin/overview", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List all members with online status (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Member

			if err := client.Get("/api/v1/admin/members", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
