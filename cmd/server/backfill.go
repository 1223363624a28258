package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/services"
)

func backfillOwnerCmd() *cobra.Command {
	var ownerID string

	cmd := &cobra.Command{
		Use:   "backfill-owner",
		Short: "Assign an account to workspaces and tags stored without an owner",
		Long: `Assign an account to every workspace and tag whose owner is empty.

Examples:
  taskboard backfill-owner --owner 3hX2kP9...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := connect(); err != nil {
				return err
			}
			defer database.Close()

			db := database.GetDB()
			result, err := services.BackfillOwner(cmd.Context(),
				repository.NewWorkspaceRepository(db),
				repository.NewTagRepository(db),
				ownerID,
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d workspaces and %d tags\n", result.Workspaces, result.Tags)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "account id to assign (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
