package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/taskboard-api/internal/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and indexes, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := connect(); err != nil {
				return err
			}
			defer database.Close()

			return database.Migrate()
		},
	}
}
