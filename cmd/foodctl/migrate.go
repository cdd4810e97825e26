package main

import (
	"fmt"

	"github.com/spf13/cobra"

	database "github.com/sebuszqo/FoodManager/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, dbService, err := openDB()
		if err != nil {
			return err
		}
		defer dbService.Close()

		if err := database.ApplyMigrations(cmd.Context(), dbService.DB); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Database schema is at version %d\n", database.MigrationCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
