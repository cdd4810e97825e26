package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	database "github.com/sebuszqo/FoodManager/db"
	"github.com/sebuszqo/FoodManager/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "foodctl",
	Short:         "foodctl manages the FoodManager database and users",
	Long:          "foodctl applies schema migrations, creates users and mints access tokens for local use.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB loads the configuration and connects to the configured database.
func openDB() (*config.Config, *database.DBService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dbService, err := database.NewDBService(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, dbService, nil
}
