package main

import (
	"context"

	"github.com/spf13/cobra"

	mongostore "github.com/schooldesk/school-api/internal/infrastructure/db/mongo"
	"github.com/schooldesk/school-api/internal/pkg/config"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create MongoDB indexes",
		Long:  `Create the MongoDB indexes the API relies on, including the unique school email index.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	client, db, err := mongostore.Connect(cmd.Context(), mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongostore.EnsureIndexes(cmd.Context(), db); err != nil {
		return err
	}

	cmd.Printf("indexes ensured on %s\n", cfg.Mongo.Database)
	return nil
}
