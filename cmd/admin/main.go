// rutinia-admin hosts offline maintenance commands that must never run as
// part of normal server startup.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/service"
	mongostore "github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/infrastructure/db/mongo"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/pkg/config"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "rutinia-admin",
		Short:         "Administrative tasks for the Rutinia auth API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCredentialsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func migrateCredentialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-credentials",
		Short: "Rewrite legacy plaintext credentials as bcrypt hashes",
		Long: `Scans every user record and hashes any credential still stored in
legacy plaintext. Safe to re-run: records already carrying a bcrypt hash are
skipped, so a second run against a migrated store performs zero writes.

Run during a maintenance window; the job mutates the same field live logins
read and must not race registrations or itself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

			client, db, err := mongostore.Connect(ctx, cfg.Mongo)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Disconnect(context.Background())
			}()

			migrator := service.NewCredentialMigrator(mongostore.NewUserRepository(db), log)
			report, err := migrator.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("scanned %d users, migrated %d credentials\n", report.Scanned, report.Migrated)
			return nil
		},
	}
}
