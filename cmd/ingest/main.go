// Command ingest is the Fantasy Syndicate data loading CLI.
//
// Usage:
//
//	syndicate-ingest teams --csv teams.csv
//	syndicate-ingest migrate --sqlite fantasy.db
//	syndicate-ingest migrate --sqlite fantasy.db --tables teams,contracts
//	syndicate-ingest user add --username gm1 --email gm1@example.com --name "GM One"
//	syndicate-ingest user rm --username gm1
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fantasysyndicate/league-data/internal/config"
	"github.com/fantasysyndicate/league-data/internal/db"
	"github.com/fantasysyndicate/league-data/internal/ingest"
	"github.com/fantasysyndicate/league-data/internal/maintenance"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "syndicate-ingest",
		Short: "Fantasy Syndicate data loading CLI",
	}

	root.AddCommand(teamsCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(userCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// teams command
// --------------------------------------------------------------------------

func teamsCmd() *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Upsert teams from a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				return fmt.Errorf("--csv is required")
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result, err := ingest.SeedTeamsCSV(ctx, pool.Pool, csvPath, logger)
				if err != nil {
					return err
				}
				logger.Info("Team seed finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("seed error", "error", e)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to teams CSV file")
	return cmd
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	var sqlitePath string
	var tables []string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the legacy SQLite database into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sqlitePath == "" {
				return fmt.Errorf("--sqlite is required")
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result, err := ingest.MigrateSQLite(ctx, pool.Pool, sqlitePath, tables, logger)
				if err != nil {
					return err
				}
				logger.Info("Migration finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				if len(result.Errors) > 0 {
					return fmt.Errorf("%d tables failed", len(result.Errors))
				}

				// Bulk copy leaves the planner with stale estimates
				migrated := tables
				if len(migrated) == 0 {
					migrated = ingest.MigrateTables
				}
				maintenance.AnalyzeTables(ctx, pool.Pool, migrated, logger)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Path to the legacy SQLite file")
	cmd.Flags().StringSliceVar(&tables, "tables", nil, "Tables to copy (default: all)")
	return cmd
}

// --------------------------------------------------------------------------
// user command
// --------------------------------------------------------------------------

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage member logins",
	}
	cmd.AddCommand(userAddCmd())
	cmd.AddCommand(userRmCmd())
	return cmd
}

func userAddCmd() *cobra.Command {
	var username, email, name string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or update a member login (prompts for password)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}
			password, err := readPassword()
			if err != nil {
				return err
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if err := ingest.UpsertCredential(ctx, pool.Pool, username, email, name, password); err != nil {
					return err
				}
				logger.Info("Credential saved", "username", username)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Login username")
	cmd.Flags().StringVar(&email, "email", "", "Member email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	return cmd
}

func userRmCmd() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a member login",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if err := ingest.DeleteCredential(ctx, pool.Pool, username); err != nil {
					return err
				}
				logger.Info("Credential removed", "username", username)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Login username")
	return cmd
}

// readPassword prompts on the terminal so the password never lands in shell
// history or process args.
func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(pw), nil
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runIngest handles config loading, DB connection, and context cancellation.
func runIngest(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
