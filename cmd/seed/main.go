package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bay-services/dashboard/backend/internal/config"
	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/repository"
	"github.com/bay-services/dashboard/backend/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Load fixtures and test accounts into the dashboard database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newUploadCommand(), newAccountsCommand(), newUsersCommand())
	return root
}

func newUploadCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload every fixture listed in the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, closeDB, err := connect()
			if err != nil {
				return err
			}
			defer closeDB()

			if manifestPath == "" {
				manifestPath = cfg.Seed.Manifest
			}

			m, err := seed.LoadManifest(manifestPath)
			if err != nil {
				slog.Error("failed to load manifest", "path", manifestPath, "error", err)
				return err
			}

			res := seed.Upload(repo, m)
			if res.Errors > 0 {
				slog.Warn("upload completed with errors, check the log above")
				return fmt.Errorf("%d items failed", res.Errors)
			}

			slog.Info("all data uploaded")
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "fixture manifest (defaults to SEED_MANIFEST)")
	return cmd
}

func newAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Create the manager and operator test accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, closeDB, err := connect()
			if err != nil {
				return err
			}
			defer closeDB()

			created, err := seed.CreateTestAccounts(repo, cfg.Seed.TestPassword)
			if err != nil {
				slog.Error("failed to create test accounts", "error", err)
				return err
			}

			for _, a := range seed.TestAccounts {
				fmt.Printf("%-10s %s\n", a.Role, a.Email)
			}
			if created > 0 {
				fmt.Printf("password: %s\n", cfg.Seed.TestPassword)
			}
			return nil
		},
	}
}

func newUsersCommand() *cobra.Command {
	var (
		limit int
		role  string
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.New("--limit must be > 0")
			}
			if role != "" && role != string(domain.RoleOperator) && role != string(domain.RoleManager) {
				return fmt.Errorf("--role must be %s or %s", domain.RoleOperator, domain.RoleManager)
			}

			_, repo, closeDB, err := connect()
			if err != nil {
				return err
			}
			defer closeDB()

			users, err := repo.GetAllUsers(domain.Role(role))
			if err != nil {
				slog.Error("failed to list users", "error", err)
				return err
			}

			for i, u := range users {
				if i == limit {
					break
				}
				fmt.Printf("%d\t%s\t%s\t%s\tactive=%t\n", u.ID, u.Email, u.DisplayName, u.Role, u.IsActive)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of accounts to print")
	cmd.Flags().StringVar(&role, "role", "", "only list accounts with this role")
	return cmd
}

func connect() (*config.Config, *repository.Repository, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return nil, nil, nil, err
	}

	repo, err := repository.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return nil, nil, nil, err
	}

	return cfg, repo, func() { repo.Close() }, nil
}
