package main

import (
	"encoding/json"
	"fmt"
	"time"

	"country-limits/config"
	pgStorage "country-limits/internal/adapter/storage/postgres"
	"country-limits/internal/core/domain"
	"country-limits/internal/service"
	"country-limits/pkg/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "clmctl",
		Short:         "Operator tooling for the country limit service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ./config.yaml)")

	load := func() (*config.Config, error) { return config.Load(cfgFile) }

	root.AddCommand(newTokenCmd(load), newConfigCmd(load), newMigrateCmd(load))
	return root
}

// newTokenCmd issues a bearer token, standing in for the identity provider
// in development.
func newTokenCmd(load func() (*config.Config, error)) *cobra.Command {
	var actor, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed JWT for an actor and role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("jwt.secret is not configured")
			}
			svc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
			token, exp, err := svc.Generate(actor, domain.Role(role))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "actor id placed in the sub claim")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleMaker), "maker, checker or admin")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}

func newConfigCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Inspect configuration"}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate and print the effective config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			redacted := *cfg
			redacted.Database.Password = redact(cfg.Database.Password)
			redacted.Redis.Password = redact(cfg.Redis.Password)
			redacted.JWT.Secret = redact(cfg.JWT.Secret)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(redacted)
		},
	})
	return cmd
}

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return pgStorage.Migrate(cfg.Database.DSN(), logger.New(cfg.Log.Level, cfg.Log.Pretty))
		},
	}
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "******"
}
