package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/infrastructure/migration/seed"
	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "orbitctl",
		Short:         "Ferramentas de operação do Orbit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newSummaryCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.Setup(log.Options{Level: cfg.App.LogLevel, Env: cfg.App.Env, Output: os.Stderr})
	return cfg, nil
}

func newMigrateCmd() *cobra.Command {
	migrate := &cobra.Command{Use: "migrate", Short: "Aplica ou desfaz migrations do banco"}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrations pendentes",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(cfg.Database.DSN)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Desfaz as últimas migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := postgres.RollbackMigrations(cfg.Database.DSN, steps); err != nil {
				return err
			}
			log.L.WithField("steps", steps).Info("Migrations desfeitas")
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "quantidade de migrations a desfazer (0 desfaz todas)")
	migrate.AddCommand(down)

	return migrate
}

func newSeedCmd() *cobra.Command {
	var email, password, period string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Cria um usuário de demonstração com dados do período",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := utils.ParsePeriod(period, time.Now())
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			result, err := seed.Run(cmd.Context(), conn, seed.Options{Email: email, Password: password, Period: p})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "usuário %d criado (%s): %d clientes, %d projetos, %d faturas, %d registros de tempo\n",
				result.UserID, email, result.Clients, result.Projects, result.Invoices, result.TimeEntries)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", seed.DemoEmail, "e-mail do usuário de demonstração")
	cmd.Flags().StringVar(&password, "password", seed.DemoPassword, "senha do usuário de demonstração")
	cmd.Flags().StringVar(&period, "period", "01-2026", "período dos dados (mm-yyyy)")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	var userID int
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Calcula o resumo do dashboard de um usuário",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := utils.ParsePeriod(period, time.Now())
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			service := dashboarding.NewService(
				repository.NewDashboardRepository(conn),
				repository.NewHealthSnapshotRepository(conn),
				repository.NewUserRepository(conn),
			)

			summary, err := service.GetSummary(ctx, userID, p)
			if err != nil {
				return err
			}

			out, err := utils.PrettyJson(summary)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "ID do usuário")
	cmd.Flags().StringVar(&period, "period", "", "período (mm-yyyy); vazio usa o mês corrente")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
