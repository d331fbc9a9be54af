package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/creative-sync/infrastructure/database/postgres"
	"github.com/vfg2006/creative-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-sync/infrastructure/repository"
	"github.com/vfg2006/creative-sync/infrastructure/storage/objectstore"
	"github.com/vfg2006/creative-sync/internal/api"
	"github.com/vfg2006/creative-sync/internal/api/handler"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/domain"
	"github.com/vfg2006/creative-sync/internal/scheduler"
	"github.com/vfg2006/creative-sync/internal/usecases/backfilling"
	"github.com/vfg2006/creative-sync/internal/usecases/migrating"
	"github.com/vfg2006/creative-sync/internal/usecases/resolving"
)

func main() {
	configureLogger()

	rootCmd := &cobra.Command{
		Use:           "creativesync",
		Short:         "Resolução, backfill e migração de criativos de anúncios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newBackfillCmd(),
		newFixProfilePicsCmd(),
		newMigrateStorageCmd(),
		newResolveCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Apenas falhas de preparação chegam aqui; falhas parciais por anúncio
		// são contadas e logadas sem derrubar a execução
		logrus.WithError(err).Error("Execução abortada")
		os.Exit(1)
	}
}

// appContext agrupa as dependências montadas na preparação de cada comando
type appContext struct {
	cfg        *config.Config
	conn       *postgres.Connection
	adRepo     repository.AdRepository
	resolver   resolving.Resolver
	backfiller backfilling.Backfiller
}

func setup(ctx context.Context) (*appContext, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if cfg.Meta.AccessToken == "" {
		return nil, fmt.Errorf("credencial obrigatória ausente: META_ACCESS_TOKEN")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	adRepo := repository.NewAdRepository(conn)
	metaClient := metaclient.NewClient(cfg)
	resolver := resolving.NewService(cfg, metaClient)

	return &appContext{
		cfg:        cfg,
		conn:       conn,
		adRepo:     adRepo,
		resolver:   resolver,
		backfiller: backfilling.NewService(cfg, adRepo, resolver),
	}, nil
}

func newBackfillCmd() *cobra.Command {
	var dryRun bool
	var limit int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Preenche URLs de criativo e textos de anúncio ausentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := setup(ctx)
			if err != nil {
				return err
			}
			defer app.conn.Close()

			_, err = app.backfiller.Run(ctx, backfilling.Options{
				DryRun: dryRun,
				Limit:  limit,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "apenas loga as alterações pretendidas, sem gravar")
	cmd.Flags().IntVar(&limit, "limit", 0, "máximo de anúncios processados na execução")

	return cmd
}

func newFixProfilePicsCmd() *cobra.Command {
	var dryRun bool
	var limit int
	var accountID string

	cmd := &cobra.Command{
		Use:   "fix-profile-pics",
		Short: "Substitui URLs de criativo que apontam para a foto de perfil da página",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if accountID != "" {
				if _, err := uuid.Parse(accountID); err != nil {
					return fmt.Errorf("account-id inválido: %w", err)
				}
			}

			app, err := setup(ctx)
			if err != nil {
				return err
			}
			defer app.conn.Close()

			_, err = app.backfiller.Run(ctx, backfilling.Options{
				DryRun:     dryRun,
				Limit:      limit,
				AccountID:  accountID,
				Corrective: true,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "apenas loga as alterações pretendidas, sem gravar")
	cmd.Flags().IntVar(&limit, "limit", 0, "máximo de anúncios processados na execução")
	cmd.Flags().StringVar(&accountID, "account-id", "", "restringe a correção a uma única conta")

	return cmd
}

func newMigrateStorageCmd() *cobra.Command {
	var dryRun bool
	var limit int

	cmd := &cobra.Command{
		Use:   "migrate-storage",
		Short: "Realoca bytes de criativos resolvidos para o armazenamento durável",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := setup(ctx)
			if err != nil {
				return err
			}
			defer app.conn.Close()

			uploader, err := objectstore.NewS3Uploader(ctx, app.cfg.Storage)
			if err != nil {
				return fmt.Errorf("erro ao configurar armazenamento durável: %w", err)
			}

			migrator := migrating.NewService(app.cfg, app.adRepo, app.resolver, uploader)

			_, err = migrator.Run(ctx, migrating.Options{
				DryRun: dryRun,
				Limit:  limit,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "apenas loga os uploads pretendidos, sem gravar")
	cmd.Flags().IntVar(&limit, "limit", 0, "máximo de anúncios processados na execução")

	return cmd
}

func newResolveCmd() *cobra.Command {
	var corrective bool

	cmd := &cobra.Command{
		Use:   "resolve <platform-ad-id>",
		Short: "Resolve o criativo de um único anúncio e mostra o patch, sem gravar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := setup(ctx)
			if err != nil {
				return err
			}
			defer app.conn.Close()

			ad, err := app.adRepo.GetByPlatformAdID(args[0])
			if err != nil {
				return fmt.Errorf("erro ao buscar anúncio: %w", err)
			}
			if ad == nil {
				return fmt.Errorf("anúncio não encontrado: %s", args[0])
			}

			policy := resolving.BackfillPolicy
			if corrective {
				policy = resolving.CorrectivePolicy
			}

			stats := &domain.RunStats{}
			resolved := app.resolver.ResolveCreative(ctx, ad, policy, stats)
			patch := domain.MergeCreativeUpdate(ad, resolved, corrective)

			logrus.WithFields(logrus.Fields{
				"platform_ad_id": ad.PlatformAdID,
				"api_calls":      stats.APICalls,
				"changes":        patch.Fields(),
			}).Info("Resolução concluída (nada gravado)")

			return nil
		},
	}

	cmd.Flags().BoolVar(&corrective, "corrective", false, "usa a política de correção de foto de perfil")

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe o agendador de sincronização e a API administrativa",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			app, err := setup(ctx)
			if err != nil {
				return err
			}
			defer app.conn.Close()

			uploader, err := objectstore.NewS3Uploader(ctx, app.cfg.Storage)
			if err != nil {
				return fmt.Errorf("erro ao configurar armazenamento durável: %w", err)
			}

			migrator := migrating.NewService(app.cfg, app.adRepo, app.resolver, uploader)

			creativeSyncService := scheduler.NewCreativeSyncService(app.backfiller, migrator, app.cfg)
			if err := creativeSyncService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de criativos")
			} else {
				logrus.Info("Agendador de sincronização de criativos iniciado com sucesso")
			}

			server, err := api.New(app.cfg, handler.JobServices{
				CreativeSyncService: creativeSyncService,
				Backfiller:          app.backfiller,
				Migrator:            migrator,
			})
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
