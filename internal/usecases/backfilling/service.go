package backfilling

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync/infrastructure/repository"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/domain"
	"github.com/vfg2006/creative-sync/internal/usecases/resolving"
)

// DefaultRunLimit limita uma execução sem --limit explícito
const DefaultRunLimit = 500

const runIDLength = 8

// Options parametriza uma execução de backfill
type Options struct {
	DryRun     bool
	Limit      int
	AccountID  string
	Corrective bool // passada de correção de foto de perfil
}

type Backfiller interface {
	Run(ctx context.Context, opts Options) (domain.RunStats, error)
}

type Service struct {
	adRepo   repository.AdRepository
	resolver resolving.Resolver

	pageSize   int
	batchDelay time.Duration
	sleep      func(time.Duration)
}

func NewService(cfg *config.Config, adRepo repository.AdRepository, resolver resolving.Resolver) *Service {
	pageSize := cfg.CreativeBackfill.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	return &Service{
		adRepo:     adRepo,
		resolver:   resolver,
		pageSize:   pageSize,
		batchDelay: time.Duration(cfg.CreativeBackfill.BatchDelaySeconds) * time.Second,
		sleep:      time.Sleep,
	}
}

// Run seleciona um lote limitado de anúncios que precisam de atenção, resolve
// cada um em série e persiste os campos resolvidos. Falhas por anúncio são
// contadas e logadas sem abortar a execução; apenas a consulta inicial é fatal.
func (s *Service) Run(ctx context.Context, opts Options) (domain.RunStats, error) {
	stats := domain.RunStats{}

	runID, _ := gonanoid.New(runIDLength)
	log := logrus.WithField("run_id", runID)

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultRunLimit
	}

	filter := domain.CreativeBackfillFilter{
		MissingCreativeURL: !opts.Corrective,
		BadCreativeURL:     opts.Corrective,
		AccountID:          opts.AccountID,
	}

	policy := resolving.BackfillPolicy
	if opts.Corrective {
		policy = resolving.CorrectivePolicy
	}

	ads, err := s.adRepo.ListNeedingCreative(filter, uint64(limit))
	if err != nil {
		return stats, errors.Wrap(err, "erro ao buscar anúncios para backfill")
	}

	log.WithFields(logrus.Fields{
		"ads":        len(ads),
		"dry_run":    opts.DryRun,
		"corrective": opts.Corrective,
		"account_id": opts.AccountID,
	}).Info("backfill: execução iniciada")

	for i, ad := range ads {
		// Pausa fixa entre páginas para respeitar o limite da API externa
		if i > 0 && i%s.pageSize == 0 {
			s.sleep(s.batchDelay)
		}

		s.processAd(ctx, log, ad, policy, opts, &stats)
	}

	log.WithFields(logrus.Fields{
		"api_calls": stats.APICalls,
		"updated":   stats.Updated,
		"skipped":   stats.Skipped,
		"errored":   stats.Errored,
	}).Info("backfill: execução concluída")

	return stats, nil
}

func (s *Service) processAd(
	ctx context.Context,
	log *logrus.Entry,
	ad *domain.Ad,
	policy resolving.Policy,
	opts Options,
	stats *domain.RunStats,
) {
	resolved := s.resolver.ResolveCreative(ctx, ad, policy, stats)

	patch := domain.MergeCreativeUpdate(ad, resolved, opts.Corrective)
	if patch.IsEmpty() {
		stats.Skipped++
		log.WithField("platform_ad_id", ad.PlatformAdID).Debug("backfill: nada novo encontrado para o anúncio")
		return
	}

	if opts.DryRun {
		stats.Updated++
		log.WithFields(logrus.Fields{
			"platform_ad_id": ad.PlatformAdID,
			"changes":        patch.Fields(),
		}).Info("backfill: alterações pretendidas (dry-run, nada gravado)")
		return
	}

	if err := s.adRepo.UpdateCreative(ad.ID, patch); err != nil {
		stats.Errored++
		log.WithFields(logrus.Fields{
			"platform_ad_id": ad.PlatformAdID,
			"error":          err.Error(),
		}).Error("backfill: erro ao persistir criativo resolvido")
		return
	}

	stats.Updated++
	log.WithFields(logrus.Fields{
		"platform_ad_id": ad.PlatformAdID,
		"fields":         len(patch.Fields()),
	}).Debug("backfill: anúncio atualizado")
}
