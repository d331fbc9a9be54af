package migrating

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync/infrastructure/repository"
	"github.com/vfg2006/creative-sync/infrastructure/storage/objectstore"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/domain"
	"github.com/vfg2006/creative-sync/internal/usecases/resolving"
)

const DefaultRunLimit = 500

// Options parametriza uma execução da migração de armazenamento
type Options struct {
	DryRun bool
	Limit  int
}

// Stats acumula o resultado de uma execução da migração
type Stats struct {
	APICalls  int
	Succeeded int
	Failed    int
}

type Migrator interface {
	Run(ctx context.Context, opts Options) (Stats, error)
}

type Service struct {
	adRepo   repository.AdRepository
	resolver resolving.Resolver
	uploader objectstore.Uploader

	httpClient       *http.Client
	minImageBytes    int
	progressInterval int
}

func NewService(
	cfg *config.Config,
	adRepo repository.AdRepository,
	resolver resolving.Resolver,
	uploader objectstore.Uploader,
) *Service {
	minBytes := cfg.StorageMigration.MinImageBytes
	if minBytes <= 0 {
		minBytes = 1000
	}

	interval := cfg.StorageMigration.ProgressInterval
	if interval <= 0 {
		interval = 10
	}

	return &Service{
		adRepo:           adRepo,
		resolver:         resolver,
		uploader:         uploader,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
		minImageBytes:    minBytes,
		progressInterval: interval,
	}
}

// Run realoca os bytes dos criativos resolvidos para o armazenamento durável,
// libertando o sistema das URLs temporárias do CDN de terceiros. Anúncios que
// falham continuam elegíveis para uma próxima execução — não há marcador de
// falha permanente.
func (s *Service) Run(ctx context.Context, opts Options) (Stats, error) {
	stats := Stats{}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultRunLimit
	}

	ads, err := s.adRepo.ListForStorageMigration(uint64(limit))
	if err != nil {
		return stats, errors.Wrap(err, "erro ao buscar anúncios para migração de armazenamento")
	}

	logrus.WithFields(logrus.Fields{
		"ads":     len(ads),
		"dry_run": opts.DryRun,
	}).Info("migração: execução iniciada")

	resolverStats := &domain.RunStats{}

	for i, ad := range ads {
		if err := s.migrateAd(ctx, ad, opts, resolverStats); err != nil {
			stats.Failed++
			logrus.WithFields(logrus.Fields{
				"platform_ad_id": ad.PlatformAdID,
				"error":          err.Error(),
			}).Warn("migração: anúncio não migrado nesta execução")
		} else {
			stats.Succeeded++
		}

		if (i+1)%s.progressInterval == 0 {
			logrus.WithFields(logrus.Fields{
				"processed": i + 1,
				"total":     len(ads),
				"succeeded": stats.Succeeded,
				"failed":    stats.Failed,
			}).Info("migração: progresso")
		}
	}

	stats.APICalls = resolverStats.APICalls

	logrus.WithFields(logrus.Fields{
		"succeeded": stats.Succeeded,
		"failed":    stats.Failed,
		"api_calls": stats.APICalls,
	}).Info("migração: execução concluída")

	return stats, nil
}

// migrateAd tenta primeiro a URL já persistida (barata, pode estar expirada);
// na falha, renova a URL pela cadeia de imagem e, se o download fresco
// funcionar, corrige também creative_url de forma oportunista.
func (s *Service) migrateAd(ctx context.Context, ad *domain.Ad, opts Options, resolverStats *domain.RunStats) error {
	if ad.CreativeURL == nil {
		return errors.New("anúncio sem creative_url")
	}

	var freshCreativeURL *string

	data, contentType, err := s.download(ctx, *ad.CreativeURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform_ad_id": ad.PlatformAdID,
			"error":          err.Error(),
		}).Debug("migração: download da URL persistida falhou, renovando pela API")

		freshURL := s.resolver.ResolveImageURL(ctx, ad, resolverStats)
		if freshURL == "" {
			return errors.Wrap(err, "não foi possível renovar a URL do criativo")
		}

		data, contentType, err = s.download(ctx, freshURL)
		if err != nil {
			return errors.Wrap(err, "download da URL renovada também falhou")
		}

		if freshURL != *ad.CreativeURL {
			freshCreativeURL = &freshURL
		}
	}

	ext := ".jpg"
	if strings.Contains(contentType, "png") {
		ext = ".png"
	}

	key := fmt.Sprintf("creatives/%s/%s%s", ad.AccountID, ad.PlatformAdID, ext)

	if opts.DryRun {
		logrus.WithFields(logrus.Fields{
			"platform_ad_id": ad.PlatformAdID,
			"key":            key,
			"bytes":          len(data),
		}).Info("migração: upload pretendido (dry-run, nada gravado)")
		return nil
	}

	storedURL, err := s.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return errors.Wrap(err, "erro ao enviar criativo para o armazenamento durável")
	}

	if err := s.adRepo.UpdateStoredCreative(ad.ID, storedURL, freshCreativeURL); err != nil {
		return errors.Wrap(err, "erro ao persistir URL permanente")
	}

	return nil
}

// download busca os bytes do criativo. Conteúdo abaixo do tamanho mínimo é
// tratado como falha para não armazenar páginas de erro como se fossem imagens.
func (s *Service) download(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao fazer o download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("download falhou com status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao ler o corpo do download: %w", err)
	}

	if len(data) < s.minImageBytes {
		return nil, "", fmt.Errorf("conteúdo degenerado: %d bytes (mínimo %d)", len(data), s.minImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return data, contentType, nil
}
