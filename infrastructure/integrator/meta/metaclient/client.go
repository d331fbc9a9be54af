package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/domain"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdCreativeByAdID(ctx context.Context, adID string, stats *domain.RunStats) (*metadomain.AdCreative, error)
	GetStoryByID(ctx context.Context, storyID string, stats *domain.RunStats) (*metadomain.Story, error)
	GetVideoByID(ctx context.Context, videoID string, stats *domain.RunStats) (*metadomain.Video, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	backoff    time.Duration

	// sleep é injetável para que os testes não dependam de timers reais
	sleep func(time.Duration)
}

func NewClient(cfg *config.Config) Client {
	rps := cfg.CreativeBackfill.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}

	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		backoff:    time.Duration(cfg.CreativeBackfill.RateLimitBackoffSeconds) * time.Second,
		sleep:      time.Sleep,
	}
}

// doGet executa um GET autenticado e devolve o corpo da resposta.
// Uma resposta de rate limit provoca uma única espera fixa seguida de uma
// única repetição da mesma chamada; uma segunda ocorrência é tratada como
// falha comum.
func (c *MetaClient) doGet(ctx context.Context, requestURL string, stats *domain.RunStats) ([]byte, error) {
	body, statusCode, err := c.get(ctx, requestURL, stats)
	if err != nil {
		return nil, err
	}

	if statusCode >= 200 && statusCode < 300 {
		return body, nil
	}

	if metadomain.IsRateLimited(statusCode, body) {
		logrus.WithField("backoff", c.backoff.String()).Warn("Rate limit da API do Meta atingido, aguardando antes de repetir")
		c.sleep(c.backoff)

		body, statusCode, err = c.get(ctx, requestURL, stats)
		if err != nil {
			return nil, err
		}
		if statusCode >= 200 && statusCode < 300 {
			return body, nil
		}
	}

	return nil, fmt.Errorf("resposta inesperada da API do Meta. Status: %d, Corpo: %s", statusCode, truncate(body, 200))
}

func (c *MetaClient) get(ctx context.Context, requestURL string, stats *domain.RunStats) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	if stats != nil {
		stats.CountCall()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return body, resp.StatusCode, nil
}

func truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
