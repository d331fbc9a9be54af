package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync/internal/domain"
)

const videoFields = "source,thumbnails"

// GetVideoByID busca a fonte reproduzível e as miniaturas de um vídeo
func (c *MetaClient) GetVideoByID(ctx context.Context, videoID string, stats *domain.RunStats) (*metadomain.Video, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, videoID)

	params := url.Values{}
	params.Add("fields", videoFields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode(), stats)
	if err != nil {
		return nil, err
	}

	var video metadomain.Video
	if err := json.Unmarshal(body, &video); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return &video, nil
}
