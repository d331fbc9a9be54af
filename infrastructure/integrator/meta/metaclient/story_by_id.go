package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync/internal/domain"
)

const storyFields = "full_picture,attachments{media{image}}"

// GetStoryByID busca a publicação promovida pelo anúncio (object story)
func (c *MetaClient) GetStoryByID(ctx context.Context, storyID string, stats *domain.RunStats) (*metadomain.Story, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, storyID)

	params := url.Values{}
	params.Add("fields", storyFields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode(), stats)
	if err != nil {
		return nil, err
	}

	var story metadomain.Story
	if err := json.Unmarshal(body, &story); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return &story, nil
}
