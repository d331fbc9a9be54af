package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync/internal/domain"
)

const adCreativeFields = "effective_object_story_id,thumbnail_url,image_url,object_story_spec,body,title,call_to_action_type"

type ResponseAdCreatives struct {
	Data   []metadomain.AdCreative `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetAdCreativeByAdID busca o criativo anexado a um anúncio
func (c *MetaClient) GetAdCreativeByAdID(ctx context.Context, adID string, stats *domain.RunStats) (*metadomain.AdCreative, error) {
	baseURL := fmt.Sprintf("%s/%s/adcreatives", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Add("fields", adCreativeFields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode(), stats)
	if err != nil {
		return nil, err
	}

	var response ResponseAdCreatives
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if len(response.Data) == 0 {
		return nil, errors.New("no data found")
	}

	return &response.Data[0], nil
}
