package resolving

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/domain"
)

// Policy parametriza a cadeia de prioridade de resolução. O backfill padrão e
// a correção de foto de perfil usam a mesma cadeia com confianças diferentes
// sobre o full_picture da publicação: ele tem a maior fidelidade, mas às vezes
// resolve para a foto de perfil da página em vez do criativo.
type Policy struct {
	TrustFullPicture     bool
	RejectProfilePicture bool
}

var (
	// BackfillPolicy aceita full_picture como melhor imagem
	BackfillPolicy = Policy{TrustFullPicture: true}

	// CorrectivePolicy exclui full_picture e rejeita qualquer candidata com o
	// marcador de foto de perfil em todos os passos da cadeia
	CorrectivePolicy = Policy{RejectProfilePicture: true}
)

type Resolver interface {
	ResolveCreative(ctx context.Context, ad *domain.Ad, policy Policy, stats *domain.RunStats) domain.CreativeUpdate
	ResolveImageURL(ctx context.Context, ad *domain.Ad, stats *domain.RunStats) string
}

type Service struct {
	client metaclient.Client

	videoLookupDelay time.Duration
	sleep            func(time.Duration)
}

func NewService(cfg *config.Config, client metaclient.Client) *Service {
	return &Service{
		client:           client,
		videoLookupDelay: time.Duration(cfg.CreativeBackfill.VideoLookupDelaySeconds) * time.Second,
		sleep:            time.Sleep,
	}
}

// ResolveCreative percorre a cadeia de prioridade e devolve os melhores
// candidatos encontrados para cada campo. "Nada encontrado" não é erro: o
// resultado volta vazio e o chamador decide o que fazer. Falhas de rede ou da
// API em um passo anulam apenas aquele passo, e a cadeia segue adiante.
func (s *Service) ResolveCreative(ctx context.Context, ad *domain.Ad, policy Policy, stats *domain.RunStats) domain.CreativeUpdate {
	resolved := domain.CreativeUpdate{}

	creative, err := s.client.GetAdCreativeByAdID(ctx, ad.PlatformAdID, stats)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform_ad_id": ad.PlatformAdID,
			"error":          err.Error(),
		}).Debug("resolving: criativo não encontrado para o anúncio")
		return resolved
	}

	if creative.Title != "" {
		resolved.CreativeHeadline = strPtr(creative.Title)
	}
	if creative.Body != "" {
		resolved.CreativeBody = strPtr(creative.Body)
	}
	if creative.CallToActionType != "" {
		resolved.CreativeCTA = strPtr(creative.CallToActionType)
	}
	if creative.EffectiveObjectStoryID != "" {
		resolved.ObjectStoryID = strPtr(creative.EffectiveObjectStoryID)
	}

	acceptable := func(candidate string) bool {
		if candidate == "" {
			return false
		}
		if policy.RejectProfilePicture && strings.Contains(candidate, domain.ProfilePictureMarker) {
			return false
		}
		return true
	}

	imageURL := ""

	// 1. A publicação promovida carrega a imagem de maior fidelidade
	if creative.EffectiveObjectStoryID != "" {
		story, err := s.client.GetStoryByID(ctx, creative.EffectiveObjectStoryID, stats)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform_ad_id": ad.PlatformAdID,
				"story_id":       creative.EffectiveObjectStoryID,
				"error":          err.Error(),
			}).Debug("resolving: falha ao buscar a publicação do anúncio")
		} else {
			if policy.TrustFullPicture && acceptable(story.FullPicture) {
				imageURL = story.FullPicture
			}
			if imageURL == "" && acceptable(story.AttachmentImageSrc()) {
				imageURL = story.AttachmentImageSrc()
			}
		}
	}

	// 2. Imagem do próprio criativo
	if imageURL == "" && acceptable(creative.ImageURL) {
		imageURL = creative.ImageURL
	}

	// 3. Variantes aninhadas do object_story_spec, conforme o formato do anúncio
	if imageURL == "" && creative.ObjectStorySpec != nil {
		imageURL = firstAcceptable(acceptable, specImageCandidates(creative.ObjectStorySpec)...)
	}

	// 4. Miniatura do criativo, último recurso de imagem
	if imageURL == "" && acceptable(creative.ThumbnailURL) {
		imageURL = creative.ThumbnailURL
	}

	// 5. Vídeo: sempre registrar a fonte reproduzível; a primeira miniatura
	// serve de imagem quando nada melhor foi encontrado
	if creative.ObjectStorySpec != nil && creative.ObjectStorySpec.VideoData != nil &&
		creative.ObjectStorySpec.VideoData.VideoID != "" {
		s.sleep(s.videoLookupDelay)

		video, err := s.client.GetVideoByID(ctx, creative.ObjectStorySpec.VideoData.VideoID, stats)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform_ad_id": ad.PlatformAdID,
				"video_id":       creative.ObjectStorySpec.VideoData.VideoID,
				"error":          err.Error(),
			}).Debug("resolving: falha ao buscar a fonte do vídeo")
		} else {
			if video.Source != "" {
				resolved.CreativeVideoURL = strPtr(video.Source)
			}
			if imageURL == "" && acceptable(video.FirstThumbnailURI()) {
				imageURL = video.FirstThumbnailURI()
			}
		}
	}

	if imageURL != "" {
		resolved.CreativeURL = strPtr(imageURL)
	}
	if acceptable(creative.ThumbnailURL) {
		resolved.CreativeThumbnailURL = strPtr(creative.ThumbnailURL)
	}

	return resolved
}

// ResolveImageURL reexecuta apenas a cadeia de imagem, usada pela migração de
// armazenamento para renovar URLs expiradas do CDN
func (s *Service) ResolveImageURL(ctx context.Context, ad *domain.Ad, stats *domain.RunStats) string {
	resolved := s.ResolveCreative(ctx, ad, BackfillPolicy, stats)
	if resolved.CreativeURL == nil {
		return ""
	}
	return *resolved.CreativeURL
}

func specImageCandidates(spec *metadomain.ObjectStorySpec) []string {
	candidates := make([]string, 0, 3)
	if spec.LinkData != nil {
		candidates = append(candidates, spec.LinkData.Picture)
	}
	if spec.PhotoData != nil {
		candidates = append(candidates, spec.PhotoData.URL)
	}
	if spec.VideoData != nil {
		candidates = append(candidates, spec.VideoData.ImageURL)
	}
	return candidates
}

func firstAcceptable(acceptable func(string) bool, candidates ...string) string {
	for _, candidate := range candidates {
		if acceptable(candidate) {
			return candidate
		}
	}
	return ""
}

func strPtr(s string) *string {
	return &s
}
