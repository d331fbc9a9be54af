package domain

import (
	"strings"
	"time"
)

// ProfilePictureMarker é o trecho de caminho do CDN associado à foto de perfil
// da página do anunciante, e não ao criativo do anúncio. URLs contendo esse
// marcador são consideradas erradas por identidade, não por qualidade.
const ProfilePictureMarker = "/t39.30808-1/"

// Ad representa um anúncio persistido com seus campos de criativo.
// Os campos de criativo são preenchidos de forma assíncrona pelo backfill e
// nunca sobrescritos depois de resolvidos (exceto pela correção de foto de perfil).
type Ad struct {
	ID                   string
	AccountID            string
	PlatformAdID         string
	CreativeURL          *string
	CreativeThumbnailURL *string
	CreativeVideoURL     *string
	StoredCreativeURL    *string
	StoredThumbnailURL   *string
	CreativeHeadline     *string
	CreativeBody         *string
	CreativeCTA          *string
	ObjectStoryID        *string
	UpdatedAt            time.Time
}

// HasProfilePictureURL indica se a URL de criativo atual aponta para a foto de perfil
func (a *Ad) HasProfilePictureURL() bool {
	return a.CreativeURL != nil && strings.Contains(*a.CreativeURL, ProfilePictureMarker)
}

// CreativeUpdate enumera exatamente os campos de criativo que um backfill pode
// escrever. Campos nil não fazem parte do patch.
type CreativeUpdate struct {
	CreativeURL          *string
	CreativeThumbnailURL *string
	CreativeVideoURL     *string
	CreativeHeadline     *string
	CreativeBody         *string
	CreativeCTA          *string
	ObjectStoryID        *string
}

// IsEmpty indica se o patch não contém nenhum campo
func (u CreativeUpdate) IsEmpty() bool {
	return u.CreativeURL == nil &&
		u.CreativeThumbnailURL == nil &&
		u.CreativeVideoURL == nil &&
		u.CreativeHeadline == nil &&
		u.CreativeBody == nil &&
		u.CreativeCTA == nil &&
		u.ObjectStoryID == nil
}

// Fields retorna os campos presentes no patch, útil para logar em dry-run
func (u CreativeUpdate) Fields() map[string]string {
	fields := make(map[string]string)
	set := func(name string, value *string) {
		if value != nil {
			fields[name] = *value
		}
	}
	set("creative_url", u.CreativeURL)
	set("creative_thumbnail_url", u.CreativeThumbnailURL)
	set("creative_video_url", u.CreativeVideoURL)
	set("creative_headline", u.CreativeHeadline)
	set("creative_body", u.CreativeBody)
	set("creative_cta", u.CreativeCTA)
	set("object_story_id", u.ObjectStoryID)
	return fields
}

// MergeCreativeUpdate aplica a invariante de monotonicidade em um único lugar:
// o resultado contém apenas campos que ainda são nulos no anúncio. A exceção é
// a URL do criativo quando replaceBadCreativeURL está ativo e o valor atual
// carrega o marcador de foto de perfil — nesse caso ela pode ser substituída,
// desde que o novo valor seja de fato diferente (evita escritas no-op).
func MergeCreativeUpdate(ad *Ad, resolved CreativeUpdate, replaceBadCreativeURL bool) CreativeUpdate {
	patch := CreativeUpdate{}

	if resolved.CreativeURL != nil {
		switch {
		case ad.CreativeURL == nil:
			patch.CreativeURL = resolved.CreativeURL
		case replaceBadCreativeURL && ad.HasProfilePictureURL() && *resolved.CreativeURL != *ad.CreativeURL:
			patch.CreativeURL = resolved.CreativeURL
		}
	}

	if resolved.CreativeThumbnailURL != nil && ad.CreativeThumbnailURL == nil {
		patch.CreativeThumbnailURL = resolved.CreativeThumbnailURL
	}
	if resolved.CreativeVideoURL != nil && ad.CreativeVideoURL == nil {
		patch.CreativeVideoURL = resolved.CreativeVideoURL
	}
	if resolved.CreativeHeadline != nil && ad.CreativeHeadline == nil {
		patch.CreativeHeadline = resolved.CreativeHeadline
	}
	if resolved.CreativeBody != nil && ad.CreativeBody == nil {
		patch.CreativeBody = resolved.CreativeBody
	}
	if resolved.CreativeCTA != nil && ad.CreativeCTA == nil {
		patch.CreativeCTA = resolved.CreativeCTA
	}
	if resolved.ObjectStoryID != nil && ad.ObjectStoryID == nil {
		patch.ObjectStoryID = resolved.ObjectStoryID
	}

	return patch
}

// CreativeBackfillFilter descreve de forma declarativa quais anúncios precisam
// de atenção em uma execução de backfill
type CreativeBackfillFilter struct {
	MissingCreativeURL bool   // creative_url IS NULL
	BadCreativeURL     bool   // creative_url LIKE marcador de foto de perfil
	AccountID          string // escopo opcional por conta
}

// RunStats acumula os contadores de uma execução. É transportado explicitamente
// pelo orquestrador e retornado ao final, sem estado global.
type RunStats struct {
	APICalls int
	Updated  int
	Skipped  int
	Errored  int
}

// CountCall registra uma chamada feita à API externa
func (s *RunStats) CountCall() {
	s.APICalls++
}
