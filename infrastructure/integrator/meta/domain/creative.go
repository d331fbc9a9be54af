package metadomain

// AdCreative representa o criativo anexado a um anúncio, conforme retornado
// pelo endpoint /{adId}/adcreatives
type AdCreative struct {
	ID                     string           `json:"id"`
	EffectiveObjectStoryID string           `json:"effective_object_story_id"`
	ThumbnailURL           string           `json:"thumbnail_url"`
	ImageURL               string           `json:"image_url"`
	Body                   string           `json:"body"`
	Title                  string           `json:"title"`
	CallToActionType       string           `json:"call_to_action_type"`
	ObjectStorySpec        *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

// ObjectStorySpec é uma união etiquetada pelo formato do anúncio: apenas um
// dos ramos link/photo/video vem preenchido
type ObjectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *LinkData  `json:"link_data,omitempty"`
	PhotoData *PhotoData `json:"photo_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

type LinkData struct {
	Link    string `json:"link"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type PhotoData struct {
	Caption string `json:"caption"`
	URL     string `json:"url"`
}

type VideoData struct {
	VideoID  string `json:"video_id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// Story é a publicação promovida pelo anúncio. full_picture é a imagem de
// maior fidelidade, porém às vezes resolve para a foto de perfil da página.
type Story struct {
	ID          string       `json:"id"`
	FullPicture string       `json:"full_picture"`
	Attachments *Attachments `json:"attachments,omitempty"`
}

type Attachments struct {
	Data []Attachment `json:"data"`
}

type Attachment struct {
	Media *AttachmentMedia `json:"media,omitempty"`
}

type AttachmentMedia struct {
	Image *AttachmentImage `json:"image,omitempty"`
}

type AttachmentImage struct {
	Src    string `json:"src"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// AttachmentImageSrc retorna a imagem do primeiro anexo da publicação, se houver
func (s *Story) AttachmentImageSrc() string {
	if s.Attachments == nil || len(s.Attachments.Data) == 0 {
		return ""
	}

	media := s.Attachments.Data[0].Media
	if media == nil || media.Image == nil {
		return ""
	}

	return media.Image.Src
}

// Video representa a resposta do endpoint /{videoId} com a fonte reproduzível
type Video struct {
	ID         string           `json:"id"`
	Source     string           `json:"source"`
	Thumbnails *VideoThumbnails `json:"thumbnails,omitempty"`
}

type VideoThumbnails struct {
	Data []VideoThumbnail `json:"data"`
}

type VideoThumbnail struct {
	URI         string `json:"uri"`
	IsPreferred bool   `json:"is_preferred"`
}

// FirstThumbnailURI retorna a primeira miniatura do vídeo, se houver
func (v *Video) FirstThumbnailURI() string {
	if v.Thumbnails == nil || len(v.Thumbnails.Data) == 0 {
		return ""
	}
	return v.Thumbnails.Data[0].URI
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
