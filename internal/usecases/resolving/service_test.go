package resolving

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/creative-sync/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/creative-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(client *metamocks.MockClient) *Service {
	return &Service{
		client: client,
		sleep:  func(time.Duration) {},
	}
}

func TestService_ResolveCreative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	ad := &domain.Ad{
		ID:           "AD001",
		AccountID:    "ACC001",
		PlatformAdID: "12345",
	}

	fullPicture := "https://scontent.cdn/v/full_picture.jpg"
	attachmentSrc := "https://scontent.cdn/v/attachment.jpg"
	profilePic := "https://scontent.cdn/t39.30808-1/perfil.jpg"

	tests := []struct {
		name     string
		policy   Policy
		setup    func()
		validate func(t *testing.T, resolved domain.CreativeUpdate)
	}{
		{
			name:   "Backfill - full_picture da publicação tem prioridade máxima",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						EffectiveObjectStoryID: "PAGE_POST_1",
						ImageURL:               "https://scontent.cdn/v/image_url.jpg",
						ThumbnailURL:           "https://scontent.cdn/v/thumb.jpg",
						Title:                  "Promoção de óculos",
						Body:                   "Aproveite o desconto",
						CallToActionType:       "SHOP_NOW",
					}, nil)

				mockClient.EXPECT().
					GetStoryByID(gomock.Any(), "PAGE_POST_1", gomock.Any()).
					Return(&metadomain.Story{FullPicture: fullPicture}, nil)
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.Equal(t, fullPicture, *resolved.CreativeURL)
				assert.Equal(t, "https://scontent.cdn/v/thumb.jpg", *resolved.CreativeThumbnailURL)
				assert.Equal(t, "Promoção de óculos", *resolved.CreativeHeadline)
				assert.Equal(t, "Aproveite o desconto", *resolved.CreativeBody)
				assert.Equal(t, "SHOP_NOW", *resolved.CreativeCTA)
				assert.Equal(t, "PAGE_POST_1", *resolved.ObjectStoryID)
				assert.Nil(t, resolved.CreativeVideoURL)
			},
		},
		{
			name:   "Correção - full_picture ignorado e anexo com marcador rejeitado",
			policy: CorrectivePolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						EffectiveObjectStoryID: "PAGE_POST_2",
						ImageURL:               "https://scontent.cdn/v/image_url.jpg",
					}, nil)

				mockClient.EXPECT().
					GetStoryByID(gomock.Any(), "PAGE_POST_2", gomock.Any()).
					Return(&metadomain.Story{
						FullPicture: fullPicture,
						Attachments: &metadomain.Attachments{
							Data: []metadomain.Attachment{
								{Media: &metadomain.AttachmentMedia{Image: &metadomain.AttachmentImage{Src: profilePic}}},
							},
						},
					}, nil)
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				// full_picture não é confiável na correção e o anexo aponta
				// para a foto de perfil: vence a imagem do próprio criativo
				assert.Equal(t, "https://scontent.cdn/v/image_url.jpg", *resolved.CreativeURL)
			},
		},
		{
			name:   "Falha ao buscar a publicação anula só aquele passo",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						EffectiveObjectStoryID: "PAGE_POST_3",
						ImageURL:               "https://scontent.cdn/v/image_url.jpg",
					}, nil)

				mockClient.EXPECT().
					GetStoryByID(gomock.Any(), "PAGE_POST_3", gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.Equal(t, "https://scontent.cdn/v/image_url.jpg", *resolved.CreativeURL)
			},
		},
		{
			name:   "Anexo da publicação usado quando full_picture está vazio",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						EffectiveObjectStoryID: "PAGE_POST_4",
					}, nil)

				mockClient.EXPECT().
					GetStoryByID(gomock.Any(), "PAGE_POST_4", gomock.Any()).
					Return(&metadomain.Story{
						Attachments: &metadomain.Attachments{
							Data: []metadomain.Attachment{
								{Media: &metadomain.AttachmentMedia{Image: &metadomain.AttachmentImage{Src: attachmentSrc}}},
							},
						},
					}, nil)
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.Equal(t, attachmentSrc, *resolved.CreativeURL)
			},
		},
		{
			name:   "Variante link_data do object_story_spec como candidata de imagem",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						ObjectStorySpec: &metadomain.ObjectStorySpec{
							LinkData: &metadomain.LinkData{Picture: "https://scontent.cdn/v/link_picture.jpg"},
						},
					}, nil)
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.Equal(t, "https://scontent.cdn/v/link_picture.jpg", *resolved.CreativeURL)
			},
		},
		{
			name:   "Vídeo - fonte registrada e primeira miniatura usada como imagem",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						ObjectStorySpec: &metadomain.ObjectStorySpec{
							VideoData: &metadomain.VideoData{VideoID: "VID001"},
						},
					}, nil)

				mockClient.EXPECT().
					GetVideoByID(gomock.Any(), "VID001", gomock.Any()).
					Return(&metadomain.Video{
						Source: "https://video.cdn/v/source.mp4",
						Thumbnails: &metadomain.VideoThumbnails{
							Data: []metadomain.VideoThumbnail{{URI: "https://scontent.cdn/v/video_thumb.jpg"}},
						},
					}, nil)
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.Equal(t, "https://video.cdn/v/source.mp4", *resolved.CreativeVideoURL)
				assert.Equal(t, "https://scontent.cdn/v/video_thumb.jpg", *resolved.CreativeURL)
			},
		},
		{
			name:   "Criativo não encontrado - resultado vazio sem erro",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(nil, errors.New("no data found"))
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.True(t, resolved.IsEmpty())
			},
		},
		{
			name:   "Miniatura do criativo como último recurso de imagem",
			policy: BackfillPolicy,
			setup: func() {
				mockClient.EXPECT().
					GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
					Return(&metadomain.AdCreative{
						ThumbnailURL: "https://scontent.cdn/v/thumb_only.jpg",
					}, nil)
			},
			validate: func(t *testing.T, resolved domain.CreativeUpdate) {
				assert.Equal(t, "https://scontent.cdn/v/thumb_only.jpg", *resolved.CreativeURL)
				assert.Equal(t, "https://scontent.cdn/v/thumb_only.jpg", *resolved.CreativeThumbnailURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			resolved := service.ResolveCreative(context.Background(), ad, tt.policy, &domain.RunStats{})
			tt.validate(t, resolved)
		})
	}
}

func TestService_ResolveCreative_VideoLookupDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)

	var slept []time.Duration
	service := &Service{
		client:           mockClient,
		videoLookupDelay: time.Second,
		sleep:            func(d time.Duration) { slept = append(slept, d) },
	}

	mockClient.EXPECT().
		GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
		Return(&metadomain.AdCreative{
			ObjectStorySpec: &metadomain.ObjectStorySpec{
				VideoData: &metadomain.VideoData{VideoID: "VID002"},
			},
		}, nil)

	mockClient.EXPECT().
		GetVideoByID(gomock.Any(), "VID002", gomock.Any()).
		Return(&metadomain.Video{Source: "https://video.cdn/v/source.mp4"}, nil)

	ad := &domain.Ad{PlatformAdID: "12345"}
	service.ResolveCreative(context.Background(), ad, BackfillPolicy, &domain.RunStats{})

	assert.Equal(t, []time.Duration{time.Second}, slept)
}

func TestService_ResolveImageURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	mockClient.EXPECT().
		GetAdCreativeByAdID(gomock.Any(), "12345", gomock.Any()).
		Return(&metadomain.AdCreative{
			ImageURL: "https://scontent.cdn/v/fresca.jpg",
		}, nil)

	ad := &domain.Ad{PlatformAdID: "12345"}
	url := service.ResolveImageURL(context.Background(), ad, &domain.RunStats{})

	assert.Equal(t, "https://scontent.cdn/v/fresca.jpg", url)
}
