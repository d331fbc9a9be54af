package migrating

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/creative-sync/infrastructure/repository/mocks"
	uploadermocks "github.com/vfg2006/creative-sync/infrastructure/storage/objectstore/mocks"
	"github.com/vfg2006/creative-sync/internal/domain"
	resolvermocks "github.com/vfg2006/creative-sync/internal/usecases/resolving/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

// newImageServer serve conteúdos fixos simulando o CDN de origem dos criativos
func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	imageBytes := bytes.Repeat([]byte{0xFF}, 2048)

	mux := http.NewServeMux()
	mux.HandleFunc("/good.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(imageBytes)
	})
	mux.HandleFunc("/good.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(imageBytes)
	})
	mux.HandleFunc("/tiny.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("erro"))
	})
	mux.HandleFunc("/expired.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestService(
	adRepo *repomocks.MockAdRepository,
	resolver *resolvermocks.MockResolver,
	uploader *uploadermocks.MockUploader,
) *Service {
	return &Service{
		adRepo:           adRepo,
		resolver:         resolver,
		uploader:         uploader,
		httpClient:       http.DefaultClient,
		minImageBytes:    1000,
		progressInterval: 10,
	}
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := repomocks.NewMockAdRepository(ctrl)
	mockResolver := resolvermocks.NewMockResolver(ctrl)
	mockUploader := uploadermocks.NewMockUploader(ctrl)
	service := newTestService(mockAdRepo, mockResolver, mockUploader)

	server := newImageServer(t)

	tests := []struct {
		name     string
		opts     Options
		setup    func()
		validate func(t *testing.T, stats Stats, err error)
	}{
		{
			name: "Download direto bem-sucedido - upload e URL permanente gravada",
			opts: Options{},
			setup: func() {
				ad := &domain.Ad{
					ID:           "AD001",
					AccountID:    "ACC001",
					PlatformAdID: "111",
					CreativeURL:  stringPtr(server.URL + "/good.jpg"),
				}

				mockAdRepo.EXPECT().
					ListForStorageMigration(uint64(DefaultRunLimit)).
					Return([]*domain.Ad{ad}, nil)

				mockUploader.EXPECT().
					Upload(gomock.Any(), "creatives/ACC001/111.jpg", "image/jpeg", gomock.Any()).
					Return("https://bucket.s3.amazonaws.com/creatives/ACC001/111.jpg", nil)

				mockAdRepo.EXPECT().
					UpdateStoredCreative("AD001", "https://bucket.s3.amazonaws.com/creatives/ACC001/111.jpg", nil).
					Return(nil)
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Succeeded)
				assert.Equal(t, 0, stats.Failed)
			},
		},
		{
			name: "Extensão derivada do content-type para PNG",
			opts: Options{},
			setup: func() {
				ad := &domain.Ad{
					ID:           "AD002",
					AccountID:    "ACC001",
					PlatformAdID: "222",
					CreativeURL:  stringPtr(server.URL + "/good.png"),
				}

				mockAdRepo.EXPECT().
					ListForStorageMigration(gomock.Any()).
					Return([]*domain.Ad{ad}, nil)

				mockUploader.EXPECT().
					Upload(gomock.Any(), "creatives/ACC001/222.png", "image/png", gomock.Any()).
					Return("https://bucket.s3.amazonaws.com/creatives/ACC001/222.png", nil)

				mockAdRepo.EXPECT().
					UpdateStoredCreative("AD002", gomock.Any(), nil).
					Return(nil)
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Succeeded)
			},
		},
		{
			name: "URL expirada - renovação pela API e autocorreção de creative_url",
			opts: Options{},
			setup: func() {
				ad := &domain.Ad{
					ID:           "AD003",
					AccountID:    "ACC001",
					PlatformAdID: "333",
					CreativeURL:  stringPtr(server.URL + "/expired.jpg"),
				}
				freshURL := server.URL + "/good.jpg"

				mockAdRepo.EXPECT().
					ListForStorageMigration(gomock.Any()).
					Return([]*domain.Ad{ad}, nil)

				mockResolver.EXPECT().
					ResolveImageURL(gomock.Any(), ad, gomock.Any()).
					Return(freshURL)

				mockUploader.EXPECT().
					Upload(gomock.Any(), "creatives/ACC001/333.jpg", "image/jpeg", gomock.Any()).
					Return("https://bucket.s3.amazonaws.com/creatives/ACC001/333.jpg", nil)

				mockAdRepo.EXPECT().
					UpdateStoredCreative("AD003", gomock.Any(), gomock.Any()).
					DoAndReturn(func(adID, storedURL string, freshCreativeURL *string) error {
						// A URL de origem renovada também é persistida
						assert.NotNil(t, freshCreativeURL)
						assert.Equal(t, freshURL, *freshCreativeURL)
						return nil
					})
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Succeeded)
			},
		},
		{
			name: "Conteúdo degenerado abaixo do mínimo é rejeitado",
			opts: Options{},
			setup: func() {
				ad := &domain.Ad{
					ID:           "AD004",
					AccountID:    "ACC001",
					PlatformAdID: "444",
					CreativeURL:  stringPtr(server.URL + "/tiny.jpg"),
				}

				mockAdRepo.EXPECT().
					ListForStorageMigration(gomock.Any()).
					Return([]*domain.Ad{ad}, nil)

				// A renovação devolve a mesma URL degenerada: segunda tentativa também falha
				mockResolver.EXPECT().
					ResolveImageURL(gomock.Any(), ad, gomock.Any()).
					Return(server.URL + "/tiny.jpg")
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Failed)
				assert.Equal(t, 0, stats.Succeeded)
			},
		},
		{
			name: "Renovação sem resultado - anúncio fica para a próxima execução",
			opts: Options{},
			setup: func() {
				ad := &domain.Ad{
					ID:           "AD005",
					AccountID:    "ACC001",
					PlatformAdID: "555",
					CreativeURL:  stringPtr(server.URL + "/expired.jpg"),
				}

				mockAdRepo.EXPECT().
					ListForStorageMigration(gomock.Any()).
					Return([]*domain.Ad{ad}, nil)

				mockResolver.EXPECT().
					ResolveImageURL(gomock.Any(), ad, gomock.Any()).
					Return("")
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Failed)
			},
		},
		{
			name: "Dry-run baixa o conteúdo mas não envia nem grava",
			opts: Options{DryRun: true},
			setup: func() {
				ad := &domain.Ad{
					ID:           "AD006",
					AccountID:    "ACC001",
					PlatformAdID: "666",
					CreativeURL:  stringPtr(server.URL + "/good.jpg"),
				}

				mockAdRepo.EXPECT().
					ListForStorageMigration(gomock.Any()).
					Return([]*domain.Ad{ad}, nil)

				// Nenhuma expectativa de Upload ou UpdateStoredCreative
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Succeeded)
			},
		},
		{
			name: "Falha na consulta inicial aborta a execução",
			opts: Options{},
			setup: func() {
				mockAdRepo.EXPECT().
					ListForStorageMigration(gomock.Any()).
					Return(nil, errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, stats Stats, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			stats, err := service.Run(context.Background(), tt.opts)
			tt.validate(t, stats, err)
		})
	}
}
