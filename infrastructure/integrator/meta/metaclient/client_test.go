package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/domain"
	"golang.org/x/time/rate"
)

func newTestClient(serverURL string, slept *[]time.Duration) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.AccessToken = "token-de-teste"

	return &MetaClient{
		Cfg:        cfg,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		backoff:    60 * time.Second,
		sleep:      func(d time.Duration) { *slept = append(*slept, d) },
	}
}

func TestMetaClient_GetAdCreativeByAdID(t *testing.T) {
	creativePayload := `{"data":[{"id":"CR001","effective_object_story_id":"PAGE_POST_1","thumbnail_url":"https://scontent.cdn/v/thumb.jpg","title":"Promoção"}]}`

	tests := []struct {
		name      string
		responses []func(w http.ResponseWriter)
		validate  func(t *testing.T, calls int, slept []time.Duration, stats *domain.RunStats, err error)
	}{
		{
			name: "Sucesso direto sem retry",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					_, _ = w.Write([]byte(creativePayload))
				},
			},
			validate: func(t *testing.T, calls int, slept []time.Duration, stats *domain.RunStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, calls)
				assert.Empty(t, slept)
				assert.Equal(t, 1, stats.APICalls)
			},
		},
		{
			name: "HTTP 429 - uma espera fixa e uma única repetição",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusTooManyRequests)
				},
				func(w http.ResponseWriter) {
					_, _ = w.Write([]byte(creativePayload))
				},
			},
			validate: func(t *testing.T, calls int, slept []time.Duration, stats *domain.RunStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, calls)
				assert.Equal(t, []time.Duration{60 * time.Second}, slept)
				assert.Equal(t, 2, stats.APICalls)
			},
		},
		{
			name: "Corpo com 'rate limit' sem 429 também dispara retry",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusBadRequest)
					_, _ = w.Write([]byte(`{"error":{"message":"User request limit reached (rate limit)"}}`))
				},
				func(w http.ResponseWriter) {
					_, _ = w.Write([]byte(creativePayload))
				},
			},
			validate: func(t *testing.T, calls int, slept []time.Duration, stats *domain.RunStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, calls)
				assert.Len(t, slept, 1)
			},
		},
		{
			name: "Segundo 429 vira falha comum, sem segunda espera",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusTooManyRequests)
				},
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusTooManyRequests)
				},
			},
			validate: func(t *testing.T, calls int, slept []time.Duration, stats *domain.RunStats, err error) {
				assert.Error(t, err)
				assert.Equal(t, 2, calls)
				assert.Len(t, slept, 1)
			},
		},
		{
			name: "Resposta sem dados vira erro de dado ausente",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					_, _ = w.Write([]byte(`{"data":[]}`))
				},
			},
			validate: func(t *testing.T, calls int, slept []time.Duration, stats *domain.RunStats, err error) {
				assert.EqualError(t, err, "no data found")
				assert.Equal(t, 1, calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/12345/adcreatives", r.URL.Path)
				assert.Equal(t, "token-de-teste", r.URL.Query().Get("access_token"))

				response := tt.responses[calls]
				calls++
				response(w)
			}))
			defer server.Close()

			var slept []time.Duration
			client := newTestClient(server.URL, &slept)

			stats := &domain.RunStats{}
			creative, err := client.GetAdCreativeByAdID(context.Background(), "12345", stats)

			if err == nil {
				assert.Equal(t, "CR001", creative.ID)
				assert.Equal(t, "PAGE_POST_1", creative.EffectiveObjectStoryID)
			}

			tt.validate(t, calls, slept, stats, err)
		})
	}
}

func TestMetaClient_GetStoryByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PAGE_POST_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"PAGE_POST_1","full_picture":"https://scontent.cdn/v/full.jpg","attachments":{"data":[{"media":{"image":{"src":"https://scontent.cdn/v/anexo.jpg","height":1080,"width":1080}}}]}}`))
	}))
	defer server.Close()

	var slept []time.Duration
	client := newTestClient(server.URL, &slept)

	story, err := client.GetStoryByID(context.Background(), "PAGE_POST_1", nil)

	assert.NoError(t, err)
	assert.Equal(t, "https://scontent.cdn/v/full.jpg", story.FullPicture)
	assert.Equal(t, "https://scontent.cdn/v/anexo.jpg", story.AttachmentImageSrc())
}

func TestMetaClient_GetVideoByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/VID001", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"VID001","source":"https://video.cdn/v/source.mp4","thumbnails":{"data":[{"uri":"https://scontent.cdn/v/thumb.jpg","is_preferred":true}]}}`))
	}))
	defer server.Close()

	var slept []time.Duration
	client := newTestClient(server.URL, &slept)

	video, err := client.GetVideoByID(context.Background(), "VID001", nil)

	assert.NoError(t, err)
	assert.Equal(t, "https://video.cdn/v/source.mp4", video.Source)
	assert.Equal(t, "https://scontent.cdn/v/thumb.jpg", video.FirstThumbnailURI())
}
