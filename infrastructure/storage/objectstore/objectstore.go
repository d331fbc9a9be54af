package objectstore

import "context"

// Uploader grava bytes sob uma chave com semântica de upsert e devolve a URL
// pública estável do objeto
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
}
