package metadomain

import (
	"net/http"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsRateLimited classifica uma resposta como throttling. O status 429 é o
// sinal tipado; o substring no corpo é mantido como sinal legado porque o
// contrato real de rate limit da API não é garantido em todas as versões.
func IsRateLimited(statusCode int, body []byte) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}

	return strings.Contains(strings.ToLower(string(body)), "rate limit")
}
