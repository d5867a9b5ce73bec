package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
)

// CreateResponse serializes body as JSON into an HttpResponse. A body
// that cannot be marshaled degrades to a plain 500.
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"internal server error"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}
