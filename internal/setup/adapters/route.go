package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a controller to net/http. Responses default to
// JSON; a controller that sets its own headers overrides that.
func AdaptRoute(controller presentationProtocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		if response.Headers != nil {
			for key, values := range response.Headers {
				for _, value := range values {
					w.Header().Add(key, value)
				}
			}
		} else {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	}
}
