package watch

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/platahq/plata-backend/internal/infra/stream"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var watchableCollections = map[string]bool{
	"institutions":    true,
	"accounts":        true,
	"transactions":    true,
	"recurring_bills": true,
	"bill_dues":       true,
}

// Handler streams live document changes over Server-Sent Events. One
// request watches one collection, filtered to the requesting user; the
// subscription is torn down when the client disconnects.
type Handler struct {
	Hub stream.Hub
}

func NewHandler(hub stream.Hub) *Handler {
	return &Handler{Hub: hub}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		http.Error(w, "invalid user ID format", http.StatusBadRequest)
		return
	}

	collection := r.PathValue("collection")
	if !watchableCollections[collection] {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	subscription, err := h.Hub.Subscribe(r.Context(), stream.Query{
		Collection: collection,
		UserId:     userId.Hex(),
	})
	if err != nil {
		http.Error(w, "an error occurred when subscribing", http.StatusInternalServerError)
		return
	}
	defer subscription.Cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-subscription.Events:
			if !ok {
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				continue
			}

			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Operation, data)
			flusher.Flush()
		}
	}
}
