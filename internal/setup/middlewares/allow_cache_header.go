package middlewares

import "net/http"

// AllowCacheHeader marks a response as cacheable. Only the static
// catalog route uses it.
func AllowCacheHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=60")
		next.ServeHTTP(w, r)
	})
}
