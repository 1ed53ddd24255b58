package middleware

import (
	"net/http"

	"github.com/blue-screen-of-app/internal/analytics"
)

// TrackAPICalls counts every request passing through as one API call.
func TrackAPICalls(agg *analytics.Aggregator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agg.TrackAPICall()
			next.ServeHTTP(w, r)
		})
	}
}
