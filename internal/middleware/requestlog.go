package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestLog tags every request with a ULID, exposes it as X-Request-Id and
// logs the request latency.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var requestID = ulid.Make().String()
		w.Header().Set("X-Request-Id", requestID)
		var start = time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s %dms", requestID, r.Method, r.URL, time.Since(start).Milliseconds())
	})
}
