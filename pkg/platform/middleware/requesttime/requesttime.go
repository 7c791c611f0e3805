// Package requesttime pins one clock reading per request so the access log
// measures from the moment the request entered the stack.
package requesttime

import (
	"net/http"
	"time"

	"vocprez/pkg/requestcontext"
)

// Clock is swapped in tests.
var Clock = time.Now

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), Clock().UTC())))
	})
}
