package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vocprez/pkg/requestcontext"
)

func TestMiddlewarePinsClock(t *testing.T) {
	pinned := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	Clock = func() time.Time { return pinned }
	t.Cleanup(func() { Clock = time.Now })

	var got time.Time
	Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.Now(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/collection/", nil))

	assert.True(t, pinned.Equal(got))
	assert.Equal(t, time.UTC, got.Location())
}
