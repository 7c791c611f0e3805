package testutil

import (
	"context"
	"net/http"
	"time"

	"vocprez/pkg/requestcontext"
)

// FixedTime is the request time Context pins.
var FixedTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// Context returns a background context carrying what the request middleware
// would have set: a request ID and a pinned request time.
func Context(requestID string) context.Context {
	ctx := requestcontext.WithRequestID(context.Background(), requestID)
	return requestcontext.WithTime(ctx, FixedTime)
}

// WithClientMetadata adds client IP and user agent to the request context.
func WithClientMetadata(req *http.Request, clientIP, userAgent string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), clientIP, userAgent))
}
