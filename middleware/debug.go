package middleware

import (
	"context"
	"net/http"

	merge "github.com/merge-api/merge-go-client"
)

// DebugInterceptor turns on debug mode for calls whose CallInfo matches
// pred, so write endpoints return their debug logs. Requests that already
// carry is_debug_mode are left alone.
func DebugInterceptor(pred func(merge.CallInfo) bool) merge.UnaryInterceptor {
	return func(ctx context.Context, req *http.Request, next merge.RoundTripFunc) (*http.Response, error) {
		info, _ := merge.CallInfoFromContext(ctx)
		q := req.URL.Query()
		if pred(info) && !q.Has("is_debug_mode") {
			req = req.Clone(ctx)
			q.Set("is_debug_mode", "true")
			req.URL.RawQuery = q.Encode()
		}
		return next(ctx, req)
	}
}

// Writes matches create and partial update calls.
func Writes(info merge.CallInfo) bool {
	return info.Operation == "create" || info.Operation == "partial_update"
}
