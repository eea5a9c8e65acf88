package merge

import (
	"context"
	"net/http"
)

// RoundTripFunc performs (or continues) an HTTP round trip. It is passed to
// [UnaryInterceptor] functions to invoke the next interceptor or the
// transport.
type RoundTripFunc func(ctx context.Context, req *http.Request) (*http.Response, error)

// UnaryInterceptor is a hook that wraps every API call made by a Client.
//
//	func timing(ctx context.Context, req *http.Request, next merge.RoundTripFunc) (*http.Response, error) {
//	    start := time.Now()
//	    resp, err := next(ctx, req)
//	    info, _ := merge.CallInfoFromContext(ctx)
//	    log.Printf("%s took %v", info.Endpoint(), time.Since(start))
//	    return resp, err
//	}
//
// Interceptors can:
//   - Inspect or modify the request before calling next
//   - Inspect the response after calling next
//   - Short-circuit by returning a response or error without calling next
//
// Non-2xx responses are returned by next without an error; they become an
// *Error after the chain returns.
type UnaryInterceptor func(ctx context.Context, req *http.Request, next RoundTripFunc) (*http.Response, error)

// chainInterceptors combines multiple interceptors into a single one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []UnaryInterceptor) UnaryInterceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(ctx context.Context, req *http.Request, next RoundTripFunc) (*http.Response, error) {
		// Chain: i[0] -> i[1] -> ... -> next
		chain := next
		for i := len(interceptors) - 1; i >= 0; i-- {
			current := interceptors[i]
			inner := chain
			chain = func(ctx context.Context, req *http.Request) (*http.Response, error) {
				return current(ctx, req, inner)
			}
		}
		return chain(ctx, req)
	}
}
