// Package middleware provides interceptors for merge.Client.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	merge "github.com/merge-api/merge-go-client"
)

// LoggingInterceptor creates an interceptor that logs API calls using slog.
// It logs the start and end of each call, including status and duration.
// Responses with a non-2xx status are logged as failures.
func LoggingInterceptor(logger *slog.Logger) merge.UnaryInterceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, req *http.Request, next merge.RoundTripFunc) (*http.Response, error) {
		start := time.Now()
		endpoint := endpointOf(ctx, req)

		logger.InfoContext(ctx, "request started",
			slog.String("endpoint", endpoint),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)

		resp, err := next(ctx, req)
		duration := time.Since(start)

		switch {
		case err != nil:
			logger.ErrorContext(ctx, "request failed",
				slog.String("endpoint", endpoint),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			logger.ErrorContext(ctx, "request failed",
				slog.String("endpoint", endpoint),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", duration),
			)
		default:
			logger.InfoContext(ctx, "request completed",
				slog.String("endpoint", endpoint),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", duration),
			)
		}

		return resp, err
	}
}

func endpointOf(ctx context.Context, req *http.Request) string {
	if info, ok := merge.CallInfoFromContext(ctx); ok {
		if e := info.Endpoint(); e != "" {
			return e
		}
	}
	return req.Method + " " + req.URL.Path
}
