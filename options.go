package merge

import (
	"net/http"
	"net/url"
	"time"
)

// RequestOption adjusts a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	timeout      time.Duration
	apiKey       string
	accountToken string
	header       http.Header
	query        url.Values
	bodyParams   []bodyParam
	debug        *bool
}

type bodyParam struct {
	key   string
	value any
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	o := &requestOptions{
		header: make(http.Header),
		query:  make(url.Values),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTimeout bounds the call, overriding the configured timeout.
// A zero or negative d disables the bound.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) {
		if d <= 0 {
			d = -1
		}
		o.timeout = d
	}
}

// WithAPIKey overrides the configured API key.
func WithAPIKey(key string) RequestOption {
	return func(o *requestOptions) { o.apiKey = key }
}

// WithAccountToken overrides the configured linked account token.
func WithAccountToken(token string) RequestOption {
	return func(o *requestOptions) { o.accountToken = token }
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) { o.header.Set(key, value) }
}

// WithQuery adds an extra query parameter. Values given with WithQuery
// replace whatever the request's query struct produced for the same key;
// repeated WithQuery calls for one key accumulate.
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) { o.query.Add(key, value) }
}

// WithBodyParam sets a top-level key of the JSON request body, replacing
// any value the request body produced for it. v may be a value.Value, a
// model, or a plain Go value (maps, slices, strings, numbers, bools).
func WithBodyParam(key string, v any) RequestOption {
	return func(o *requestOptions) { o.bodyParams = append(o.bodyParams, bodyParam{key, v}) }
}

// WithDebug turns debug mode on or off for this call. Write endpoints then
// return debug logs in the response envelope.
func WithDebug(on bool) RequestOption {
	return func(o *requestOptions) { o.debug = &on }
}
