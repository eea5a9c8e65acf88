package merge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/value"
)

var (
	validate     = validator.New()
	queryEncoder = schema.NewEncoder()
)

func init() {
	queryEncoder.SetAliasTag("url")
	queryEncoder.RegisterEncoder(time.Time{}, func(v reflect.Value) string {
		return model.FormatTime(v.Interface().(time.Time))
	})
	queryEncoder.RegisterEncoder(&time.Time{}, func(v reflect.Value) string {
		if v.IsNil() {
			return ""
		}
		return model.FormatTime(*v.Interface().(*time.Time))
	})
}

// Request describes one API call.
type Request struct {
	// Method is the HTTP method. Defaults to GET.
	Method string

	// Path is appended to the configured base URL, e.g. "/hris/v1/employees".
	Path string

	// Query is a struct with `url` tags, url.Values, or nil. Structs are
	// checked against their `validate` tags before encoding.
	Query any

	// Body is a model, a value.Value, an io.Reader sent verbatim, or nil.
	// Models are checked against their `validate` tags and serialized with
	// model.Serialize.
	Body any

	// ContentType is sent with io.Reader bodies.
	// Defaults to application/octet-stream.
	ContentType string
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// Execute sends req and decodes the 2xx response body into a new Res with
// model.Unmarshal. Non-2xx responses are returned as *Error.
func Execute[Res any](ctx context.Context, c *Client, req Request, opts ...RequestOption) (*Res, error) {
	resp, err := ExecuteRaw(ctx, c, req, opts...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, AsError(err)
	}
	res, err := model.Unmarshal[Res](data)
	if err != nil {
		err = fmt.Errorf("merge: %s: decode response: %w", endpointName(ctx, req), err)
		c.Logger().ErrorContext(ctx, "response decode failed",
			slog.String("endpoint", endpointName(ctx, req)),
			slog.Any("error", err),
		)
		return nil, err
	}
	if d, ok := any(res).(debugLogged); ok {
		logDebugEntries(ctx, c.Logger(), endpointName(ctx, req), d.DebugLogs())
	}
	return res, nil
}

type debugLogged interface {
	DebugLogs() []*model.DebugLogEntry
}

// logDebugEntries writes the upstream requests of a debug mode response at
// debug level.
func logDebugEntries(ctx context.Context, logger *slog.Logger, endpoint string, entries []*model.DebugLogEntry) {
	for _, e := range entries {
		if e == nil {
			continue
		}
		attrs := []slog.Attr{slog.String("endpoint", endpoint)}
		if e.LogID != nil {
			attrs = append(attrs, slog.String("log_id", *e.LogID))
		}
		if e.DashboardView != nil {
			attrs = append(attrs, slog.String("dashboard_view", *e.DashboardView))
		}
		if s := e.LogSummary; s != nil {
			if s.Method != nil {
				attrs = append(attrs, slog.String("method", *s.Method))
			}
			if s.URL != nil {
				attrs = append(attrs, slog.String("url", *s.URL))
			}
			if s.StatusCode != nil {
				attrs = append(attrs, slog.Int("status", *s.StatusCode))
			}
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "upstream request", attrs...)
	}
}

// ExecuteRaw sends req and returns the 2xx response with its body unread.
// The caller must close the body; the call's timeout covers reading it.
// Non-2xx responses are consumed and returned as *Error.
func ExecuteRaw(ctx context.Context, c *Client, req Request, opts ...RequestOption) (*http.Response, error) {
	o := newRequestOptions(opts)
	s := c.snapshot()

	timeout := s.timeout
	if o.timeout != 0 {
		timeout = o.timeout
	}
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	httpReq, err := s.newRequest(ctx, req, o)
	if err != nil {
		cancel()
		return nil, err
	}

	send := func(ctx context.Context, r *http.Request) (*http.Response, error) {
		return s.httpClient.Do(r.WithContext(ctx))
	}
	var resp *http.Response
	if s.chain != nil {
		resp, err = s.chain(ctx, httpReq, send)
	} else {
		resp, err = send(ctx, httpReq)
	}
	if err != nil {
		cancel()
		return nil, transportError(err)
	}
	if resp == nil {
		cancel()
		return nil, Errorf(CodeInternal, "%s: interceptor returned no response", endpointName(ctx, req))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer cancel()
		defer resp.Body.Close()
		return nil, ErrorFromResponse(resp)
	}
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (s snapshot) newRequest(ctx context.Context, req Request, o *requestOptions) (*http.Request, error) {
	if !strings.HasPrefix(req.Path, "/") {
		return nil, Errorf(CodeInvalidArgument, "path %q must start with /", req.Path)
	}
	u, err := url.Parse(s.baseURL + req.Path)
	if err != nil {
		return nil, Errorf(CodeInvalidArgument, "invalid path %q: %v", req.Path, err)
	}

	query, err := encodeQuery(req.Query)
	if err != nil {
		return nil, err
	}
	for k, vs := range o.query {
		query[k] = append([]string(nil), vs...)
	}
	switch {
	case o.debug != nil:
		query.Set("is_debug_mode", strconv.FormatBool(*o.debug))
	case s.debug && req.Body != nil:
		query.Set("is_debug_mode", "true")
	}
	u.RawQuery = query.Encode()

	body, contentType, err := encodeBody(req, o.bodyParams)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method(), u.String(), body)
	if err != nil {
		return nil, Errorf(CodeInvalidArgument, "%v", err)
	}

	apiKey := s.apiKey
	if o.apiKey != "" {
		apiKey = o.apiKey
	}
	accountToken := s.accountToken
	if o.accountToken != "" {
		accountToken = o.accountToken
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	if accountToken != "" {
		httpReq.Header.Set("X-Account-Token", accountToken)
	}
	httpReq.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		httpReq.Header.Set("User-Agent", s.userAgent)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, vs := range o.header {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	return httpReq, nil
}

func encodeQuery(q any) (url.Values, error) {
	switch q := q.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		out := make(url.Values, len(q))
		for k, vs := range q {
			out[k] = append([]string(nil), vs...)
		}
		return out, nil
	}
	if !isStruct(q) {
		return nil, Errorf(CodeInvalidArgument, "query must be a struct or url.Values, got %T", q)
	}
	if isNilPointer(q) {
		return url.Values{}, nil
	}
	if err := validate.Struct(q); err != nil {
		return nil, AsError(err)
	}
	vals := url.Values{}
	if err := queryEncoder.Encode(q, vals); err != nil {
		return nil, Errorf(CodeInvalidArgument, "encode query: %v", err)
	}
	return vals, nil
}

func encodeBody(req Request, params []bodyParam) (io.Reader, string, error) {
	if r, ok := req.Body.(io.Reader); ok {
		if len(params) > 0 {
			return nil, "", NewError(CodeInvalidArgument, "body params require a JSON body")
		}
		ct := req.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		return r, ct, nil
	}
	if req.Body == nil && len(params) == 0 {
		return nil, "", nil
	}

	v := value.ObjectOf(value.NewObject())
	if req.Body != nil {
		if isStruct(req.Body) && !isNilPointer(req.Body) {
			if err := validate.Struct(req.Body); err != nil {
				return nil, "", AsError(err)
			}
		}
		var err error
		if v, err = toValue(req.Body); err != nil {
			return nil, "", Errorf(CodeInvalidArgument, "encode body: %v", err)
		}
	}

	if len(params) > 0 {
		src, ok := v.Object()
		if !ok {
			return nil, "", Errorf(CodeInvalidArgument, "body params require an object body, got %s", v.Kind())
		}
		obj := src.Clone()
		v = value.ObjectOf(obj)
		for _, p := range params {
			pv, err := toValue(p.value)
			if err != nil {
				return nil, "", Errorf(CodeInvalidArgument, "encode body param %q: %v", p.key, err)
			}
			obj.Set(p.key, pv)
		}
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return nil, "", Errorf(CodeInvalidArgument, "encode body: %v", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// toValue converts models with model.Serialize and anything else with
// value.FromAny.
func toValue(x any) (value.Value, error) {
	switch x := x.(type) {
	case value.Value:
		return x, nil
	case *value.Value:
		if x == nil {
			return value.Null(), nil
		}
		return *x, nil
	}
	if isStruct(x) {
		return model.Serialize(x)
	}
	return value.FromAny(x)
}

func isStruct(x any) bool {
	t := reflect.TypeOf(x)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func isNilPointer(x any) bool {
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func transportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return AsError(err)
	}
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr
	}
	return &Error{Code: CodeUnavailable, Message: err.Error(), err: err}
}

func endpointName(ctx context.Context, req Request) string {
	if info, ok := CallInfoFromContext(ctx); ok {
		if e := info.Endpoint(); e != "" {
			return e
		}
	}
	return req.method() + " " + req.Path
}

// cancelBody releases the call's timeout when the body is closed.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
