package merge

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/merge-api/merge-go-client/model"
)

// Resource binds a model type T to a collection endpoint such as
// /hris/v1/employees. Category packages wrap it with typed parameters.
type Resource[T any] struct {
	client   *Client
	category string
	name     string
	path     string
}

// NewResource returns the resource for /{category}/v1/{name}.
func NewResource[T any](c *Client, category, name string) *Resource[T] {
	return &Resource[T]{
		client:   c,
		category: category,
		name:     name,
		path:     "/" + category + "/v1/" + name,
	}
}

// Client returns the client the resource sends requests with.
func (r *Resource[T]) Client() *Client { return r.client }

// Path returns the collection path joined with the escaped segments.
func (r *Resource[T]) Path(segments ...string) string {
	if len(segments) == 0 {
		return r.path
	}
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return r.path + "/" + strings.Join(escaped, "/")
}

// Context returns ctx tagged with the resource and operation.
func (r *Resource[T]) Context(ctx context.Context, operation string) context.Context {
	return WithCallInfo(ctx, CallInfo{Category: r.category, Resource: r.name, Operation: operation})
}

// List returns one page of the collection. params is a query struct or nil.
func (r *Resource[T]) List(ctx context.Context, params any, opts ...RequestOption) (*model.Page[T], error) {
	return Execute[model.Page[T]](r.Context(ctx, "list"), r.client, Request{
		Method: http.MethodGet,
		Path:   r.Path(),
		Query:  params,
	}, opts...)
}

// Pager walks every page of the collection starting from the first one.
// params must not set a cursor.
func (r *Resource[T]) Pager(params any, opts ...RequestOption) *Pager[T] {
	return NewPager(r.pageFunc(params, opts))
}

// ListAll collects every page of the collection.
func (r *Resource[T]) ListAll(ctx context.Context, params any, opts ...RequestOption) ([]*T, error) {
	return ListAll(ctx, r.pageFunc(params, opts))
}

func (r *Resource[T]) pageFunc(params any, opts []RequestOption) PageFunc[T] {
	return func(ctx context.Context, cursor string) (*model.Page[T], error) {
		o := opts
		if cursor != "" {
			o = append(append([]RequestOption(nil), opts...), WithQuery("cursor", cursor))
		}
		return r.List(ctx, params, o...)
	}
}

// Retrieve returns the object with the given id.
func (r *Resource[T]) Retrieve(ctx context.Context, id string, params any, opts ...RequestOption) (*T, error) {
	return Execute[T](r.Context(ctx, "retrieve"), r.client, Request{
		Method: http.MethodGet,
		Path:   r.Path(id),
		Query:  params,
	}, opts...)
}

// RetrieveMany retrieves ids concurrently, see RetrieveMany.
func (r *Resource[T]) RetrieveMany(ctx context.Context, ids []string, params any, opts ...RequestOption) ([]*T, error) {
	return RetrieveMany(ctx, r.client, ids, func(ctx context.Context, id string) (*T, error) {
		return r.Retrieve(ctx, id, params, opts...)
	})
}

// Get returns the object at the collection path itself, for singleton
// endpoints such as account-details.
func (r *Resource[T]) Get(ctx context.Context, params any, opts ...RequestOption) (*T, error) {
	return Execute[T](r.Context(ctx, "retrieve"), r.client, Request{
		Method: http.MethodGet,
		Path:   r.Path(),
		Query:  params,
	}, opts...)
}

// Create posts body, usually a *model.WriteRequest, and returns the
// created object with the API's warnings and errors.
func (r *Resource[T]) Create(ctx context.Context, body any, opts ...RequestOption) (*model.Response[T], error) {
	return Execute[model.Response[T]](r.Context(ctx, "create"), r.client, Request{
		Method: http.MethodPost,
		Path:   r.Path(),
		Body:   body,
	}, opts...)
}

// PartialUpdate patches the object with the given id.
func (r *Resource[T]) PartialUpdate(ctx context.Context, id string, body any, opts ...RequestOption) (*model.Response[T], error) {
	return Execute[model.Response[T]](r.Context(ctx, "partial_update"), r.client, Request{
		Method: http.MethodPatch,
		Path:   r.Path(id),
		Body:   body,
	}, opts...)
}

// Download streams the content at Path(id, "download"). The caller must
// close the returned body.
func (r *Resource[T]) Download(ctx context.Context, id string, params any, opts ...RequestOption) (io.ReadCloser, http.Header, error) {
	resp, err := ExecuteRaw(r.Context(ctx, "download"), r.client, Request{
		Method: http.MethodGet,
		Path:   r.Path(id, "download"),
		Query:  params,
	}, opts...)
	if err != nil {
		return nil, nil, err
	}
	return resp.Body, resp.Header, nil
}
