package merge

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/merge-api/merge-go-client/model"
)

// Future is the pending result of a call started with Async.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Async runs fn in a new goroutine and returns its Future. Every blocking
// operation in this module can be made concurrent this way:
//
//	f := merge.Async(ctx, func(ctx context.Context) (*hris.Employee, error) {
//	    return client.Employees.Retrieve(ctx, id, nil)
//	})
//	// ...
//	emp, err := f.Await(ctx)
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = Errorf(CodeInternal, "panic in async call: %v", r)
			}
		}()
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the result is available or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, AsError(ctx.Err())
	}
}

// RetrieveMany calls fetch for every id, at most Config().MaxConcurrency at a
// time. Results are in the order of ids. The first error cancels the
// remaining fetches and is returned.
func RetrieveMany[T any](ctx context.Context, c *Client, ids []string, fetch func(ctx context.Context, id string) (*T, error)) ([]*T, error) {
	out := make([]*T, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	if n := c.Config().MaxConcurrency; n > 0 {
		g.SetLimit(n)
	}
	for i, id := range ids {
		g.Go(func() error {
			m, err := fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("retrieve %s: %w", id, err)
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PageFunc fetches the page at cursor. The first page has cursor "".
type PageFunc[T any] func(ctx context.Context, cursor string) (*model.Page[T], error)

// Pager walks a cursor-paginated list one page at a time.
//
//	p := merge.NewPager(fetch)
//	for p.Next(ctx) {
//	    for _, emp := range p.Page().Results { ... }
//	}
//	if err := p.Err(); err != nil { ... }
type Pager[T any] struct {
	fetch  PageFunc[T]
	cursor string
	page   *model.Page[T]
	err    error
	done   bool
}

// NewPager returns a Pager starting at the first page.
func NewPager[T any](fetch PageFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// Next fetches the following page. It returns false when the previous page
// was the last one or a fetch failed.
func (p *Pager[T]) Next(ctx context.Context) bool {
	if p.done {
		return false
	}
	page, err := p.fetch(ctx, p.cursor)
	if err != nil {
		p.err = err
		p.done = true
		return false
	}
	p.page = page
	if page.IsTerminal() {
		p.done = true
	} else {
		p.cursor = page.NextCursor()
	}
	return true
}

// Page returns the page fetched by the last successful Next.
func (p *Pager[T]) Page() *model.Page[T] { return p.page }

// Err returns the error that stopped the Pager, if any.
func (p *Pager[T]) Err() error { return p.err }

// All yields every result across the remaining pages. Iteration stops after
// the first error.
func (p *Pager[T]) All(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for p.Next(ctx) {
			for _, m := range p.page.Results {
				if !yield(m, nil) {
					return
				}
			}
		}
		if p.err != nil {
			yield(nil, p.err)
		}
	}
}

// ListAll collects the results of every page.
func ListAll[T any](ctx context.Context, fetch PageFunc[T]) ([]*T, error) {
	var out []*T
	for m, err := range NewPager(fetch).All(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
