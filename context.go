package merge

import (
	"context"
	"strings"
)

type contextKey struct {
	name string
}

var callInfoKey = &contextKey{"call_info"}

// CallInfo identifies the API operation a request belongs to.
type CallInfo struct {
	Category  string // e.g. "hris"
	Resource  string // e.g. "employees"
	Operation string // e.g. "list"
}

// Endpoint returns the dotted operation name, e.g. "hris.employees.list".
// Empty parts are skipped.
func (i CallInfo) Endpoint() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{i.Category, i.Resource, i.Operation} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// WithCallInfo returns a context carrying info.
func WithCallInfo(ctx context.Context, info CallInfo) context.Context {
	return context.WithValue(ctx, callInfoKey, info)
}

// CallInfoFromContext returns the CallInfo stored in ctx.
func CallInfoFromContext(ctx context.Context) (CallInfo, bool) {
	info, ok := ctx.Value(callInfoKey).(CallInfo)
	return info, ok
}
