package merge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChainInterceptors(t *testing.T) {
	if chainInterceptors(nil) != nil {
		t.Error("empty chain should be nil")
	}

	var calls []string
	mk := func(name string) UnaryInterceptor {
		return func(ctx context.Context, req *http.Request, next RoundTripFunc) (*http.Response, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, req)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	final := func(ctx context.Context, req *http.Request) (*http.Response, error) {
		calls = append(calls, "transport")
		return &http.Response{StatusCode: http.StatusOK}, nil
	}

	chain := chainInterceptors([]UnaryInterceptor{mk("a"), mk("b"), mk("c")})
	resp, err := chain(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil), final)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("chain() = %v, %v", resp, err)
	}

	want := []string{"a:before", "b:before", "c:before", "transport", "c:after", "b:after", "a:after"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
}
