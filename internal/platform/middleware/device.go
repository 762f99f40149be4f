package middleware

import (
	"context"
	"net/http"

	"github.com/mssola/useragent"
)

type contextKeyDevice struct{}

// GetDevice retrieves the "browser/os" device summary from the context.
func GetDevice(ctx context.Context) string {
	if d, ok := ctx.Value(contextKeyDevice{}).(string); ok {
		return d
	}
	return ""
}

// WithDevice injects a device summary into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, contextKeyDevice{}, device)
}

// Device parses the User-Agent header into a compact summary for request
// logs and audit attribution.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := useragent.New(r.UserAgent())
		name, version := ua.Browser()
		summary := name
		if version != "" {
			summary += "/" + version
		}
		if os := ua.OS(); os != "" {
			summary += " " + os
		}
		next.ServeHTTP(w, r.WithContext(WithDevice(r.Context(), summary)))
	})
}
