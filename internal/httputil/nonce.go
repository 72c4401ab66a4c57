package httputil

import (
	"context"
	"crypto/rand"
)

type nonceKey struct{}

// GenerateNonce returns a fresh value for a Content-Security-Policy nonce.
func GenerateNonce() string {
	return rand.Text()
}

func ContextWithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceKey{}, nonce)
}

// NonceFromContext returns the request's CSP nonce, or "" outside a
// request that went through the security headers middleware.
func NonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey{}).(string)
	return nonce
}
