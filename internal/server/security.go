package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/skyframe/skyframe/internal/httputil"
)

type SecurityConfig struct {
	BaseURL string
	// FrameSources are the origins the lightbox may embed players from.
	FrameSources []string
}

var defaultFrameSources = []string{"https://www.youtube.com", "https://www.youtube-nocookie.com"}

func securityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	strictTransport := cfg.BaseURL != "" && hasHTTPS(cfg.BaseURL)

	frames := cfg.FrameSources
	if len(frames) == 0 {
		frames = defaultFrameSources
	}
	frameSrc := strings.Join(frames, " ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nonce := httputil.GenerateNonce()
			ctx := httputil.ContextWithNonce(r.Context(), nonce)

			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), fullscreen=(self \"https://www.youtube.com\")")

			csp := fmt.Sprintf(
				"default-src 'self'; img-src 'self' data: https:; script-src 'self' 'nonce-%s'; style-src 'self' 'nonce-%s'; frame-src %s; connect-src 'self'; frame-ancestors 'self';",
				nonce, nonce, frameSrc,
			)
			w.Header().Set("Content-Security-Policy", csp)

			if strictTransport {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasHTTPS(baseURL string) bool {
	return strings.HasPrefix(baseURL, "https://")
}
