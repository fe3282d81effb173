package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// IdentityOptions controls where the caller's username comes from.
type IdentityOptions struct {
	// AuthEnabled=false lets requests without any identity act as DevelopmentUser.
	AuthEnabled      bool
	RemoteUserHeader string
	DevelopmentUser  string
}

// Identity resolves the caller's username and stores it in the request
// context. Sources in order: a Bearer token (when validator is non-nil),
// the remote-user header set by a fronting proxy, and the development user
// when auth is disabled. Requests with no identity pass through anonymous;
// the core rejects them on the first capability check. An invalid token or
// a username longer than domain.MaxUsernameLength is rejected with 401.
func Identity(validator tokenValidator, opts IdentityOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := ""

			if token := extractBearerToken(r); token != "" && validator != nil {
				subject, err := validator.ValidateAccessToken(token)
				if err != nil {
					writeUnauthorized(w)
					return
				}
				username = subject
			}

			if username == "" && opts.RemoteUserHeader != "" {
				username = r.Header.Get(opts.RemoteUserHeader)
			}

			if username == "" && !opts.AuthEnabled {
				username = opts.DevelopmentUser
			}

			username = StripDomain(username)
			if username == "" {
				next.ServeHTTP(w, r)
				return
			}
			if utf8.RuneCountInString(username) > domain.MaxUsernameLength {
				writeUnauthorized(w)
				return
			}

			ctx := ctxutil.WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StripDomain removes a Windows "DOMAIN\" prefix and surrounding space.
func StripDomain(username string) string {
	username = strings.TrimSpace(username)
	if i := strings.LastIndex(username, `\`); i >= 0 {
		username = username[i+1:]
	}
	return strings.TrimSpace(username)
}

// writeUnauthorized writes the same JSON error body as the REST handlers.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"error": domain.UserMessage(domain.ErrUnauthorized),
		"code":  "UNAUTHENTICATED",
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
