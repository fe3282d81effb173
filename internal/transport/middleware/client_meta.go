package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/pkg/ctxutil"
)

// ClientMeta records the caller's IP address and user agent for the audit
// trail. The IP is the first X-Forwarded-For hop when present, otherwise
// the connection's remote address.
func ClientMeta() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := ctxutil.ClientMeta{
				IP:        clientIP(r),
				UserAgent: strings.TrimSpace(r.UserAgent()),
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientMeta(r.Context(), meta)))
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
