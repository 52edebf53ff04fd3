package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"accounts/internal/domain"
	"accounts/internal/observability/metrics"
	"accounts/internal/service"

	"github.com/go-chi/chi/v5"
)

type ctxKey string

const ctxKeyAccount ctxKey = "account"

// RequireAccount validates the bearer token and attaches the asserted
// identity to the request context as a lightweight account value. State-
// dependent checks reload the account from storage by id.
func RequireAccount(tokens service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			const prefix = "Bearer "
			if !strings.HasPrefix(raw, prefix) {
				writeUnauthorized(w)
				return
			}
			ident, err := tokens.Verify(strings.TrimSpace(raw[len(prefix):]))
			if err != nil {
				writeUnauthorized(w)
				return
			}
			acc := &domain.Account{ID: ident.ID, Email: ident.Email}
			ctx := context.WithValue(r.Context(), ctxKeyAccount, acc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AccountFromContext(ctx context.Context) *domain.Account {
	if acc, ok := ctx.Value(ctxKeyAccount).(*domain.Account); ok {
		return acc
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		// Label by route pattern, not raw path, to bound cardinality.
		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDurationSeconds.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
