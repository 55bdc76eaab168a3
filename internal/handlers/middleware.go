package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordtiles/internal/logging"
	"wordtiles/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDContextKey ContextKey = "request_id"
	SubjectContextKey   ContextKey = "subject"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	rateLimiter *security.RateLimiter
	tokens      *security.TokenManager
}

// NewMiddleware creates a new middleware instance. A nil rate limiter or
// token manager turns the matching check off.
func NewMiddleware(rateLimiter *security.RateLimiter, tokens *security.TokenManager) *Middleware {
	return &Middleware{
		rateLimiter: rateLimiter,
		tokens:      tokens,
	}
}

// RateLimit rejects clients that exceed the request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.rateLimiter != nil && !m.rateLimiter.Allow(security.GetClientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(m.rateLimiter.RetryAfterSeconds()))
			respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

// RequireToken requires a valid bearer token when token auth is enabled
func (m *Middleware) RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.tokens == nil {
			next(w, r)
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="wordtiles"`)
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			logging.Debug().Err(err).Str("request_id", RequestIDFromContext(r.Context())).Msg("rejected token")
			w.Header().Set("WWW-Authenticate", `Bearer realm="wordtiles", error="invalid_token"`)
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		if info := requestInfoFrom(r.Context()); info != nil {
			info.subject = claims.Subject
		}
		ctx := context.WithValue(r.Context(), SubjectContextKey, claims.Subject)
		next(w, r.WithContext(ctx))
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// Logging middleware logs HTTP requests and tags each one with a request ID
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)
		info := &requestInfo{id: requestID}
		ctx := context.WithValue(r.Context(), RequestIDContextKey, info)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		event := logging.Info()
		if info.subject != "" {
			event = event.Str("subject", info.subject)
		}
		event.
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// requestInfo is shared between Logging and the handlers it wraps. Inner
// middleware fills in what the access log should report.
type requestInfo struct {
	id      string
	subject string
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(RequestIDContextKey).(*requestInfo)
	return info
}

// RequestIDFromContext returns the request ID set by Logging
func RequestIDFromContext(ctx context.Context) string {
	if info := requestInfoFrom(ctx); info != nil {
		return info.id
	}
	return ""
}

// SubjectFromContext returns the token subject set by RequireToken
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectContextKey).(string)
	return subject
}
