package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rajnish018/portfolio-admin-backend/auth"
	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder Responder
	secret    []byte
}

func newAuthMiddleware(secret []byte) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		secret:    secret,
	}
}

// authenticate gates admin routes: it requires a `Bearer <token>` header,
// verifies the token statelessly, rejects non-admin role claims, and attaches
// the decoded identity to the request context as the acting principal.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		// tolerate repeated whitespace between scheme and token
		parts := strings.Fields(authHeader)
		if len(parts) < 2 || parts[1] == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		claims, err := auth.VerifyToken(parts[1], m.secret)
		if err != nil {
			switch {
			case errs.IsConfiguration(err):
				m.responder.WriteError(w, errs.NewConfigurationError(err))
			case errs.IsExpiredTokenError(err):
				m.responder.WriteError(w, errs.NewExpiredTokenError())
			default:
				m.responder.WriteError(w, errs.NewInvalidTokenError())
			}
			return
		}

		if claims.Role != auth.RoleAdmin {
			m.responder.WriteError(w, errs.NewInsufficientRoleError(auth.RoleAdmin))
			return
		}

		updatedCtx := ctxWithPrincipal(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(updatedCtx))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
