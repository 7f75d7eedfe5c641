package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m3rciful/trainbot/core/logger"
)

type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(status int) {
	w.ResponseWriter.WriteHeader(status)
	if !w.written {
		w.status = status
		w.written = true
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

// logRequest logs method, path, status and duration of every request.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
		}
		if sw.status >= http.StatusInternalServerError {
			logger.Error(r.Context(), "web", "web.request", attrs...)
			return
		}
		logger.Info(r.Context(), "web", "web.request", attrs...)
	})
}

// recoverPanic converts handler panics into 500 responses.
func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context(), "web", "web.panic",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Connection", "close")
				errorJSON(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
