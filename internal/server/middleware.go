package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			// 308 keeps the method and body for POSTs
			http.Redirect(w, r, newURL.String(), http.StatusPermanentRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CORS lets the mobile and web builds call the API from any configured origin.
func (s *Service) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", s.config.CORSOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if s.config.CORSOrigin != "*" {
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimit throttles submissions per client address.
func (s *Service) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(clientKey(r)) {
			s.logger.WithField("client", clientKey(r)).Warn("rate limit exceeded")
			s.writeJSON(w, http.StatusTooManyRequests, errorResponse{Detail: "Too many requests. Please slow down."})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// limiterIdleTTL is how long a client's limiter survives without requests.
const limiterIdleTTL = 10 * time.Minute

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	now       func() time.Time
	lastPrune time.Time
	clients   map[string]*clientEntry
}

func newClientLimiter(perSec float64, burst int) *clientLimiter {
	limit := rate.Limit(perSec)
	if perSec <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}

	return &clientLimiter{
		limit:     limit,
		burst:     burst,
		ttl:       limiterIdleTTL,
		now:       time.Now,
		lastPrune: time.Now(),
		clients:   make(map[string]*clientEntry),
	}
}

func (l *clientLimiter) allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastPrune) >= l.ttl {
		l.prune(now)
	}

	entry, ok := l.clients[key]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// prune drops clients idle for longer than ttl. Callers hold mu.
func (l *clientLimiter) prune(now time.Time) {
	for key, entry := range l.clients {
		if now.Sub(entry.lastSeen) > l.ttl {
			delete(l.clients, key)
		}
	}
	l.lastPrune = now
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
