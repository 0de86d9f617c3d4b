// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRequests = 10
	defaultRateLimitWindow   = 10 * time.Second

	// idleVisitorMultiplier times the window is how long a client's limiter
	// is kept after its last request.
	idleVisitorMultiplier = 3
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP. A bucket holds
// requests tokens and refills completely over window.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit  rate.Limit
	burst  int
	window time.Duration

	lastSweep time.Time
	now       func() time.Time
}

func newIPRateLimiter(requests int, window time.Duration) *ipRateLimiter {
	if requests <= 0 {
		requests = defaultRateLimitRequests
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}

	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		window:   window,
		now:      time.Now,
	}
}

// allow reports whether a request from ip may proceed. When it may not,
// retryAfter is the delay until the next token.
func (l *ipRateLimiter) allow(ip string) (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, found := l.visitors[ip]
	if !found {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	reservation := v.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// sweep drops idle visitors at most once per window.
func (l *ipRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now

	ttl := l.window * idleVisitorMultiplier
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > ttl {
			delete(l.visitors, ip)
		}
	}
}

// withRateLimit rejects a client IP that exceeded its read budget with
// 429 and a Retry-After header.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		ok, retryAfter := h.limiter.allow(ip)
		if !ok {
			logger.FromRequest(r).Warn().Str("ip", ip).Dur("retry_after", retryAfter).Msg("rate limit exceeded")

			seconds := int(retryAfter.Round(time.Second) / time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
			utils.WriteDetail(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP
// has already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
