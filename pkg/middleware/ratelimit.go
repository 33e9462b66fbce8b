package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
)

const visitorIdleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter mantém um token bucket por IP de origem
type IPRateLimiter struct {
	mu             sync.Mutex
	visitors       map[string]*visitor
	lastSweep      time.Time
	rps            rate.Limit
	burst          int
	trustedProxies map[string]bool
	now            func() time.Time
}

// NewIPRateLimiter cria o limitador. X-Forwarded-For só é lido quando a conexão
// vem de um dos trustedProxies.
func NewIPRateLimiter(rps float64, burst int, trustedProxies ...string) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}

	trusted := make(map[string]bool, len(trustedProxies))
	for _, proxy := range trustedProxies {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			trusted[proxy] = true
		}
	}

	return &IPRateLimiter{
		visitors:       make(map[string]*visitor),
		rps:            rate.Limit(rps),
		burst:          burst,
		trustedProxies: trusted,
		now:            time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.lastSweep.IsZero() {
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	// a varredura dos IPs inativos roda no máximo uma vez por visitorIdleTimeout
	if now.Sub(l.lastSweep) >= visitorIdleTimeout {
		l.sweep(now)
	}

	return v.limiter.AllowN(now, 1)
}

func (l *IPRateLimiter) sweep(now time.Time) {
	for key, other := range l.visitors {
		if now.Sub(other.lastSeen) > visitorIdleTimeout {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// ClientIP resolve o IP usado como chave do limite. Atrás de um proxy confiável
// vale o endereço mais à direita de X-Forwarded-For que não seja outro proxy.
func (l *IPRateLimiter) ClientIP(r *http.Request) string {
	remote := ClientIP(r)
	if !l.trustedProxies[remote] {
		return remote
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return remote
	}

	hops := strings.Split(forwarded, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" || l.trustedProxies[hop] {
			continue
		}
		return hop
	}
	return remote
}

// RateLimit responde 429 quando o IP excede o limite. rps <= 0 desativa o limite.
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || limiter.rps <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ip := limiter.ClientIP(r)
			if !limiter.Allow(ip) {
				log.ForContext(r.Context()).WithField("remote_ip", ip).Warn("Limite de requisições excedido")
				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP retorna o host da conexão, sem considerar cabeçalhos do cliente
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
