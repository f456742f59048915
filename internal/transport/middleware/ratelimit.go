package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type limitStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

type rejectionRecorder interface {
	RateLimited()
}

// RateLimit rejects clients that exceed limit requests per window with 429.
// Clients are keyed by remote IP. Store failures are logged and the request is
// let through.
func RateLimit(store limitStore, limit int, window time.Duration, rec rejectionRecorder, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			ok, retryAfter, err := store.Allow(r.Context(), ip, limit, window)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limit store unavailable",
					slog.String("client", ip),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				rec.RateLimited()
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// MemoryStore keeps one token bucket per client in process memory.
type MemoryStore struct {
	buckets sync.Map // map[string]*bucket
	idleTTL time.Duration
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewMemoryStore creates a store with background cleanup of idle buckets.
// Call Stop() on shutdown.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{idleTTL: 2 * cleanupInterval, stop: make(chan struct{})}
	go s.cleanup(cleanupInterval)
	return s
}

// Stop terminates the background cleanup goroutine.
func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// Allow takes one token from key's bucket. The bucket holds limit tokens and
// refills completely over window.
func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	maxTokens := float64(limit)
	val, _ := s.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / window.Seconds(),
		lastRefill: time.Now(),
	})
	b := val.(*bucket)

	if b.take() {
		return true, 0, nil
	}
	return false, time.Duration(float64(time.Second) / b.refillRate), nil
}

func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = math.Min(b.maxTokens, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (s *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > s.idleTTL {
					s.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
