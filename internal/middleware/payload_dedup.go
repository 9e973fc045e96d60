package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// payloadDuplicateKey marks a request whose return payload was already
// processed; handlers skip reconciliation and fall through to the
// redirect.
const payloadDuplicateKey = "payload_duplicate"

// PayloadDeduper tracks processed return-URL payloads per payment, so a
// reloaded return page does not re-run status reconciliation.
type PayloadDeduper interface {
	Seen(ctx context.Context, paymentID, payload string) (bool, error)
}

type redisPayloadDeduper struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (d *redisPayloadDeduper) Seen(ctx context.Context, paymentID, payload string) (bool, error) {
	key := d.prefix + ":" + paymentID + ":" + payloadHash(payload)
	ok, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return false, err
	}
	// false => already exists => duplicate
	return !ok, nil
}

func payloadHash(payload string) string {
	h := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(h[:16])
}

type memoryPayloadDeduper struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	ttl    time.Duration
	nextGC time.Time
}

func newMemoryPayloadDeduper(ttl time.Duration) *memoryPayloadDeduper {
	now := time.Now()
	return &memoryPayloadDeduper{
		seen:   make(map[string]time.Time),
		ttl:    ttl,
		nextGC: now.Add(ttl),
	}
}

func (d *memoryPayloadDeduper) Seen(_ context.Context, paymentID, payload string) (bool, error) {
	key := paymentID + ":" + payloadHash(payload)
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if exp, ok := d.seen[key]; ok && exp.After(now) {
		return true, nil
	}

	d.seen[key] = now.Add(d.ttl)
	if now.After(d.nextGC) {
		for k, exp := range d.seen {
			if exp.Before(now) {
				delete(d.seen, k)
			}
		}
		d.nextGC = now.Add(d.ttl)
	}

	return false, nil
}

// NewPayloadDeduper builds a Redis deduper and falls back to in-memory on
// failure.
func NewPayloadDeduper(addr, pass string, db int, ttl time.Duration) (PayloadDeduper, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if addr == "" {
		return newMemoryPayloadDeduper(ttl), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return newMemoryPayloadDeduper(ttl), err
	}

	return &redisPayloadDeduper{
		client: client,
		prefix: "adyen:payload",
		ttl:    ttl,
	}, nil
}

// PayloadDedup flags duplicate return-URL payloads. It never blocks the
// request: the handler still runs and redirects the shopper, it just
// skips reconciliation for payloads seen before.
func PayloadDedup(deduper PayloadDeduper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deduper == nil {
				return next(c)
			}

			paymentID := c.Param("payment_id")
			payload := c.QueryParam("payload")
			if paymentID == "" || payload == "" {
				return next(c)
			}

			isDuplicate, err := deduper.Seen(c.Request().Context(), paymentID, payload)
			if err != nil {
				return next(c)
			}
			if isDuplicate {
				c.Set(payloadDuplicateKey, true)
			}

			return next(c)
		}
	}
}

// IsDuplicatePayload reports whether the dedup middleware flagged the
// request's payload as already processed.
func IsDuplicatePayload(c echo.Context) bool {
	dup, _ := c.Get(payloadDuplicateKey).(bool)
	return dup
}
