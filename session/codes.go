package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"blightwatch-be/limiter"
)

var (
	ErrCodeMismatch    = errors.New("verification code is invalid or expired")
	ErrTooManyAttempts = errors.New("too many verification attempts; request a new code")
)

const (
	// CodeLength is the number of digits in a verification code.
	CodeLength = 4
	// MaxAttempts is how many guesses one issued code tolerates.
	MaxAttempts = 5
)

// CodeStore holds one pending verification code per email address.
type CodeStore interface {
	Issue(ctx context.Context, email, code string, ttl time.Duration) error
	// Verify consumes the code on success. Once MaxAttempts guesses have
	// been spent the code is discarded and ErrTooManyAttempts is returned.
	Verify(ctx context.Context, email, code string) error
}

// NewCode returns a random zero-padded numeric code.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sameCode(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// attemptGuard counts guesses per email in a limiter.Counter.
type attemptGuard struct {
	counter limiter.Counter
	prefix  string
	window  time.Duration
}

func (g attemptGuard) key(email string) string {
	return g.prefix + ":attempts:" + normalizeEmail(email)
}

// spend records one guess and reports whether the guess is still allowed.
func (g attemptGuard) spend(ctx context.Context, email string) (bool, error) {
	count, _, err := g.counter.Hit(ctx, g.key(email), g.window)
	if err != nil {
		return false, fmt.Errorf("count verify attempt: %w", err)
	}
	return count <= MaxAttempts, nil
}

func (g attemptGuard) reset(ctx context.Context, email string) error {
	if err := g.counter.Reset(ctx, g.key(email)); err != nil {
		return fmt.Errorf("reset verify attempts: %w", err)
	}
	return nil
}

type pendingCode struct {
	code    string
	expires time.Time
}

type MemoryCodes struct {
	mu        sync.Mutex
	codes     map[string]pendingCode
	guard     attemptGuard
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryCodes keeps codes in process memory. Guesses are counted in
// attempts for window.
func NewMemoryCodes(attempts limiter.Counter, window time.Duration) *MemoryCodes {
	return &MemoryCodes{
		codes: make(map[string]pendingCode),
		guard: attemptGuard{counter: attempts, prefix: "verify", window: window},
		now:   time.Now,
	}
}

func (m *MemoryCodes) Issue(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := m.guard.reset(ctx, email); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.codes[normalizeEmail(email)] = pendingCode{code: code, expires: now.Add(ttl)}
	return nil
}

func (m *MemoryCodes) Verify(ctx context.Context, email, code string) error {
	allowed, err := m.guard.spend(ctx, email)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := normalizeEmail(email)
	if !allowed {
		delete(m.codes, key)
		return ErrTooManyAttempts
	}
	now := m.now()
	m.sweep(now)
	p, ok := m.codes[key]
	if ok && !now.Before(p.expires) {
		delete(m.codes, key)
		ok = false
	}
	if !ok || !sameCode(p.code, code) {
		return ErrCodeMismatch
	}
	delete(m.codes, key)
	return m.guard.reset(ctx, email)
}

// Len reports how many codes are held, expired or not.
func (m *MemoryCodes) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.codes)
}

// sweep drops expired codes. Callers hold m.mu.
func (m *MemoryCodes) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < sweepEvery {
		return
	}
	m.lastSweep = now
	for key, p := range m.codes {
		if !now.Before(p.expires) {
			delete(m.codes, key)
		}
	}
}

// consumeCode deletes KEYS[1] only when it holds ARGV[1]. It returns 1 on a
// match, 0 on a mismatch and -1 when no code is pending.
var consumeCode = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if not stored then
	return -1
end
if stored == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

type RedisCodes struct {
	client *redis.Client
	prefix string
	guard  attemptGuard
}

func NewRedisCodes(client *redis.Client, prefix string, attempts limiter.Counter, window time.Duration) *RedisCodes {
	return &RedisCodes{
		client: client,
		prefix: prefix,
		guard:  attemptGuard{counter: attempts, prefix: prefix, window: window},
	}
}

func (r *RedisCodes) key(email string) string {
	return r.prefix + ":" + normalizeEmail(email)
}

func (r *RedisCodes) Issue(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := r.guard.reset(ctx, email); err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(email), code, ttl).Err()
}

func (r *RedisCodes) Verify(ctx context.Context, email, code string) error {
	allowed, err := r.guard.spend(ctx, email)
	if err != nil {
		return err
	}
	if !allowed {
		if err := r.client.Del(ctx, r.key(email)).Err(); err != nil {
			return fmt.Errorf("discard code: %w", err)
		}
		return ErrTooManyAttempts
	}

	res, err := consumeCode.Run(ctx, r.client, []string{r.key(email)}, code).Int64()
	if err != nil {
		return fmt.Errorf("verify code: %w", err)
	}
	if res != 1 {
		return ErrCodeMismatch
	}
	return r.guard.reset(ctx, email)
}
