// Package namecache resolves client emails to display names. The cache is
// owned by the snapshot owner and rebuilt whenever the source snapshot
// changes; a generation counter plus a TTL make staleness explicit instead
// of relying on clear-on-load behavior.
package namecache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"instructhub/internal/casebook/models"
	platformRedis "instructhub/internal/platform/redis"
)

type entry struct {
	name       string
	generation uint64
	expires    time.Time
}

// Cache maps lower-cased client emails to display names.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	generation uint64
	ttl        time.Duration
	now        func() time.Time
	redis      *platformRedis.Client
}

// Option configures a Cache.
type Option func(*Cache)

// WithRedis enables write-through of resolved names so sibling instances
// share lookups. The cache works without it.
func WithRedis(client *platformRedis.Client) Option {
	return func(c *Cache) { c.redis = client }
}

// WithClock overrides the time source. Tests only.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache whose entries live for ttl after a rebuild.
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rebuild repopulates the cache from a fresh case snapshot and bumps the
// generation, invalidating every entry from earlier snapshots at once.
func (c *Cache) Rebuild(ctx context.Context, cases []models.Case) {
	names := make(map[string]string)
	add := func(email, first, last string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			return
		}
		name := strings.TrimSpace(first + " " + last)
		if name == "" {
			return
		}
		if _, ok := names[email]; !ok {
			names[email] = name
		}
	}

	for i := range cases {
		if inst := cases[i].Instruction; inst != nil {
			add(inst.Email, inst.FirstName, inst.LastName)
		}
		for _, jc := range cases[i].JointClients {
			add(jc.ClientEmail, jc.FirstName, jc.LastName)
		}
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	expires := c.now().Add(c.ttl)
	c.entries = make(map[string]entry, len(names))
	for email, name := range names {
		c.entries[email] = entry{name: name, generation: gen, expires: expires}
	}
	c.mu.Unlock()

	if c.redis != nil {
		for email, name := range names {
			c.redis.Set(ctx, redisKey(gen, email), name, c.ttl)
		}
	}
}

// Lookup resolves an email to a display name. Entries from a previous
// generation or past their TTL are treated as absent.
func (c *Cache) Lookup(ctx context.Context, email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))

	c.mu.RLock()
	e, ok := c.entries[email]
	gen := c.generation
	now := c.now()
	c.mu.RUnlock()

	if ok && e.generation == gen && now.Before(e.expires) {
		return e.name, true
	}

	if c.redis != nil {
		if name, err := c.redis.Get(ctx, redisKey(gen, email)).Result(); err == nil && name != "" {
			return name, true
		}
	}
	return "", false
}

// Generation reports the current snapshot generation.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func redisKey(generation uint64, email string) string {
	return fmt.Sprintf("namecache:%d:%s", generation, email)
}
