package providers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedCompleter memoizes responses keyed by a hash of the prompt, so
// re-analyzing an unchanged document does not hit the service twice. Only
// successful completions are cached.
type CachedCompleter struct {
	inner Completer
	cache *lru.Cache[string, string]
}

// NewCachedCompleter wraps inner with an LRU of the given size.
func NewCachedCompleter(inner Completer, size int) (*CachedCompleter, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedCompleter{inner: inner, cache: cache}, nil
}

func (c *CachedCompleter) GetName() string {
	return c.inner.GetName()
}

func (c *CachedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)
	if content, ok := c.cache.Get(key); ok {
		return content, nil
	}

	content, err := c.inner.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, content)
	return content, nil
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
