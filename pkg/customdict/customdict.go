// Package customdict stores user-added words in Redis so they survive
// restarts and are shared between processes. Custom words are folded into
// the corpus counts before the Vocabulary is built; the speller core never
// talks to Redis.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const dictKey = "spellserve:custom_dict"

// CustomDict wraps a Redis set of custom dictionary words.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a CustomDict backed by the provided Redis client.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client, key: dictKey}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, word).Err()
}

// All returns every word in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}

// Merge folds the custom words into counts, giving each at least weight so
// they survive any minimum-count filtering and can win the ranking over rare
// corpus words. Words already counted higher are left alone.
func (cd *CustomDict) Merge(ctx context.Context, counts map[string]int, weight int) error {
	words, err := cd.All(ctx)
	if err != nil {
		return err
	}
	for _, w := range words {
		if counts[w] < weight {
			counts[w] = weight
		}
	}
	return nil
}
