package receipt

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	MinOrderNumber = 100
	MaxOrderNumber = 1099

	DefaultSequenceKey = "aufburger:order-number"
)

// Generator hands out display order numbers.
type Generator interface {
	Next(ctx context.Context) (int, error)
}

// RandomGenerator draws uniformly from [MinOrderNumber, MaxOrderNumber].
// Numbers repeat; they are cosmetic.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomGenerator(seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *RandomGenerator) Next(ctx context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return MinOrderNumber + g.rnd.Intn(MaxOrderNumber-MinOrderNumber+1), nil
}

// SequenceGenerator is a monotonically increasing counter shared through
// Redis, starting at MinOrderNumber.
type SequenceGenerator struct {
	client *redis.Client
	key    string
}

func NewSequenceGenerator(client *redis.Client, key string) *SequenceGenerator {
	if key == "" {
		key = DefaultSequenceKey
	}
	return &SequenceGenerator{client: client, key: key}
}

func (g *SequenceGenerator) Next(ctx context.Context) (int, error) {
	n, err := g.client.Incr(ctx, g.key).Result()
	if err != nil {
		return 0, err
	}
	return MinOrderNumber - 1 + int(n), nil
}
