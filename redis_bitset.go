package bloom

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RedisBitSet keeps the bits of a single filter in a Redis string, one
// SETBIT per position. Redis applies each command atomically, so concurrent
// Set and Test calls never tear a bit.
//
// The BitSet methods cannot return errors. A failed command is logged and
// the first failure is kept for Err; a failed Test reports the bit as unset.
type RedisBitSet struct {
	redisClient redis.UniversalClient
	bitsetKey   string
	expiration  time.Duration
	length      uint
	log         *zap.Logger

	mu  sync.Mutex
	err error
}

type RedisOption func(*RedisBitSet)

// WithRedisLogger sets the logger used to report failed commands.
func WithRedisLogger(log *zap.Logger) RedisOption {
	return func(r *RedisBitSet) {
		r.log = log
	}
}

// NewRedisBitSet returns a BitSet stored under bitsetKey. An empty key is
// replaced by a random uuid. A zero expiration keeps the key forever.
func NewRedisBitSet(redisClient redis.UniversalClient, bitsetKey string, expiration time.Duration, opts ...RedisOption) *RedisBitSet {
	if bitsetKey == "" {
		bitsetKey = uuid.New().String()
	}
	r := &RedisBitSet{
		redisClient: redisClient,
		bitsetKey:   bitsetKey,
		expiration:  expiration,
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Init discards whatever the key held and allocates length zero bits.
func (r *RedisBitSet) Init(length uint) BitSet {
	ctx := context.Background()
	r.length = length
	_, err := r.redisClient.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, r.bitsetKey)
		if length > 0 {
			p.SetBit(ctx, r.bitsetKey, int64(length-1), 0)
		}
		if r.expiration > 0 {
			p.Expire(ctx, r.bitsetKey, r.expiration)
		}
		return nil
	})
	r.record("init", err)
	return r
}

func (r *RedisBitSet) Set(i uint) BitSet {
	err := r.redisClient.SetBit(context.Background(), r.bitsetKey, int64(i), 1).Err()
	r.record("setbit", err)
	return r
}

func (r *RedisBitSet) Test(i uint) bool {
	v, err := r.redisClient.GetBit(context.Background(), r.bitsetKey, int64(i)).Result()
	r.record("getbit", err)
	return v == 1
}

func (r *RedisBitSet) Count() uint {
	v, err := r.redisClient.BitCount(context.Background(), r.bitsetKey, nil).Result()
	r.record("bitcount", err)
	return uint(v)
}

func (r *RedisBitSet) Len() uint {
	return r.length
}

func (r *RedisBitSet) InPlaceUnion(compare BitSet) {
	c, ok := compare.(*RedisBitSet)
	if !ok {
		unionBits(r, compare)
		return
	}
	err := r.redisClient.BitOpOr(context.Background(), r.bitsetKey, r.bitsetKey, c.bitsetKey).Err()
	r.record("bitop", err)
}

func (r *RedisBitSet) Equal(c BitSet) bool {
	o, ok := c.(*RedisBitSet)
	if !ok {
		return equalBits(r, c)
	}
	if r.length != o.length {
		return false
	}
	a, err := r.redisClient.Get(context.Background(), r.bitsetKey).Bytes()
	r.record("get", err)
	b, err := o.redisClient.Get(context.Background(), o.bitsetKey).Bytes()
	r.record("get", err)
	return bytes.Equal(a, b)
}

// GetBitSetKey returns the Redis key holding the bits.
func (r *RedisBitSet) GetBitSetKey() string {
	return r.bitsetKey
}

// Err returns the first command failure seen, if any.
func (r *RedisBitSet) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *RedisBitSet) record(op string, err error) {
	if err == nil || err == redis.Nil {
		return
	}
	r.log.Warn("redis bitset command failed",
		zap.String("op", op), zap.String("key", r.bitsetKey), zap.Error(err))
	r.mu.Lock()
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()
}
