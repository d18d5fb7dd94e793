package mock

import (
	"strings"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ledger:ratelimit:"

var redisOnce sync.Once
var redisServer *miniredis.Miniredis
var redisConn *redis.Client

// NewRedis starts one miniredis for the suite and returns a client bound to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis drops every shared rate limit window.
func ClearRedis() {
	NewRedis()
	redisServer.FlushAll()
}

// RateLimitCounters returns the per-client mutation counters the API stored.
func RateLimitCounters() map[string]string {
	NewRedis()
	counters := make(map[string]string)
	for _, key := range redisServer.Keys() {
		if client, ok := strings.CutPrefix(key, rateLimitPrefix); ok {
			value, err := redisServer.Get(key)
			if err == nil {
				counters[client] = value
			}
		}
	}
	return counters
}
