package database

import (
	"context"
	"log"

	"cinema_booking/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the client used for seat-selection sessions and the
// per-showtime seat update channels.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis not reachable at startup: %v", err)
	}
}
