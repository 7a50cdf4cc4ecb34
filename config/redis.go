package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	// RedisClient stays nil when REDIS_URL is empty; callers must tolerate that.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	if App.RedisURL == "" {
		log.Println("⚠️  REDIS_URL not set, rate limiting and counters run without redis")
		return
	}

	opt, err := redis.ParseURL(App.RedisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, continuing without it: %v", err)
		return
	}
	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
