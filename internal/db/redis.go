package db

import (
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/mwangie/CareToCrown/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url: %v", err)
	}
	return redis.NewClient(opt)
}
